package main

import (
	"net/http"

	"umrahdesk/src/db"
	"umrahdesk/src/models"
	"umrahdesk/src/types"

	"github.com/gin-gonic/gin"
)

// Form options feed the booking-form dropdowns: bed types, hotel classes,
// add-on services.
func optionHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/options", func(ctx *gin.Context) {
		q := db.GetDb().Model(&models.FormOption{}).Order("option_group, sort, label")
		if group := ctx.Query("group"); group != "" {
			q = q.Where("option_group = ?", group)
		}
		var options []models.FormOption
		if err := q.Find(&options).Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": options, "count": len(options)})
	})
	return g
}

func adminOptionHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/options", func(ctx *gin.Context) {
			var body types.CreateFormOptionRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			option := models.FormOption{
				Group: body.Group,
				Label: body.Label,
				Value: body.Value,
				Sort:  body.Sort,
			}
			if err := db.GetDb().Create(&option).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": option})
		}).
		PUT("/options/:id", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			var body types.UpdateFormOptionRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			updates := map[string]any{}
			if body.Label != "" {
				updates["label"] = body.Label
			}
			if body.Value != "" {
				updates["value"] = body.Value
			}
			if body.Sort != nil {
				updates["sort"] = *body.Sort
			}
			res := db.GetDb().Model(&models.FormOption{}).Where("id = ?", params.ID).Updates(updates)
			if res.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": res.Error.Error()}})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "option not found"}})
				return
			}
			var option models.FormOption
			if err := db.GetDb().Where("id = ?", params.ID).First(&option).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": option})
		}).
		DELETE("/options/:id", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			res := db.GetDb().Where("id = ?", params.ID).Delete(&models.FormOption{})
			if res.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": res.Error.Error()}})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "option not found"}})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
