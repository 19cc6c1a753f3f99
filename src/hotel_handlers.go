package main

import (
	"errors"
	"net/http"

	"umrahdesk/src/db"
	"umrahdesk/src/models"
	"umrahdesk/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func hotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/hotels", func(ctx *gin.Context) {
		db := db.GetDb()
		var hotels []models.Hotel
		q := db.Model(&models.Hotel{}).Order("city, name")
		if city := ctx.Query("city"); city != "" {
			q = q.Where(&models.Hotel{City: city})
		}
		if err := q.Find(&hotels).Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": hotels, "count": len(hotels)})
	})
	return g
}

func adminHotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels", func(ctx *gin.Context) {
			var body types.CreateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			hotel := models.Hotel{
				Name:          body.Name,
				City:          body.City,
				Class:         body.Class,
				DistanceM:     body.DistanceM,
				PricePerNight: body.PricePerNight,
			}
			if err := db.GetDb().Create(&hotel).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": hotel})
		}).
		PUT("/hotels/:id", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			var body types.UpdateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			updates := map[string]any{}
			if body.Name != "" {
				updates["name"] = body.Name
			}
			if body.City != "" {
				updates["city"] = body.City
			}
			if body.Class != "" {
				updates["class"] = body.Class
			}
			if body.DistanceM != nil {
				updates["distance_m"] = *body.DistanceM
			}
			if body.PricePerNight != nil {
				updates["price_per_night"] = *body.PricePerNight
			}
			res := db.GetDb().Model(&models.Hotel{}).Where("id = ?", params.ID).Updates(updates)
			if res.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": res.Error.Error()}})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "hotel not found"}})
				return
			}
			var hotel models.Hotel
			if err := db.GetDb().Where("id = ?", params.ID).First(&hotel).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		}).
		DELETE("/hotels/:id", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			res := db.GetDb().Where("id = ?", params.ID).Delete(&models.Hotel{})
			if res.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": res.Error.Error()}})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "hotel not found"}})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func firstOr404(ctx *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "not found"}})
		return
	}
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
}
