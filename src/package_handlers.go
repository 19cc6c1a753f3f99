package main

import (
	"net/http"
	"time"

	"umrahdesk/src/config"
	"umrahdesk/src/db"
	"umrahdesk/src/models"
	"umrahdesk/src/types"

	"github.com/gin-gonic/gin"
)

func parseDepartsAt(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, config.DATE_PARSE_FORMAT} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func packageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/packages", func(ctx *gin.Context) {
			var packages []models.Package
			if err := db.GetDb().Model(&models.Package{}).Order("price").Find(&packages).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": packages, "count": len(packages)})
		}).
		GET("/packages/:slug", func(ctx *gin.Context) {
			var pkg models.Package
			if err := db.GetDb().Where(&models.Package{Slug: ctx.Param("slug")}).First(&pkg).Error; err != nil {
				firstOr404(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": pkg})
		})
	return g
}

func adminPackageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/packages", func(ctx *gin.Context) {
			var body types.CreatePackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			inclusions := types.JSONBArray{}
			for _, inc := range body.Inclusions {
				inclusions = append(inclusions, inc)
			}
			pkg := models.Package{
				Name:         body.Name,
				Days:         body.Days,
				Nights:       body.Nights,
				MakkahHotel:  body.MakkahHotel,
				MadinahHotel: body.MadinahHotel,
				Price:        body.Price,
				Inclusions:   inclusions,
				DepartsAt:    parseDepartsAt(body.DepartsAt),
			}
			if err := db.GetDb().Create(&pkg).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": pkg})
		}).
		PUT("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			var body types.UpdatePackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			updates := map[string]any{}
			if body.Name != "" {
				updates["name"] = body.Name
			}
			if body.Days != nil {
				updates["days"] = *body.Days
			}
			if body.Nights != nil {
				updates["nights"] = *body.Nights
			}
			if body.MakkahHotel != "" {
				updates["makkah_hotel"] = body.MakkahHotel
			}
			if body.MadinahHotel != "" {
				updates["madinah_hotel"] = body.MadinahHotel
			}
			if body.Price != nil {
				updates["price"] = *body.Price
			}
			if body.Inclusions != nil {
				inclusions := types.JSONBArray{}
				for _, inc := range body.Inclusions {
					inclusions = append(inclusions, inc)
				}
				updates["inclusions"] = inclusions
			}
			if t := parseDepartsAt(body.DepartsAt); t != nil {
				updates["departs_at"] = *t
			}
			res := db.GetDb().Model(&models.Package{}).Where("id = ?", params.ID).Updates(updates)
			if res.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": res.Error.Error()}})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "package not found"}})
				return
			}
			var pkg models.Package
			if err := db.GetDb().Where("id = ?", params.ID).First(&pkg).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": pkg})
		}).
		DELETE("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleIDParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			res := db.GetDb().Where("id = ?", params.ID).Delete(&models.Package{})
			if res.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": res.Error.Error()}})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "package not found"}})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
