package main

import (
	"errors"
	"log"
	"net/http"

	"umrahdesk/src/invoice"
	"umrahdesk/src/types"
	"umrahdesk/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

// loosePayload reads the raw request body into the untyped map shape the
// sanitizer consumes. Intake payloads are deliberately not bound to a
// struct: the sanitizer owns every coercion decision.
func loosePayload(ctx *gin.Context) (map[string]any, bool) {
	raw, err := ctx.GetRawData()
	if err != nil || !gjson.ValidBytes(raw) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "request body must be a JSON object"}})
		return nil, false
	}
	payload, ok := gjson.ParseBytes(raw).Value().(map[string]any)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "request body must be a JSON object"}})
		return nil, false
	}
	return payload, true
}

func respondCreateError(ctx *gin.Context, err error) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr})
		return
	}
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings/hotel", func(ctx *gin.Context) {
			payload, ok := loosePayload(ctx)
			if !ok {
				return
			}
			dto, err := utils.CreateHotelBooking(payload)
			if err != nil {
				respondCreateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": dto})
		}).
		POST("/bookings/package", func(ctx *gin.Context) {
			payload, ok := loosePayload(ctx)
			if !ok {
				return
			}
			dto, err := utils.CreatePackageBooking(payload)
			if err != nil {
				respondCreateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": dto})
		}).
		POST("/requests/custom", func(ctx *gin.Context) {
			payload, ok := loosePayload(ctx)
			if !ok {
				return
			}
			dto, err := utils.CreateCustomRequest(payload)
			if err != nil {
				respondCreateError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": dto})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			email := ctx.Query("email")
			if email == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "email query parameter is required"}})
				return
			}
			out := gin.H{}
			for _, kind := range []string{types.KIND_HOTEL, types.KIND_PACKAGE, types.KIND_CUSTOM} {
				rows, err := utils.ListBookingRows(kind, email)
				if err != nil {
					log.Printf("Error listing %s bookings: %s\n", kind, err.Error())
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
					return
				}
				out[kind] = utils.SerializeBookingRows(kind, rows)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": out})
		}).
		GET("/invoices/:name", func(ctx *gin.Context) {
			filepath, err := invoice.InvoicePath(ctx.Param("name"))
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "invoice not found"}})
				return
			}
			ctx.FileAttachment(filepath, ctx.Param("name"))
		})
	return g
}

func adminBookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings/:kind", func(ctx *gin.Context) {
			var params struct {
				Kind string `uri:"kind" binding:"required,oneof=hotel package custom"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			rows, err := utils.ListBookingRows(params.Kind, ctx.Query("email"))
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			serialized := utils.SerializeBookingRows(params.Kind, rows)
			ctx.JSON(http.StatusOK, gin.H{"data": serialized, "count": len(serialized)})
		}).
		GET("/bookings/:kind/:id", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			row, err := invoice.FetchBookingRow(params.Kind, params.ID)
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			dtos := utils.SerializeBookingRows(params.Kind, []map[string]any{row})
			if len(dtos) == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "record is not serializable"}})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": dtos[0]})
		}).
		PUT("/bookings/:kind/:id/status", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			var body types.UpdateStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			row, err := utils.UpdateBookingStatus(params.Kind, params.ID, &body)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "booking not found"}})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			dtos := utils.SerializeBookingRows(params.Kind, []map[string]any{row})
			if len(dtos) == 0 {
				ctx.JSON(http.StatusOK, gin.H{"data": nil})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": dtos[0]})
		}).
		DELETE("/bookings/:kind/:id", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			if err := utils.DeleteBooking(params.Kind, params.ID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "booking not found"}})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
