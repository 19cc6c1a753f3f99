package main

import (
	"errors"
	"fmt"
	"net/http"

	"umrahdesk/src/invoice"
	"umrahdesk/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type sendInvoiceRequestBody struct {
	To string `json:"to,omitempty" binding:"omitempty,email"`
}

func invoiceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings/:kind/:id/invoice", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			data, pdfBytes, err := invoice.Generate(ctx, params.Kind, params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "booking not found"}})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoice.FileName(data.InvoiceNumber)))
			ctx.Data(http.StatusOK, "application/pdf", pdfBytes)
		}).
		POST("/bookings/:kind/:id/invoice/send", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			var body sendInvoiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}

			// The invoice must exist before it can be dispatched; this
			// also mints the number and the download URL on first use.
			data, _, err := invoice.Generate(ctx, params.Kind, params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "booking not found"}})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"message": err.Error()}})
				return
			}
			to := body.To
			if to == "" {
				to = data.Email
			}
			if to == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "no recipient on record; pass one in the request body"}})
				return
			}
			result := invoice.SendInvoiceEmail(ctx, &types.SendInvoiceRequest{
				To:            to,
				CustomerName:  data.CustomerName,
				InvoiceNumber: data.InvoiceNumber,
				BookingType:   params.Kind,
				BookingID:     params.ID,
				DownloadURL:   data.DownloadURL,
			})
			if !result.Success {
				ctx.JSON(http.StatusBadGateway, gin.H{"data": result})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": result})
		})
	return g
}
