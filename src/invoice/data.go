package invoice

import (
	"context"
	"fmt"
	"log"
	"time"

	"umrahdesk/src/config"
	"umrahdesk/src/db"
	"umrahdesk/src/lib"
	"umrahdesk/src/models"
	"umrahdesk/src/serialize"
	"umrahdesk/src/types"

	"github.com/gosimple/slug"
)

func modelFor(kind string) any {
	switch kind {
	case types.KIND_HOTEL:
		return &models.HotelBooking{}
	case types.KIND_PACKAGE:
		return &models.PackageBooking{}
	default:
		return &models.CustomUmrahRequest{}
	}
}

// FetchBookingRow loads one booking as a loose row, the shape the
// serializer consumes.
func FetchBookingRow(kind, id string) (map[string]any, error) {
	row := map[string]any{}
	if err := db.GetDb().Model(modelFor(kind)).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// resolveItemName turns a referenced hotel/package id into its display
// name, through the redis name cache first. Best effort all the way: an
// unresolvable reference just leaves the line out of the invoice.
func resolveItemName(ctx context.Context, kind string, refID string) string {
	if refID == "" {
		return ""
	}
	key := fmt.Sprintf("%s:name:%s", kind, refID)
	if name := lib.CacheGetName(ctx, key); name != "" {
		return name
	}
	var name string
	var err error
	switch kind {
	case types.KIND_HOTEL:
		err = db.GetDb().Model(&models.Hotel{}).Where("id = ?", refID).Pluck("name", &name).Error
	case types.KIND_PACKAGE:
		err = db.GetDb().Model(&models.Package{}).Where("id = ?", refID).Pluck("name", &name).Error
	default:
		return ""
	}
	if err != nil {
		log.Printf("Could not resolve %s name for %s: %s\n", kind, refID, err.Error())
		return ""
	}
	lib.CacheSetName(ctx, key, name)
	return name
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseTimeOr(s string, fallback time.Time) time.Time {
	if t := parseTimePtr(s); t != nil {
		return *t
	}
	return fallback
}

// Assemble recomputes the ephemeral InvoiceData projection for a booking.
// The invoice date is pinned to the booking's creation time so a
// regenerated invoice lays out identically.
func Assemble(ctx context.Context, kind, id string) (*types.InvoiceData, error) {
	row, err := FetchBookingRow(kind, id)
	if err != nil {
		return nil, fmt.Errorf("error loading %s booking %s: %w", kind, id, err)
	}

	var data *types.InvoiceData
	switch kind {
	case types.KIND_HOTEL:
		dto := serialize.SerializeHotelBooking(row)
		if dto == nil {
			return nil, fmt.Errorf("hotel booking %s has no usable identity", id)
		}
		data = &types.InvoiceData{
			InvoiceNumber: dto.InvoiceNumber,
			BookingID:     dto.ID,
			BookingType:   kind,
			IssuedAt:      parseTimeOr(dto.CreatedAt, time.Time{}),
			CustomerName:  dto.CustomerName,
			Email:         dto.Email,
			Phone:         dto.Phone,
			ItemName:      resolveItemName(ctx, types.KIND_HOTEL, dto.HotelID),
			CheckIn:       parseTimePtr(dto.CheckIn),
			CheckOut:      parseTimePtr(dto.CheckOut),
			Adults:        dto.Adults,
			Children:      dto.Children,
			Rooms:         dto.Rooms,
			BedType:       dto.BedType,
			TotalAmount:   dto.TotalAmount,
			PaidAmount:    dto.PaidAmount,
			DownloadURL:   dto.InvoiceURL,
		}
	case types.KIND_PACKAGE:
		dto := serialize.SerializePackageBooking(row)
		if dto == nil {
			return nil, fmt.Errorf("package booking %s has no usable identity", id)
		}
		data = &types.InvoiceData{
			InvoiceNumber: dto.InvoiceNumber,
			BookingID:     dto.ID,
			BookingType:   kind,
			IssuedAt:      parseTimeOr(dto.CreatedAt, time.Time{}),
			CustomerName:  dto.CustomerName,
			Email:         dto.Email,
			Phone:         dto.Phone,
			ItemName:      resolveItemName(ctx, types.KIND_PACKAGE, dto.PackageID),
			CheckIn:       parseTimePtr(dto.TravelDate),
			Adults:        dto.Adults,
			Children:      dto.Children,
			TotalAmount:   dto.TotalAmount,
			PaidAmount:    dto.PaidAmount,
			DownloadURL:   dto.InvoiceURL,
		}
	default:
		dto := serialize.SerializeCustomRequest(row)
		if dto == nil {
			return nil, fmt.Errorf("custom request %s has no usable identity", id)
		}
		data = &types.InvoiceData{
			InvoiceNumber: dto.InvoiceNumber,
			BookingID:     dto.ID,
			BookingType:   types.KIND_CUSTOM,
			IssuedAt:      parseTimeOr(dto.CreatedAt, time.Time{}),
			CustomerName:  dto.CustomerName,
			Email:         dto.Email,
			Phone:         dto.Phone,
			ItemName:      "Tailored Umrah itinerary",
			CheckIn:       parseTimePtr(dto.DepartureDate),
			CheckOut:      parseTimePtr(dto.ReturnDate),
			Adults:        dto.Adults,
			Children:      dto.Children,
			FlightFrom:    dto.FlightFrom,
			FlightTo:      dto.FlightTo,
			Services:      dto.SelectedServices,
			TotalAmount:   dto.TotalAmount,
			PaidAmount:    dto.PaidAmount,
			DownloadURL:   dto.InvoiceURL,
		}
	}
	data.IssuedAt = issuedAtOr(data.IssuedAt, now())
	return data, nil
}

// FileName is the on-disk name for a generated invoice.
func FileName(invoiceNumber string) string {
	return fmt.Sprintf("%s.pdf", slug.Make(invoiceNumber))
}

// Generate builds the invoice document for a booking, writes it under the
// invoice directory and flips the record's invoice fields on first
// success. The invoice number is minted once and reused on regeneration.
func Generate(ctx context.Context, kind, id string) (*types.InvoiceData, []byte, error) {
	data, err := Assemble(ctx, kind, id)
	if err != nil {
		return nil, nil, err
	}
	firstGeneration := data.InvoiceNumber == ""
	if firstGeneration {
		data.InvoiceNumber = Number(id, kind)
	}
	filename := FileName(data.InvoiceNumber)
	downloadURL := fmt.Sprintf("%s/api/v1/invoices/%s", config.PublicBaseURL(), filename)
	data.DownloadURL = downloadURL

	pdfBytes, err := BuildPDF(data)
	if err != nil {
		return nil, nil, fmt.Errorf("error generating invoice: %w", err)
	}

	if err := writeInvoiceFile(filename, pdfBytes); err != nil {
		return nil, nil, err
	}
	if err := db.GetDb().Model(modelFor(kind)).Where("id = ?", id).Updates(map[string]any{
		"invoice_generated": true,
		"invoice_number":    data.InvoiceNumber,
		"invoice_url":       downloadURL,
	}).Error; err != nil {
		// The document exists; a failed flag update is logged, not fatal.
		log.Printf("Could not update invoice fields on %s %s: %s\n", kind, id, err.Error())
	}
	return data, pdfBytes, nil
}
