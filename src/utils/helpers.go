package utils

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"umrahdesk/src/config"
	"umrahdesk/src/db"
	"umrahdesk/src/lib"
	"umrahdesk/src/models"
	"umrahdesk/src/sanitize"
	"umrahdesk/src/serialize"
	"umrahdesk/src/types"

	"gorm.io/gorm"
)

// friendlyCreateError rewraps persistence failures for the toast layer.
// Duplicate keys get a dedicated message.
func friendlyCreateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
		return errors.New("a booking with these details already exists")
	}
	return fmt.Errorf("could not save the booking: %w", err)
}

// CreateHotelBooking runs the intake pipeline: sanitize, persist,
// serialize. The ValidationError comes back unwrapped so the action layer
// can surface kind/field/message.
func CreateHotelBooking(payload map[string]any) (*types.HotelBookingDTO, error) {
	record, verr := sanitize.SanitizeHotelBooking(payload)
	if verr != nil {
		return nil, verr
	}
	if err := db.GetDb().Create(record).Error; err != nil {
		log.Printf("Error creating hotel booking: %s\n", err.Error())
		return nil, friendlyCreateError(err)
	}
	return serialize.SerializeHotelBooking(serialize.Record(record)), nil
}

func CreatePackageBooking(payload map[string]any) (*types.PackageBookingDTO, error) {
	record, verr := sanitize.SanitizePackageBooking(payload)
	if verr != nil {
		return nil, verr
	}
	if err := db.GetDb().Create(record).Error; err != nil {
		log.Printf("Error creating package booking: %s\n", err.Error())
		return nil, friendlyCreateError(err)
	}
	return serialize.SerializePackageBooking(serialize.Record(record)), nil
}

func CreateCustomRequest(payload map[string]any) (*types.CustomRequestDTO, error) {
	record, verr := sanitize.SanitizeCustomRequest(payload)
	if verr != nil {
		return nil, verr
	}
	if err := db.GetDb().Create(record).Error; err != nil {
		log.Printf("Error creating custom request: %s\n", err.Error())
		return nil, friendlyCreateError(err)
	}
	return serialize.SerializeCustomRequest(serialize.Record(record)), nil
}

func bookingModel(kind string) any {
	switch kind {
	case types.KIND_HOTEL:
		return &models.HotelBooking{}
	case types.KIND_PACKAGE:
		return &models.PackageBooking{}
	default:
		return &models.CustomUmrahRequest{}
	}
}

// ListBookingRows loads bookings as loose rows for the serializer. An
// empty email lists everything (admin view); otherwise it is the
// customer's "my bookings" filter.
func ListBookingRows(kind, email string) ([]map[string]any, error) {
	rows := []map[string]any{}
	q := db.GetDb().Model(bookingModel(kind)).Order("created_at DESC")
	if email != "" {
		q = q.Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SerializeBookingRows converts rows for transport, silently filtering
// rows the serializer rejects so one corrupt record does not take down
// the whole listing.
func SerializeBookingRows(kind string, rows []map[string]any) []any {
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		var dto any
		switch kind {
		case types.KIND_HOTEL:
			if d := serialize.SerializeHotelBooking(row); d != nil {
				dto = d
			}
		case types.KIND_PACKAGE:
			if d := serialize.SerializePackageBooking(row); d != nil {
				dto = d
			}
		default:
			if d := serialize.SerializeCustomRequest(row); d != nil {
				dto = d
			}
		}
		if dto != nil {
			out = append(out, dto)
		}
	}
	return out
}

// UpdateBookingStatus applies an admin status update. The status string
// is written as given: any value may follow any other, and concurrent
// updates are last-write-wins by a single UPDATE with no version check.
func UpdateBookingStatus(kind, id string, body *types.UpdateStatusRequestBody) (map[string]any, error) {
	updates := map[string]any{"status": body.Status}
	if body.PaymentStatus != "" {
		updates["payment_status"] = body.PaymentStatus
	}
	if body.PaidAmount != nil {
		// No paid<=total guard here either; see the model comment.
		updates["paid_amount"] = *body.PaidAmount
	}
	res := db.GetDb().Model(bookingModel(kind)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	row := map[string]any{}
	if err := db.GetDb().Model(bookingModel(kind)).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	if body.Notify {
		go notifyStatusChange(kind, row, body.Status)
	}
	return row, nil
}

// notifyStatusChange emails the customer about a status update. Failures
// are logged and dropped; the update already happened.
func notifyStatusChange(kind string, row map[string]any, status string) {
	email := rowString(row, "email")
	if email == "" {
		return
	}
	name := rowString(row, "customer_name")
	if name == "" {
		name = "Valued Customer"
	}
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\nThe status of your %s booking is now: %s.\r\n\r\n%s\r\n%s",
		name, kind, status, config.COMPANY_NAME, config.COMPANY_PHONE,
	)
	if err := lib.SendMail(&lib.SendMailInput{
		From:     config.COMPANY_EMAIL,
		FromName: config.COMPANY_NAME,
		To:       []string{email},
		Subject:  fmt.Sprintf("Booking update: %s", status),
		Body:     body,
	}); err != nil {
		log.Printf("Failed to send status notification to %s: %s\n", email, err.Error())
	}
}

func rowString(row map[string]any, key string) string {
	if s, ok := row[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// DeleteBooking is the explicit admin delete, the only way a record
// leaves the system.
func DeleteBooking(kind, id string) error {
	res := db.GetDb().Where("id = ?", id).Delete(bookingModel(kind))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
