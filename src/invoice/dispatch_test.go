package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"umrahdesk/src/db"
	"umrahdesk/src/lib"
	"umrahdesk/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqldb}), &gorm.Config{})
	require.NoError(t, err)
	db.NewDB(gormDB)
	return mock
}

func TestSendInvoiceEmailDegradesWhenBookingUnresolvable(t *testing.T) {
	mock := newMockDB(t)
	// The booking row does not exist, so the PDF can never be assembled.
	mock.ExpectQuery(`SELECT (.+) FROM "custom_umrah_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// The notification still goes out, so invoice_sent is still flipped.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "custom_umrah_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	var sent *lib.SendMailInput
	lib.NewMailSender(func(in *lib.SendMailInput) error {
		sent = in
		return nil
	})

	result := SendInvoiceEmail(context.Background(), &types.SendInvoiceRequest{
		To:            "ahmed.raza@example.com",
		CustomerName:  "Ahmed Raza",
		InvoiceNumber: "CUS-678901-00AB",
		BookingType:   types.KIND_CUSTOM,
		BookingID:     "2b1f0a32-9c40-4d84-9b32-04a1c9a41f7d",
		DownloadURL:   "http://localhost:8080/api/v1/invoices/cus-678901-00ab.pdf",
	})

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"ahmed.raza@example.com"}, sent.To)
	assert.True(t, sent.Html)
	// Degraded: no attachment, but the mail carries the download link.
	assert.Empty(t, sent.Attachments)
	assert.Contains(t, sent.Body, "cus-678901-00ab.pdf")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendInvoiceEmailAttachesDocument(t *testing.T) {
	mock := newMockDB(t)
	created := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM "custom_umrah_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_name", "email", "phone", "status",
			"total_amount", "paid_amount", "departure_date", "return_date",
			"adults", "children", "created_at",
		}).AddRow(
			"2b1f0a32-9c40-4d84-9b32-04a1c9a41f7d", "Ahmed Raza", "ahmed.raza@example.com", "+92 300 1234567", "confirmed",
			int64(450000), int64(100000), created.AddDate(0, 1, 0), created.AddDate(0, 1, 14),
			int64(2), int64(1), created,
		))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "custom_umrah_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var sent *lib.SendMailInput
	lib.NewMailSender(func(in *lib.SendMailInput) error {
		sent = in
		return nil
	})

	result := SendInvoiceEmail(context.Background(), &types.SendInvoiceRequest{
		To:            "ahmed.raza@example.com",
		CustomerName:  "Ahmed Raza",
		InvoiceNumber: "CUS-678901-00AB",
		BookingType:   types.KIND_CUSTOM,
		BookingID:     "2b1f0a32-9c40-4d84-9b32-04a1c9a41f7d",
		DownloadURL:   "http://localhost:8080/api/v1/invoices/cus-678901-00ab.pdf",
	})

	assert.True(t, result.Success)
	require.NotNil(t, sent)
	require.Len(t, sent.Attachments, 1)
	assert.Equal(t, "cus-678901-00ab.pdf", sent.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", sent.Attachments[0].ContentType)
	assert.Equal(t, "%PDF", string(sent.Attachments[0].Data[:4]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendInvoiceEmailReportsTransportFailure(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "hotel_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	lib.NewMailSender(func(in *lib.SendMailInput) error {
		return errors.New("smtp relay refused the message")
	})

	result := SendInvoiceEmail(context.Background(), &types.SendInvoiceRequest{
		To:            "sana@example.com",
		InvoiceNumber: "HTL-000042-0000",
		BookingType:   types.KIND_HOTEL,
		BookingID:     "3c2e1b44-8d50-4e95-8c43-15b2d0b52e8e",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "smtp relay refused the message", result.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}
