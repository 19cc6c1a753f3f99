package invoice

import (
	"testing"
	"time"

	"umrahdesk/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoiceData() *types.InvoiceData {
	checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	return &types.InvoiceData{
		InvoiceNumber: "CUS-678901-00AB",
		BookingID:     "2b1f0a32-9c40-4d84-9b32-04a1c9a41f7d",
		BookingType:   types.KIND_CUSTOM,
		IssuedAt:      time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		CustomerName:  "Ahmed Raza",
		Email:         "ahmed.raza@example.com",
		Phone:         "+92 300 1234567",
		ItemName:      "Tailored Umrah itinerary",
		CheckIn:       &checkIn,
		CheckOut:      &checkOut,
		Adults:        2,
		Children:      1,
		FlightFrom:    "Karachi",
		FlightTo:      "Jeddah",
		Services:      []string{"Ziyarat tour", "Transport"},
		TotalAmount:   450000,
		PaidAmount:    100000,
		DownloadURL:   "http://localhost:8080/api/v1/invoices/cus-678901-00ab.pdf",
	}
}

func TestBuildPDFProducesDocument(t *testing.T) {
	pdfBytes, err := BuildPDF(sampleInvoiceData())
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestBuildPDFIsDeterministic(t *testing.T) {
	first, err := BuildPDF(sampleInvoiceData())
	require.NoError(t, err)
	second, err := BuildPDF(sampleInvoiceData())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildPDFSparseFields(t *testing.T) {
	// A hotel booking with nothing optional set still renders: no item
	// name, no dates, no services, no download URL for the QR.
	data := &types.InvoiceData{
		InvoiceNumber: "HTL-000042-0000",
		BookingID:     "x",
		BookingType:   types.KIND_HOTEL,
		IssuedAt:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Sana Khan",
		TotalAmount:   0,
	}
	pdfBytes, err := BuildPDF(data)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

func TestBuildPDFLongServiceListPushesTotalBox(t *testing.T) {
	data := sampleInvoiceData()
	for i := 0; i < 40; i++ {
		data.Services = append(data.Services, "Extra service line")
	}
	pdfBytes, err := BuildPDF(data)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

func TestTotalBoxStaysOnPage(t *testing.T) {
	// Short content leaves the box at its anchor.
	assert.Equal(t, 700.0, totalBoxTop(200))
	// Content past the safe zone pushes it down.
	assert.Equal(t, 705.0, totalBoxTop(695))
	// But it never crosses the page edge, even for a runaway list. The
	// paid-to-date line sits 56pt below the box top and must fit too.
	longY := totalBoxTop(900)
	assert.Equal(t, pageH-70, longY)
	assert.LessOrEqual(t, longY+56, pageH)
}
