package invoice

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"umrahdesk/src/config"
	"umrahdesk/src/types"

	"github.com/jung-kurt/gofpdf"
	"github.com/yeqown/go-qrcode"
)

// A4 in points.
const (
	pageW = 595.28
	pageH = 841.89

	marginX    = 40.0
	contentW   = pageW - 2*marginX
	rowH       = 22.0
	totalBoxY  = 700.0
	safeZoneY  = 690.0
	footerY    = 790.0
	labelColW  = 180.0
	dateLayout = "02 Jan 2006"
)

func kindLabel(kind string) string {
	switch kind {
	case types.KIND_HOTEL:
		return "Hotel Booking"
	case types.KIND_PACKAGE:
		return "Umrah Package"
	case types.KIND_CUSTOM:
		return "Custom Umrah Request"
	}
	return "Booking"
}

func shortRef(id string) string {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) > 8 {
		clean = clean[len(clean)-8:]
	}
	return strings.ToUpper(clean)
}

// BuildPDF lays out the one-page invoice and returns the document bytes.
// The layout is a fixed top-down cursor; identical input produces
// identical bytes (the creation date is pinned to the invoice date).
func BuildPDF(data *types.InvoiceData) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	// Sorted catalogs keep the font and image dictionaries in a stable
	// order, so identical input yields identical bytes.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(data.IssuedAt.UTC())
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := drawHeader(pdf, data)
	y = drawBilling(pdf, data, y)
	y = drawItemTable(pdf, data, y)
	y = drawServices(pdf, data, y)
	drawTotalBox(pdf, data, y)
	drawFooter(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering invoice document: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *gofpdf.Fpdf, data *types.InvoiceData) float64 {
	// Logo embedding is best effort: a missing asset never fails the
	// invoice.
	if logo, err := os.ReadFile(config.LogoPath()); err == nil {
		imgType := "JPG"
		if strings.EqualFold(path.Ext(config.LogoPath()), ".png") {
			imgType = "PNG"
		}
		opts := gofpdf.ImageOptions{ImageType: imgType}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
		if pdf.Ok() {
			pdf.ImageOptions("logo", marginX, 42, 64, 64, false, opts, 0, "")
		}
	} else {
		log.Printf("Invoice logo not embedded: %s\n", err.Error())
	}

	pdf.SetTextColor(13, 95, 60)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pageW-marginX-pdf.GetStringWidth(config.COMPANY_NAME), 60, config.COMPANY_NAME)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetFont("Helvetica", "", 9)
	for i, line := range []string{config.COMPANY_ADDRESS, config.COMPANY_PHONE, config.COMPANY_EMAIL} {
		pdf.Text(pageW-marginX-pdf.GetStringWidth(line), 76+float64(i)*13, line)
	}

	pdf.SetDrawColor(13, 95, 60)
	pdf.SetLineWidth(1.4)
	pdf.Line(marginX, 120, pageW-marginX, 120)

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(marginX, 156, "INVOICE")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	meta := []string{
		fmt.Sprintf("Invoice No: %s", data.InvoiceNumber),
		fmt.Sprintf("Booking Ref: %s", shortRef(data.BookingID)),
		fmt.Sprintf("Date: %s", data.IssuedAt.Format(dateLayout)),
	}
	for i, line := range meta {
		pdf.Text(pageW-marginX-pdf.GetStringWidth(line), 140+float64(i)*14, line)
	}
	return 190
}

func drawBilling(pdf *gofpdf.Fpdf, data *types.InvoiceData, y float64) float64 {
	leftX := marginX
	rightX := marginX + contentW/2 + 20

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(13, 95, 60)
	pdf.Text(leftX, y, "Billed To")
	pdf.Text(rightX, y, "From")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	left := []string{data.CustomerName, data.Email, data.Phone}
	right := []string{config.COMPANY_NAME, config.COMPANY_ADDRESS, config.COMPANY_PHONE}
	line := y + 16
	for i := 0; i < 3; i++ {
		if left[i] != "" {
			pdf.Text(leftX, line, left[i])
		}
		pdf.Text(rightX, line, right[i])
		line += 14
	}
	return line + 14
}

type itemRow struct {
	label string
	value string
}

func tableRows(data *types.InvoiceData) []itemRow {
	rows := []itemRow{{"Booking Type", kindLabel(data.BookingType)}}
	if data.ItemName != "" {
		rows = append(rows, itemRow{"Item", data.ItemName})
	}
	inLabel, outLabel := "Check-in", "Check-out"
	if data.BookingType != types.KIND_HOTEL {
		inLabel, outLabel = "Departure", "Return"
	}
	if data.CheckIn != nil && !data.CheckIn.IsZero() {
		rows = append(rows, itemRow{inLabel, data.CheckIn.Format(dateLayout)})
	}
	if data.CheckOut != nil && !data.CheckOut.IsZero() {
		rows = append(rows, itemRow{outLabel, data.CheckOut.Format(dateLayout)})
	}
	if data.Adults > 0 || data.Children > 0 {
		rows = append(rows, itemRow{"Travelers", fmt.Sprintf("%d Adult(s), %d Child(ren)", data.Adults, data.Children)})
	}
	if data.Rooms > 0 {
		rows = append(rows, itemRow{"Rooms", fmt.Sprintf("%d", data.Rooms)})
	}
	if data.BedType != "" {
		rows = append(rows, itemRow{"Bed Type", data.BedType})
	}
	if data.FlightFrom != "" && data.FlightTo != "" {
		rows = append(rows, itemRow{"Flight", fmt.Sprintf("%s to %s", data.FlightFrom, data.FlightTo)})
	}
	return rows
}

func drawItemTable(pdf *gofpdf.Fpdf, data *types.InvoiceData, y float64) float64 {
	rows := tableRows(data)
	top := y
	pdf.SetLineWidth(0.8)
	pdf.SetDrawColor(170, 170, 170)

	for i, row := range rows {
		rowTop := top + float64(i)*rowH
		if i%2 == 1 {
			pdf.SetFillColor(245, 248, 246)
			pdf.Rect(marginX, rowTop, contentW, rowH, "F")
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(60, 60, 60)
		pdf.Text(marginX+10, rowTop+15, row.label)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.Text(marginX+labelColW+10, rowTop+15, row.value)
		pdf.Line(marginX, rowTop, pageW-marginX, rowTop)
	}
	bottom := top + float64(len(rows))*rowH
	pdf.Line(marginX, bottom, pageW-marginX, bottom)
	pdf.Rect(marginX, top, contentW, bottom-top, "D")
	pdf.Line(marginX+labelColW, top, marginX+labelColW, bottom)
	return bottom + 24
}

func drawServices(pdf *gofpdf.Fpdf, data *types.InvoiceData, y float64) float64 {
	if len(data.Services) == 0 {
		return y
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(13, 95, 60)
	pdf.Text(marginX, y, "Additional Services")
	y += 18
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	for _, svc := range data.Services {
		pdf.Text(marginX+12, y, fmt.Sprintf("- %s", svc))
		y += 14
	}
	return y + 10
}

// totalBoxTop anchors the total box near the page bottom. Content that
// ran past the safe zone pushes the box down, but never off the page:
// the box and the paid-to-date line below it must stay inside 841.89pt.
func totalBoxTop(y float64) float64 {
	boxY := totalBoxY
	if y > safeZoneY {
		boxY = y + 10
	}
	if max := pageH - 70; boxY > max {
		boxY = max
	}
	return boxY
}

func drawTotalBox(pdf *gofpdf.Fpdf, data *types.InvoiceData, y float64) {
	boxY := totalBoxTop(y)
	pdf.SetFillColor(13, 95, 60)
	pdf.Rect(marginX, boxY, contentW, 42, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(marginX+14, boxY+26, "Total Amount")
	amount := FormatMoney(data.TotalAmount)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pageW-marginX-14-pdf.GetStringWidth(amount), boxY+26, amount)

	if data.PaidAmount > 0 {
		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", 9)
		paid := fmt.Sprintf("Paid to date: %s", FormatMoney(data.PaidAmount))
		pdf.Text(pageW-marginX-pdf.GetStringWidth(paid), boxY+56, paid)
	}
}

func drawFooter(pdf *gofpdf.Fpdf, data *types.InvoiceData) {
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(90, 90, 90)
	msg := "Thank you for choosing " + config.COMPANY_NAME + ". We wish you a blessed journey."
	pdf.Text((pageW-pdf.GetStringWidth(msg))/2, footerY, msg)

	if data.DownloadURL == "" {
		return
	}
	// Best effort, like the logo: a QR failure never fails the invoice.
	qrc, err := qrcode.New(data.DownloadURL)
	if err != nil {
		log.Printf("Could not build invoice QR code: %s\n", err.Error())
		return
	}
	var qrBuf bytes.Buffer
	if err := qrc.SaveTo(&qrBuf); err != nil {
		log.Printf("Could not encode invoice QR code: %s\n", err.Error())
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("invoice-qr", opts, &qrBuf)
	if pdf.Ok() {
		pdf.ImageOptions("invoice-qr", pageW-marginX-56, footerY+6, 56, 56, false, opts, 0, "")
	}
}

// issuedAtOr pins the document date: an explicit zero falls back to the
// caller-supplied default rather than the wall clock so regenerated
// invoices stay byte-identical.
func issuedAtOr(t time.Time, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t
}
