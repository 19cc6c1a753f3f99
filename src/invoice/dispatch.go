package invoice

import (
	"context"
	"fmt"
	"log"

	"umrahdesk/src/config"
	"umrahdesk/src/db"
	"umrahdesk/src/lib"
	"umrahdesk/src/types"
)

// SendInvoiceEmail composes the invoice notification and sends it through
// the SMTP relay. The PDF attachment is the nice-to-have: if rebuilding
// the invoice data or rendering the document fails for any reason, the
// email still goes out without an attachment. Only a failed SMTP send
// flips the result to failure, and even that is reported, never retried.
func SendInvoiceEmail(ctx context.Context, req *types.SendInvoiceRequest) types.DispatchResult {
	var pdfBytes []byte
	data, err := Assemble(ctx, req.BookingType, req.BookingID)
	if err != nil {
		log.Printf("Invoice data unavailable for %s %s, sending without attachment: %s\n", req.BookingType, req.BookingID, err.Error())
	} else {
		if req.InvoiceNumber != "" {
			data.InvoiceNumber = req.InvoiceNumber
		}
		if req.DownloadURL != "" {
			data.DownloadURL = req.DownloadURL
		}
		pdfBytes, err = BuildPDF(data)
		if err != nil {
			log.Printf("Invoice document failed for %s %s, sending without attachment: %s\n", req.BookingType, req.BookingID, err.Error())
			pdfBytes = nil
		}
	}

	input := &lib.SendMailInput{
		From:     config.COMPANY_EMAIL,
		FromName: config.COMPANY_NAME,
		To:       []string{req.To},
		Subject:  fmt.Sprintf("Your %s invoice %s", kindLabel(req.BookingType), req.InvoiceNumber),
		Body:     invoiceEmailHTML(req),
		Html:     true,
	}
	if len(pdfBytes) > 0 {
		input.Attachments = []lib.Attachment{{
			Filename:    FileName(req.InvoiceNumber),
			ContentType: "application/pdf",
			Data:        pdfBytes,
		}}
	}
	if err := lib.SendMail(input); err != nil {
		log.Printf("Failed to send invoice email to %s: %s\n", req.To, err.Error())
		return types.DispatchResult{Success: false, Error: err.Error()}
	}

	// Best effort; the email is already on its way.
	if err := db.GetDb().Model(modelFor(req.BookingType)).Where("id = ?", req.BookingID).Update("invoice_sent", true).Error; err != nil {
		log.Printf("Could not mark invoice sent on %s %s: %s\n", req.BookingType, req.BookingID, err.Error())
	}
	return types.DispatchResult{Success: true}
}

func invoiceEmailHTML(req *types.SendInvoiceRequest) string {
	name := req.CustomerName
	if name == "" {
		name = "Valued Customer"
	}
	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice %s</title>
<style>
body { background:#f4f6f5; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #dfe8e3; padding:24px; border-radius:8px; }
.btn { display:inline-block; padding:12px 20px; background:#0d5f3c; color:#fff; text-decoration:none; border-radius:6px; margin-top:16px; }
.muted { color:#667; font-size:12px; margin-top:20px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Invoice %s</h2>
    <p>Dear %s,</p>
    <p>Thank you for booking your %s with %s. Your invoice is ready.</p>
    <a class="btn" href="%s" target="_blank">Download Invoice</a>
    <p class="muted">If the button does not work, copy this link into your browser:<br>%s</p>
    <p class="muted">%s &middot; %s &middot; %s</p>
  </div>
</div>
</body>
</html>`,
		req.InvoiceNumber, req.InvoiceNumber, name, kindLabel(req.BookingType), config.COMPANY_NAME,
		req.DownloadURL, req.DownloadURL,
		config.COMPANY_NAME, config.COMPANY_PHONE, config.COMPANY_EMAIL,
	)
}
