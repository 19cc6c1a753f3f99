package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// Date formats accepted at the intake boundary. Forms post plain dates,
// the API clients post RFC3339.
const (
	DATE_PARSE_FORMAT = "2006-01-02"
	TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"
)

// Company identity printed on every invoice.
const (
	COMPANY_NAME    = "Al Raihan Travels"
	COMPANY_ADDRESS = "Suite 12, Clifton Centre, Karachi, Pakistan"
	COMPANY_PHONE   = "+92 21 3587 0000"
	COMPANY_EMAIL   = "bookings@alraihantravels.pk"
)

// InvoiceDir is where generated invoice PDFs land, served by the
// download route.
func InvoiceDir() string {
	if dir := os.Getenv("INVOICE_DIR"); dir != "" {
		return dir
	}
	return "invoices"
}

// LogoPath points at the invoice letterhead image. The builder skips the
// logo when the file is unreadable.
func LogoPath() string {
	if p := os.Getenv("INVOICE_LOGO_PATH"); p != "" {
		return p
	}
	return "assets/logo.jpg"
}

func PublicBaseURL() string {
	if u := os.Getenv("PUBLIC_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080"
}
