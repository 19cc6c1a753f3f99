package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any
type JSONBArray []any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

func (a JSONBArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONBArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// Booking kinds shared by the sanitizer, serializer and invoice pipeline.
const (
	KIND_HOTEL   = "hotel"
	KIND_PACKAGE = "package"
	KIND_CUSTOM  = "custom"
)

// Conventional status values. The status column accepts any string; these
// are only what the back office offers.
const (
	BOOKING_PENDING    = "pending"
	BOOKING_CONFIRMED  = "confirmed"
	BOOKING_INPROGRESS = "in-progress"
	BOOKING_CANCELLED  = "cancelled"
	BOOKING_COMPLETED  = "completed"
)

const (
	PAYMENT_UNPAID  = "unpaid"
	PAYMENT_PARTIAL = "partial"
	PAYMENT_PAID    = "paid"
)

// ValidationError identifies the first offending field of a rejected
// intake payload.
type ValidationError struct {
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

func NewValidationError(kind, field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// HotelPreferenceDTO is one city/hotel/class/nights/bed tuple of a custom
// request. Owned wholly by its parent record, replaced wholesale on update.
type HotelPreferenceDTO struct {
	City    string `json:"city"`
	Hotel   string `json:"hotel"`
	Class   string `json:"class"`
	Nights  int64  `json:"nights"`
	BedType string `json:"bed_type"`
}

type PersonEntryDTO struct {
	Name     string `json:"name"`
	Passport string `json:"passport"`
	Age      int64  `json:"age"`
	Gender   string `json:"gender"`
}

// BookingCommonDTO carries the fields shared by every serialized booking kind.
type BookingCommonDTO struct {
	ID               string `json:"id"`
	CustomerName     string `json:"customer_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	TotalAmount      int64  `json:"total_amount"`
	PaidAmount       int64  `json:"paid_amount"`
	PaymentStatus    string `json:"payment_status"`
	PaymentMethod    string `json:"payment_method"`
	InvoiceGenerated bool   `json:"invoice_generated"`
	InvoiceSent      bool   `json:"invoice_sent"`
	InvoiceNumber    string `json:"invoice_number"`
	InvoiceURL       string `json:"invoice_url"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type HotelBookingDTO struct {
	BookingCommonDTO
	HotelID        string `json:"hotel_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Rooms          int64  `json:"rooms"`
	Adults         int64  `json:"adults"`
	Children       int64  `json:"children"`
	BedType        string `json:"bed_type"`
	SpecialRequest string `json:"special_request"`
}

type PackageBookingDTO struct {
	BookingCommonDTO
	PackageID  string           `json:"package_id"`
	TravelDate string           `json:"travel_date"`
	Adults     int64            `json:"adults"`
	Children   int64            `json:"children"`
	Travelers  []PersonEntryDTO `json:"travelers"`
}

type CustomRequestDTO struct {
	BookingCommonDTO
	DepartureDate    string               `json:"departure_date"`
	ReturnDate       string               `json:"return_date"`
	Adults           int64                `json:"adults"`
	Children         int64                `json:"children"`
	FlightFrom       string               `json:"flight_from"`
	FlightTo         string               `json:"flight_to"`
	Hotels           []HotelPreferenceDTO `json:"hotels"`
	Travelers        []PersonEntryDTO     `json:"travelers"`
	SelectedServices []string             `json:"selected_services"`
}

// InvoiceData is the ephemeral projection that drives the PDF layout.
// Recomputed on every generation, never persisted.
type InvoiceData struct {
	InvoiceNumber string
	BookingID     string
	BookingType   string
	IssuedAt      time.Time
	CustomerName  string
	Email         string
	Phone         string
	ItemName      string
	CheckIn       *time.Time
	CheckOut      *time.Time
	Adults        int64
	Children      int64
	Rooms         int64
	BedType       string
	FlightFrom    string
	FlightTo      string
	Services      []string
	TotalAmount   int64
	PaidAmount    int64
	DownloadURL   string
}

// DispatchResult is what callers of the invoice dispatch receive. Dispatch
// failures are reported, not retried and never re-thrown.
type DispatchResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SendInvoiceRequest struct {
	To            string
	CustomerName  string
	InvoiceNumber string
	BookingType   string
	BookingID     string
	DownloadURL   string
}

type BookingURIParams struct {
	Kind string `uri:"kind" binding:"required,oneof=hotel package custom"`
	ID   string `uri:"id" binding:"required,uuid"`
}

type SimpleIDParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type UpdateStatusRequestBody struct {
	Status        string `json:"status" binding:"required"`
	PaymentStatus string `json:"payment_status,omitempty"`
	PaidAmount    *int64 `json:"paid_amount,omitempty"`
	Notify        bool   `json:"notify,omitempty"`
}

type CreateHotelRequestBody struct {
	Name          string `json:"name" binding:"required"`
	City          string `json:"city" binding:"required,oneof=Makkah Madinah Jeddah"`
	Class         string `json:"class" binding:"required"`
	DistanceM     int64  `json:"distance_m,omitempty"`
	PricePerNight int64  `json:"price_per_night" binding:"required,gt=0"`
}

type UpdateHotelRequestBody struct {
	Name          string `json:"name,omitempty"`
	City          string `json:"city,omitempty" binding:"omitempty,oneof=Makkah Madinah Jeddah"`
	Class         string `json:"class,omitempty"`
	DistanceM     *int64 `json:"distance_m,omitempty"`
	PricePerNight *int64 `json:"price_per_night,omitempty" binding:"omitempty,gt=0"`
}

type CreatePackageRequestBody struct {
	Name         string   `json:"name" binding:"required"`
	Days         int64    `json:"days" binding:"required,gt=0"`
	Nights       int64    `json:"nights" binding:"required,gt=0"`
	MakkahHotel  string   `json:"makkah_hotel,omitempty"`
	MadinahHotel string   `json:"madinah_hotel,omitempty"`
	Price        int64    `json:"price" binding:"required,gt=0"`
	Inclusions   []string `json:"inclusions,omitempty"`
	DepartsAt    string   `json:"departs_at,omitempty" binding:"omitempty,traveldate"`
}

type UpdatePackageRequestBody struct {
	Name         string   `json:"name,omitempty"`
	Days         *int64   `json:"days,omitempty" binding:"omitempty,gt=0"`
	Nights       *int64   `json:"nights,omitempty" binding:"omitempty,gt=0"`
	MakkahHotel  string   `json:"makkah_hotel,omitempty"`
	MadinahHotel string   `json:"madinah_hotel,omitempty"`
	Price        *int64   `json:"price,omitempty" binding:"omitempty,gt=0"`
	Inclusions   []string `json:"inclusions,omitempty"`
	DepartsAt    string   `json:"departs_at,omitempty" binding:"omitempty,traveldate"`
}

type CreateFormOptionRequestBody struct {
	Group string `json:"group" binding:"required"`
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
	Sort  int64  `json:"sort,omitempty"`
}

type UpdateFormOptionRequestBody struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
	Sort  *int64 `json:"sort,omitempty"`
}
