package models

import (
	"time"

	"umrahdesk/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingCommon holds the columns shared by all three booking kinds.
// Status is a free-form string on purpose: the back office may write any
// value and historical records carry values outside the conventional set.
// PaidAmount is likewise never checked against TotalAmount; overpayment is
// a manual-override workflow.
type BookingCommon struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName     string    `gorm:"not null" json:"customer_name"`
	Email            string    `gorm:"index;not null" json:"email"`
	Phone            string    `json:"phone"`
	Status           string    `gorm:"default:pending" json:"status"`
	TotalAmount      int64     `json:"total_amount"`
	PaidAmount       int64     `json:"paid_amount"`
	PaymentStatus    string    `gorm:"default:unpaid" json:"payment_status"`
	PaymentMethod    string    `json:"payment_method"`
	InvoiceGenerated bool      `json:"invoice_generated"`
	InvoiceSent      bool      `json:"invoice_sent"`
	InvoiceNumber    string    `json:"invoice_number"`
	InvoiceURL       string    `json:"invoice_url"`
}

type HotelBooking struct {
	BookingCommon

	HotelID        *uuid.UUID `gorm:"type:uuid" json:"hotel_id,omitempty"`
	CheckIn        time.Time  `json:"check_in"`
	CheckOut       time.Time  `json:"check_out"`
	Rooms          int64      `json:"rooms"`
	Adults         int64      `json:"adults"`
	Children       int64      `json:"children"`
	BedType        string     `json:"bed_type"`
	SpecialRequest string     `json:"special_request"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	types.Timestamps
}

type PackageBooking struct {
	BookingCommon

	PackageID  *uuid.UUID       `gorm:"type:uuid" json:"package_id,omitempty"`
	TravelDate time.Time        `json:"travel_date"`
	Adults     int64            `json:"adults"`
	Children   int64            `json:"children"`
	Travelers  types.JSONBArray `gorm:"type:jsonb" json:"travelers"`

	Package *Package `gorm:"foreignKey:PackageID" json:"package,omitempty"`

	types.Timestamps
}

// CustomUmrahRequest is a fully bespoke trip: the customer picks flights,
// per-city hotel preferences and add-on services.
type CustomUmrahRequest struct {
	BookingCommon

	DepartureDate    time.Time        `json:"departure_date"`
	ReturnDate       time.Time        `json:"return_date"`
	Adults           int64            `json:"adults"`
	Children         int64            `json:"children"`
	FlightFrom       string           `json:"flight_from"`
	FlightTo         string           `json:"flight_to"`
	Hotels           types.JSONBArray `gorm:"type:jsonb" json:"hotels"`
	Travelers        types.JSONBArray `gorm:"type:jsonb" json:"travelers"`
	SelectedServices types.JSONBArray `gorm:"type:jsonb" json:"selected_services"`

	types.Timestamps
}

func (b *HotelBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *PackageBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *CustomUmrahRequest) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
