// Package serialize converts persisted booking rows into plain, stable,
// JSON-safe shapes. Rows may arrive loosely typed: ids as uuid values,
// strings or byte slices, dates as time.Time or already-ISO strings,
// jsonb columns as decoded slices or raw bytes. Serialization never
// panics; a row without a usable identity comes back nil so list callers
// can filter corrupt rows without aborting.
package serialize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"umrahdesk/src/config"
	"umrahdesk/src/types"
)

// NormalizeID coerces whatever the driver handed back for an identifier
// into a string. Absent ids become "".
func NormalizeID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case []byte:
		return strings.TrimSpace(string(id))
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprintf("%v", id)
	}
}

// NormalizeTime coerces a date value into an ISO-8601 string. Absent
// dates become "".
func NormalizeTime(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case time.Time:
		if d.IsZero() {
			return ""
		}
		return d.Format(time.RFC3339)
	case *time.Time:
		if d == nil || d.IsZero() {
			return ""
		}
		return d.Format(time.RFC3339)
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, config.DATE_PARSE_FORMAT, config.TIME_PARSE_FORMAT} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(time.RFC3339)
			}
		}
		return s
	case fmt.Stringer:
		return NormalizeTime(d.String())
	default:
		return ""
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return int64(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return int64(f)
	default:
		return 0
	}
}

// toBool tolerates flags persisted as real booleans, numbers or truthy
// strings.
func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case int:
		return b != 0
	case float64:
		return b != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		return s == "true" || s == "1" || s == "t" || s == "yes"
	default:
		return false
	}
}

// toSlice decodes a nested collection that may still be raw jsonb bytes.
func toSlice(v any) []any {
	switch arr := v.(type) {
	case nil:
		return nil
	case []any:
		return arr
	case types.JSONBArray:
		return arr
	case []byte:
		var out []any
		if err := json.Unmarshal(arr, &out); err != nil {
			return nil
		}
		return out
	case string:
		var out []any
		if err := json.Unmarshal([]byte(arr), &out); err != nil {
			return nil
		}
		return out
	default:
		return nil
	}
}

// Record flattens a persisted model into the loose map shape the
// serializers consume. Maps pass through untouched.
func Record(v any) map[string]any {
	if v == nil {
		return nil
	}
	if m, ok := v.(map[string]any); ok {
		return m
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// serializeTravelers re-maps the roster element by element. A malformed
// element degrades to defaults instead of aborting the record.
func serializeTravelers(v any) []types.PersonEntryDTO {
	out := []types.PersonEntryDTO{}
	for _, e := range toSlice(v) {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, types.PersonEntryDTO{
			Name:     toString(entry["name"]),
			Passport: toString(entry["passport"]),
			Age:      toInt64(entry["age"]),
			Gender:   toString(entry["gender"]),
		})
	}
	return out
}

func serializeHotelPrefs(v any) []types.HotelPreferenceDTO {
	out := []types.HotelPreferenceDTO{}
	for _, e := range toSlice(v) {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, types.HotelPreferenceDTO{
			City:    toString(entry["city"]),
			Hotel:   toString(entry["hotel"]),
			Class:   toString(entry["class"]),
			Nights:  toInt64(entry["nights"]),
			BedType: toString(entry["bed_type"]),
		})
	}
	return out
}

func serializeServices(v any) []string {
	out := []string{}
	for _, e := range toSlice(v) {
		if s := strings.TrimSpace(toString(e)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func serializeCommon(m map[string]any) (types.BookingCommonDTO, bool) {
	id := NormalizeID(m["id"])
	if id == "" {
		return types.BookingCommonDTO{}, false
	}
	return types.BookingCommonDTO{
		ID:               id,
		CustomerName:     toString(m["customer_name"]),
		Email:            toString(m["email"]),
		Phone:            toString(m["phone"]),
		Status:           toString(m["status"]),
		TotalAmount:      toInt64(m["total_amount"]),
		PaidAmount:       toInt64(m["paid_amount"]),
		PaymentStatus:    toString(m["payment_status"]),
		PaymentMethod:    toString(m["payment_method"]),
		InvoiceGenerated: toBool(m["invoice_generated"]),
		InvoiceSent:      toBool(m["invoice_sent"]),
		InvoiceNumber:    toString(m["invoice_number"]),
		InvoiceURL:       toString(m["invoice_url"]),
		CreatedAt:        NormalizeTime(m["created_at"]),
		UpdatedAt:        NormalizeTime(m["updated_at"]),
	}, true
}

// SerializeHotelBooking returns nil when the row lacks a usable identity.
func SerializeHotelBooking(m map[string]any) *types.HotelBookingDTO {
	if m == nil {
		return nil
	}
	common, ok := serializeCommon(m)
	if !ok {
		return nil
	}
	return &types.HotelBookingDTO{
		BookingCommonDTO: common,
		HotelID:          NormalizeID(m["hotel_id"]),
		CheckIn:          NormalizeTime(m["check_in"]),
		CheckOut:         NormalizeTime(m["check_out"]),
		Rooms:            toInt64(m["rooms"]),
		Adults:           toInt64(m["adults"]),
		Children:         toInt64(m["children"]),
		BedType:          toString(m["bed_type"]),
		SpecialRequest:   toString(m["special_request"]),
	}
}

func SerializePackageBooking(m map[string]any) *types.PackageBookingDTO {
	if m == nil {
		return nil
	}
	common, ok := serializeCommon(m)
	if !ok {
		return nil
	}
	return &types.PackageBookingDTO{
		BookingCommonDTO: common,
		PackageID:        NormalizeID(m["package_id"]),
		TravelDate:       NormalizeTime(m["travel_date"]),
		Adults:           toInt64(m["adults"]),
		Children:         toInt64(m["children"]),
		Travelers:        serializeTravelers(m["travelers"]),
	}
}

func SerializeCustomRequest(m map[string]any) *types.CustomRequestDTO {
	if m == nil {
		return nil
	}
	common, ok := serializeCommon(m)
	if !ok {
		return nil
	}
	return &types.CustomRequestDTO{
		BookingCommonDTO: common,
		DepartureDate:    NormalizeTime(m["departure_date"]),
		ReturnDate:       NormalizeTime(m["return_date"]),
		Adults:           toInt64(m["adults"]),
		Children:         toInt64(m["children"]),
		FlightFrom:       toString(m["flight_from"]),
		FlightTo:         toString(m["flight_to"]),
		Hotels:           serializeHotelPrefs(m["hotels"]),
		Travelers:        serializeTravelers(m["travelers"]),
		SelectedServices: serializeServices(m["selected_services"]),
	}
}
