// Package sanitize validates and coerces raw intake payloads into
// canonical booking records. Top-level required fields are strict: the
// first offending field fails the whole record with a ValidationError.
// Nested collections are tolerant: malformed entries are dropped, not
// fatal. The asymmetry is deliberate and pinned by tests.
package sanitize

import (
	"strconv"
	"strings"
	"time"

	"umrahdesk/src/config"
	"umrahdesk/src/models"
	"umrahdesk/src/types"

	"github.com/google/uuid"
)

func getString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func requireString(kind string, m map[string]any, field string, aliases ...string) (string, *types.ValidationError) {
	s := getString(m, append([]string{field}, aliases...)...)
	if s == "" {
		return "", types.NewValidationError(kind, field, "%s is required", field)
	}
	return s, nil
}

// parseNumber coerces json numbers, ints and numeric strings. The second
// return is false when the value cannot be read as a number at all.
func parseNumber(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

func requireInt(kind string, m map[string]any, field string, min int64) (int64, *types.ValidationError) {
	v, ok := m[field]
	if !ok || v == nil {
		return 0, types.NewValidationError(kind, field, "%s is required", field)
	}
	n, ok := parseNumber(v)
	if !ok {
		return 0, types.NewValidationError(kind, field, "%s must be a number", field)
	}
	if n < min {
		return 0, types.NewValidationError(kind, field, "%s must be at least %d", field, min)
	}
	return n, nil
}

// optionalInt falls back to def when the field is absent; a present but
// unreadable or out-of-range value is still an error.
func optionalInt(kind string, m map[string]any, field string, def, min int64) (int64, *types.ValidationError) {
	v, ok := m[field]
	if !ok || v == nil || v == "" {
		return def, nil
	}
	n, ok := parseNumber(v)
	if !ok {
		return 0, types.NewValidationError(kind, field, "%s must be a number", field)
	}
	if n < min {
		return 0, types.NewValidationError(kind, field, "%s must be at least %d", field, min)
	}
	return n, nil
}

func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range []string{time.RFC3339, config.DATE_PARSE_FORMAT, config.TIME_PARSE_FORMAT} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func requireDate(kind string, m map[string]any, field string) (time.Time, *types.ValidationError) {
	v, ok := m[field]
	if !ok || v == nil {
		return time.Time{}, types.NewValidationError(kind, field, "%s is required", field)
	}
	t, ok := parseDate(v)
	if !ok {
		return time.Time{}, types.NewValidationError(kind, field, "%s is not a valid date", field)
	}
	return t, nil
}

func requireEmail(kind string, m map[string]any) (string, *types.ValidationError) {
	s, verr := requireString(kind, m, "email")
	if verr != nil {
		return "", verr
	}
	return strings.ToLower(s), nil
}

// status passes through unvalidated. Any string may follow any other;
// enum enforcement would be a behavior change.
func statusOf(m map[string]any) string {
	if s := getString(m, "status"); s != "" {
		return s
	}
	return types.BOOKING_PENDING
}

func optionalUUID(m map[string]any, keys ...string) *uuid.UUID {
	s := getString(m, keys...)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func pick(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asMapSlice(v any) []map[string]any {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// sanitizeHotelPrefs keeps only entries carrying city, hotel and bed type.
// Malformed entries are dropped, never fatal.
func sanitizeHotelPrefs(v any) types.JSONBArray {
	out := types.JSONBArray{}
	for _, entry := range asMapSlice(v) {
		city := getString(entry, "city")
		hotel := getString(entry, "hotel", "hotel_name", "hotelName")
		bedType := getString(entry, "bed_type", "bedType")
		if city == "" || hotel == "" || bedType == "" {
			continue
		}
		nights, ok := parseNumber(entry["nights"])
		if !ok || nights < 1 {
			nights = 1
		}
		class := getString(entry, "class", "hotel_class", "hotelClass")
		out = append(out, map[string]any{
			"city":     city,
			"hotel":    hotel,
			"class":    class,
			"nights":   nights,
			"bed_type": bedType,
		})
	}
	return out
}

func sanitizeTravelers(v any) types.JSONBArray {
	out := types.JSONBArray{}
	for _, entry := range asMapSlice(v) {
		name := getString(entry, "name", "full_name", "fullName")
		if name == "" {
			continue
		}
		age, ok := parseNumber(entry["age"])
		if !ok || age < 0 {
			age = 0
		}
		out = append(out, map[string]any{
			"name":     name,
			"passport": getString(entry, "passport", "passport_no", "passportNo"),
			"age":      age,
			"gender":   getString(entry, "gender"),
		})
	}
	return out
}

func sanitizeServices(v any) types.JSONBArray {
	out := types.JSONBArray{}
	raw, ok := v.([]any)
	if !ok {
		return out
	}
	for _, e := range raw {
		s, ok := e.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func sanitizeCommon(kind string, m map[string]any) (models.BookingCommon, *types.ValidationError) {
	var c models.BookingCommon
	name, verr := requireString(kind, m, "customer_name", "customerName", "name")
	if verr != nil {
		return c, verr
	}
	email, verr := requireEmail(kind, m)
	if verr != nil {
		return c, verr
	}
	phone, verr := requireString(kind, m, "phone")
	if verr != nil {
		return c, verr
	}
	total, verr := optionalInt(kind, m, "total_amount", 0, 0)
	if verr != nil {
		return c, verr
	}
	// Deliberately no paid<=total check; overpayment is left to the
	// operator.
	paid, verr := optionalInt(kind, m, "paid_amount", 0, 0)
	if verr != nil {
		return c, verr
	}
	c.CustomerName = name
	c.Email = email
	c.Phone = phone
	c.Status = statusOf(m)
	c.TotalAmount = total
	c.PaidAmount = paid
	c.PaymentStatus = getString(m, "payment_status", "paymentStatus")
	if c.PaymentStatus == "" {
		c.PaymentStatus = types.PAYMENT_UNPAID
	}
	c.PaymentMethod = getString(m, "payment_method", "paymentMethod")
	return c, nil
}

// SanitizeHotelBooking turns a raw payload into a canonical hotel booking
// or fails on the first offending field.
func SanitizeHotelBooking(m map[string]any) (*models.HotelBooking, *types.ValidationError) {
	const kind = types.KIND_HOTEL
	if m == nil {
		return nil, types.NewValidationError(kind, "", "empty payload")
	}
	common, verr := sanitizeCommon(kind, m)
	if verr != nil {
		return nil, verr
	}
	checkIn, verr := requireDate(kind, m, "check_in")
	if verr != nil {
		return nil, verr
	}
	checkOut, verr := requireDate(kind, m, "check_out")
	if verr != nil {
		return nil, verr
	}
	if !checkOut.After(checkIn) {
		return nil, types.NewValidationError(kind, "check_out", "check-out must be after check-in")
	}
	rooms, verr := requireInt(kind, m, "rooms", 1)
	if verr != nil {
		return nil, verr
	}
	adults, verr := requireInt(kind, m, "adults", 1)
	if verr != nil {
		return nil, verr
	}
	children, verr := optionalInt(kind, m, "children", 0, 0)
	if verr != nil {
		return nil, verr
	}
	return &models.HotelBooking{
		BookingCommon:  common,
		HotelID:        optionalUUID(m, "hotel_id", "hotelId"),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Rooms:          rooms,
		Adults:         adults,
		Children:       children,
		BedType:        getString(m, "bed_type", "bedType"),
		SpecialRequest: getString(m, "special_request", "specialRequest"),
	}, nil
}

func SanitizePackageBooking(m map[string]any) (*models.PackageBooking, *types.ValidationError) {
	const kind = types.KIND_PACKAGE
	if m == nil {
		return nil, types.NewValidationError(kind, "", "empty payload")
	}
	common, verr := sanitizeCommon(kind, m)
	if verr != nil {
		return nil, verr
	}
	travelDate, verr := requireDate(kind, m, "travel_date")
	if verr != nil {
		return nil, verr
	}
	adults, verr := requireInt(kind, m, "adults", 1)
	if verr != nil {
		return nil, verr
	}
	children, verr := optionalInt(kind, m, "children", 0, 0)
	if verr != nil {
		return nil, verr
	}
	return &models.PackageBooking{
		BookingCommon: common,
		PackageID:     optionalUUID(m, "package_id", "packageId"),
		TravelDate:    travelDate,
		Adults:        adults,
		Children:      children,
		Travelers:     sanitizeTravelers(pick(m, "travelers", "person_entries")),
	}, nil
}

// SanitizeCustomRequest validates a fully bespoke trip request. Unlike the
// other nested collections, the hotel-preference list must keep at least
// one valid entry or the whole record fails.
func SanitizeCustomRequest(m map[string]any) (*models.CustomUmrahRequest, *types.ValidationError) {
	const kind = types.KIND_CUSTOM
	if m == nil {
		return nil, types.NewValidationError(kind, "", "empty payload")
	}
	common, verr := sanitizeCommon(kind, m)
	if verr != nil {
		return nil, verr
	}
	depart, verr := requireDate(kind, m, "departure_date")
	if verr != nil {
		return nil, verr
	}
	ret, verr := requireDate(kind, m, "return_date")
	if verr != nil {
		return nil, verr
	}
	if !ret.After(depart) {
		return nil, types.NewValidationError(kind, "return_date", "return date must be after departure date")
	}
	adults, verr := requireInt(kind, m, "adults", 1)
	if verr != nil {
		return nil, verr
	}
	children, verr := optionalInt(kind, m, "children", 0, 0)
	if verr != nil {
		return nil, verr
	}
	hotels := sanitizeHotelPrefs(pick(m, "hotels", "hotel_preferences", "hotelPreferences"))
	if len(hotels) == 0 {
		return nil, types.NewValidationError(kind, "hotels", "at least one valid hotel preference is required")
	}
	return &models.CustomUmrahRequest{
		BookingCommon:    common,
		DepartureDate:    depart,
		ReturnDate:       ret,
		Adults:           adults,
		Children:         children,
		FlightFrom:       getString(m, "flight_from", "flightFrom"),
		FlightTo:         getString(m, "flight_to", "flightTo"),
		Hotels:           hotels,
		Travelers:        sanitizeTravelers(pick(m, "travelers", "person_entries")),
		SelectedServices: sanitizeServices(pick(m, "selected_services", "selectedServices")),
	}, nil
}
