package sanitize

import (
	"testing"
	"time"

	"umrahdesk/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomPayload() map[string]any {
	return map[string]any{
		"customer_name":  "  Ahmed Raza ",
		"email":          "Ahmed.Raza@Example.COM",
		"phone":          "+92 300 1234567",
		"departure_date": "2026-03-01",
		"return_date":    "2026-03-15",
		"adults":         float64(2),
		"children":       "1",
		"flight_from":    "Karachi",
		"flight_to":      "Jeddah",
		"hotels": []any{
			map[string]any{"city": "Makkah", "hotel": "Makkah Towers", "class": "4-star", "nights": float64(7), "bed_type": "double"},
		},
		"travelers": []any{
			map[string]any{"name": "Ahmed Raza", "passport": "AB1234567", "age": float64(34), "gender": "male"},
		},
		"selected_services": []any{"Ziyarat tour", " Transport ", ""},
	}
}

func TestSanitizeCustomRequestNormalizes(t *testing.T) {
	record, verr := SanitizeCustomRequest(validCustomPayload())
	require.Nil(t, verr)

	assert.Equal(t, "Ahmed Raza", record.CustomerName)
	assert.Equal(t, "ahmed.raza@example.com", record.Email)
	assert.Equal(t, types.BOOKING_PENDING, record.Status)
	assert.Equal(t, int64(2), record.Adults)
	assert.Equal(t, int64(1), record.Children)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), record.DepartureDate)
	assert.Len(t, record.Hotels, 1)
	assert.Len(t, record.Travelers, 1)
	// Services are trimmed and empties dropped.
	assert.Equal(t, types.JSONBArray{"Ziyarat tour", "Transport"}, record.SelectedServices)
}

func TestSanitizeRejectsFirstOffendingField(t *testing.T) {
	payload := validCustomPayload()
	delete(payload, "email")
	_, verr := SanitizeCustomRequest(payload)
	require.NotNil(t, verr)
	assert.Equal(t, types.KIND_CUSTOM, verr.Kind)
	assert.Equal(t, "email", verr.Field)
}

func TestSanitizeRejectsReturnBeforeDeparture(t *testing.T) {
	for _, ret := range []string{"2026-02-20", "2026-03-01"} {
		payload := validCustomPayload()
		payload["return_date"] = ret
		_, verr := SanitizeCustomRequest(payload)
		require.NotNil(t, verr, "return_date %s must be rejected", ret)
		assert.Equal(t, "return_date", verr.Field)
	}
}

func TestSanitizeRejectsUnparsableDate(t *testing.T) {
	payload := validCustomPayload()
	payload["departure_date"] = "not-a-date"
	_, verr := SanitizeCustomRequest(payload)
	require.NotNil(t, verr)
	assert.Equal(t, "departure_date", verr.Field)
}

func TestSanitizeDropsMalformedHotelEntries(t *testing.T) {
	payload := validCustomPayload()
	payload["hotels"] = []any{
		map[string]any{"city": "Makkah", "hotel": "Makkah Towers", "class": "4-star", "nights": float64(7), "bed_type": "double"},
		map[string]any{"city": "Madinah", "hotel": "Dar Al Taqwa"}, // no bed_type
	}
	record, verr := SanitizeCustomRequest(payload)
	require.Nil(t, verr)
	require.Len(t, record.Hotels, 1)
	entry := record.Hotels[0].(map[string]any)
	assert.Equal(t, "Makkah Towers", entry["hotel"])
}

func TestSanitizeRequiresOneValidHotelPreference(t *testing.T) {
	payload := validCustomPayload()
	payload["hotels"] = []any{
		map[string]any{"city": "Madinah"},
	}
	_, verr := SanitizeCustomRequest(payload)
	require.NotNil(t, verr)
	assert.Equal(t, "hotels", verr.Field)
}

func TestSanitizeDropsMalformedTravelers(t *testing.T) {
	payload := validCustomPayload()
	payload["travelers"] = []any{
		map[string]any{"name": "Ahmed Raza", "age": float64(34)},
		map[string]any{"passport": "XX000"}, // no name
		"not an object",
	}
	record, verr := SanitizeCustomRequest(payload)
	require.Nil(t, verr)
	assert.Len(t, record.Travelers, 1)
}

func TestSanitizeStatusIsNotValidated(t *testing.T) {
	// Any status string is accepted as-is. Introducing enum enforcement
	// here would be a deliberate behavior change; this test pins the
	// permissiveness.
	payload := validCustomPayload()
	payload["status"] = "telepathically-confirmed"
	record, verr := SanitizeCustomRequest(payload)
	require.Nil(t, verr)
	assert.Equal(t, "telepathically-confirmed", record.Status)
}

func TestSanitizeHotelBooking(t *testing.T) {
	payload := map[string]any{
		"customer_name": "Sana Khan",
		"email":         "SANA@example.com",
		"phone":         "+92 333 7654321",
		"check_in":      "2026-05-10",
		"check_out":     "2026-05-14",
		"rooms":         float64(2),
		"adults":        float64(3),
		"bed_type":      "twin",
	}
	record, verr := SanitizeHotelBooking(payload)
	require.Nil(t, verr)
	assert.Equal(t, "sana@example.com", record.Email)
	assert.Equal(t, int64(2), record.Rooms)
	assert.Equal(t, int64(0), record.Children)

	payload["rooms"] = float64(0)
	_, verr = SanitizeHotelBooking(payload)
	require.NotNil(t, verr)
	assert.Equal(t, "rooms", verr.Field)

	payload["rooms"] = float64(1)
	payload["check_out"] = "2026-05-10"
	_, verr = SanitizeHotelBooking(payload)
	require.NotNil(t, verr)
	assert.Equal(t, "check_out", verr.Field)
}

func TestSanitizePackageBooking(t *testing.T) {
	payload := map[string]any{
		"customer_name": "Bilal Ahmed",
		"email":         "bilal@example.com",
		"phone":         "+92 321 1112223",
		"travel_date":   "2026-04-20",
		"adults":        "2",
		"travelers": []any{
			map[string]any{"name": "Bilal Ahmed", "passport": "CD7654321", "age": float64(41), "gender": "male"},
			map[string]any{"name": "Maryam Bibi", "age": "38"},
		},
	}
	record, verr := SanitizePackageBooking(payload)
	require.Nil(t, verr)
	assert.Equal(t, int64(2), record.Adults)
	assert.Len(t, record.Travelers, 2)

	payload["adults"] = float64(0)
	_, verr = SanitizePackageBooking(payload)
	require.NotNil(t, verr)
	assert.Equal(t, "adults", verr.Field)
}

func TestSanitizeNilPayload(t *testing.T) {
	_, verr := SanitizeHotelBooking(nil)
	assert.NotNil(t, verr)
	_, verr2 := SanitizeCustomRequest(nil)
	assert.NotNil(t, verr2)
}

func TestSanitizeDoesNotEnforcePaymentInvariant(t *testing.T) {
	// paid > total is accepted. Overpayment handling belongs to the
	// back office, not intake.
	payload := validCustomPayload()
	payload["total_amount"] = float64(100000)
	payload["paid_amount"] = float64(250000)
	record, verr := SanitizeCustomRequest(payload)
	require.Nil(t, verr)
	assert.Equal(t, int64(100000), record.TotalAmount)
	assert.Equal(t, int64(250000), record.PaidAmount)
}
