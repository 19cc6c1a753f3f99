package invoice

import (
	"fmt"
	"strings"
	"time"

	"umrahdesk/src/types"
)

// Clock injectable for tests.
var now = time.Now

// Number derives a display invoice number from the booking id and kind:
// <PREFIX>-<last 6 digits of epoch ms>-<last 4 id chars, uppercased>.
// The scheme is not collision-proof under concurrent generation; that is
// a known property of the numbering, kept as-is, and no uniqueness check
// or retry exists.
func Number(bookingID, bookingType string) string {
	prefix := "CUS"
	switch bookingType {
	case types.KIND_HOTEL:
		prefix = "HTL"
	case types.KIND_PACKAGE:
		prefix = "PKG"
	}
	ms := now().UnixMilli()
	tail := fmt.Sprintf("%06d", ms%1000000)

	id := strings.ReplaceAll(strings.TrimSpace(bookingID), "-", "")
	suffix := "0000"
	if n := len(id); n >= 4 {
		suffix = strings.ToUpper(id[n-4:])
	} else if n > 0 {
		suffix = strings.ToUpper(id)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, tail, suffix)
}
