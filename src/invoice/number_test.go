package invoice

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberShape(t *testing.T) {
	restore := now
	now = func() time.Time { return time.UnixMilli(1792345678901) }
	defer func() { now = restore }()

	n := Number("64f0000000000000000000ab", "hotel")
	assert.Regexp(t, regexp.MustCompile(`^HTL-\d{6}-00AB$`), n)
	assert.Equal(t, "HTL-678901-00AB", n)

	assert.Equal(t, "PKG-678901-41F7", Number("2b1f0a32-9c40-4d84-9b32-04a1c9a441f7", "package"))
	assert.Equal(t, "CUS-678901-00AB", Number("64f0000000000000000000ab", "custom"))
	// Unknown kinds fall back to the custom prefix.
	assert.Equal(t, "CUS-678901-00AB", Number("64f0000000000000000000ab", "something-else"))
}

func TestNumberShortAndEmptyIDs(t *testing.T) {
	restore := now
	now = func() time.Time { return time.UnixMilli(1792345000042) }
	defer func() { now = restore }()

	assert.Equal(t, "HTL-000042-AB", Number("ab", "hotel"))
	assert.Equal(t, "HTL-000042-0000", Number("", "hotel"))
}
