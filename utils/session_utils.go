package utils

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 9

// NewSessionID returns "session_<unix ms>_<base36 suffix>". Collisions are not
// checked.
func NewSessionID(now time.Time) string {
	return newID("session", now)
}

// NewContactID returns "contact_<unix ms>_<base36 suffix>".
func NewContactID(now time.Time) string {
	return newID("contact", now)
}

func newID(prefix string, now time.Time) string {
	return prefix + "_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + randomSuffix()
}

// randomSuffix draws 64 random bits from a v4 UUID and renders them in base 36.
func randomSuffix() string {
	u := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	for len(s) < suffixLen {
		s = "0" + s
	}
	return s[:suffixLen]
}
