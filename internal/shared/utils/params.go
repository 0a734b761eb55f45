package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"opsight/internal/shared/biztime"
)

// OptionalUintQuery parses a numeric query parameter. A missing or
// unparsable value is treated as unset, never as an error.
func OptionalUintQuery(c *gin.Context, key string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// OptionalIntQuery parses an integer query parameter with the same
// unset-on-failure semantics as OptionalUintQuery.
func OptionalIntQuery(c *gin.Context, key string) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// OptionalStringQuery returns the trimmed query value and whether it was set.
func OptionalStringQuery(c *gin.Context, key string) (string, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return "", false
	}
	return raw, true
}

// OptionalDateQuery parses a YYYY-MM-DD query parameter as a business-timezone
// date. Unparsable values are treated as unset.
func OptionalDateQuery(c *gin.Context, key string) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Time{}, false
	}
	t, err := biztime.ParseDateInBizTimezone(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
