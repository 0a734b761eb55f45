package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"opsight/internal/shared/utils"
)

// Optional query helpers. Absent or unparsable values yield nil, never an
// error, so bad parameters degrade to unset filters.

func optUintQuery(c *gin.Context, key string) *uint {
	if v, ok := utils.OptionalUintQuery(c, key); ok {
		return &v
	}
	return nil
}

func optIntQuery(c *gin.Context, key string) *int {
	if v, ok := utils.OptionalIntQuery(c, key); ok {
		return &v
	}
	return nil
}

func optStringQuery(c *gin.Context, key string) *string {
	if v, ok := utils.OptionalStringQuery(c, key); ok {
		return &v
	}
	return nil
}

func optDateQuery(c *gin.Context, key string) *time.Time {
	if v, ok := utils.OptionalDateQuery(c, key); ok {
		return &v
	}
	return nil
}

// listQuery collects a repeatable parameter, also splitting comma-separated
// values, so both metrics=a&metrics=b and metrics=a,b work.
func listQuery(c *gin.Context, key string) []string {
	var values []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
