package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// Snowflake ids exceed the integer range JavaScript clients can hold.
func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func optionalTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formatted := formatTimestamp(t)
	return &formatted
}
