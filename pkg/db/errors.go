package db

import (
	"context"
	"errors"
	"strings"
)

// IsUnavailable reports whether err looks like a connectivity problem rather
// than a query problem. Used to pick log severity only.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{"connection refused", "no such host", "database is closed", "sql: database is closed", "broken pipe"} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
