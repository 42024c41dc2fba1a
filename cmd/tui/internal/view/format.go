package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const remoteTimeout = 15 * time.Second

// FormatAmount renders a currency amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// RemoteCtx returns a context bounding a single club API call.
func RemoteCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), remoteTimeout)
}
