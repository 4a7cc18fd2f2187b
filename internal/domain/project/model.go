package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// HoursScale is the number of fractional digits kept for hour values.
const HoursScale = 2

// Project is a single DIY project row. ID is zero until the store assigns one.
type Project struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	EstimatedHours decimal.NullDecimal `json:"estimated_hours"`
	ActualHours    decimal.NullDecimal `json:"actual_hours"`
	Difficulty     *int                `json:"difficulty,omitempty"`
	Notes          string              `json:"notes,omitempty"`
}

// ProjectSummary is a lightweight representation for listing
type ProjectSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// String renders the project on one line, the way the console shows the
// current selection.
func (p Project) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID=%d, name=%s", p.ID, p.Name)
	fmt.Fprintf(&b, ", estimated hours=%s", FormatHours(p.EstimatedHours))
	fmt.Fprintf(&b, ", actual hours=%s", FormatHours(p.ActualHours))
	fmt.Fprintf(&b, ", difficulty=%s", FormatDifficulty(p.Difficulty))
	fmt.Fprintf(&b, ", notes=%s", p.Notes)
	return b.String()
}

// FormatHours renders an hour value with two fractional digits, or "none".
func FormatHours(h decimal.NullDecimal) string {
	if !h.Valid {
		return "none"
	}
	return h.Decimal.StringFixed(HoursScale)
}

// FormatDifficulty renders a difficulty, or "none".
func FormatDifficulty(d *int) string {
	if d == nil {
		return "none"
	}
	return strconv.Itoa(*d)
}

// NormalizeHours rounds h to HoursScale digits. Stores call it on every value
// they read back. A value too large to hold is left as is for Validate to
// reject.
func NormalizeHours(h decimal.NullDecimal) decimal.NullDecimal {
	if !h.Valid {
		return h
	}
	switch m := hoursMagnitude(h.Decimal); {
	case h.Decimal.IsZero():
		// zero may still carry an exponent of any size
		return Hours(decimal.Zero)
	case m > maxHoursDigits:
		return h
	case m < -HoursScale:
		return Hours(decimal.Zero)
	}
	return decimal.NewNullDecimal(h.Decimal.Round(HoursScale))
}

// hoursMagnitude returns m such that |d| lies in [10^(m-1), 10^m). It never
// rescales d, so an extreme exponent costs nothing.
func hoursMagnitude(d decimal.Decimal) int64 {
	if d.IsZero() {
		return 0
	}
	return int64(d.Exponent()) + int64(d.NumDigits())
}

// Hours builds a present hour value from a decimal.
func Hours(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d.Round(HoursScale))
}

// IntPtr is a helper for optional difficulty values.
func IntPtr(v int) *int {
	return &v
}
