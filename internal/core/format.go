package core

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered for missing values.
const Placeholder = "-"

// DateLayout is the display layout for calendar dates.
const DateLayout = "Jan 2, 2006"

// DateTimeLayout is the display layout for timestamps.
const DateTimeLayout = "Jan 2, 2006 15:04"

var displayLang = language.English

// FormatNumber renders n with thousands separators and the given number of
// decimals.
func FormatNumber(n float64, decimals int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}
	p := message.NewPrinter(displayLang)
	return p.Sprintf(fmt.Sprintf("%%.%df", decimals), n)
}

// FormatCurrency renders an amount with a currency symbol and two decimals.
// Negative amounts use a leading minus: -$1,234.50.
func FormatCurrency(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Placeholder
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + currencySymbol(code) + FormatNumber(amount, 2)
}

func currencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "", "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	default:
		return strings.ToUpper(code) + " "
	}
}

// FormatPercent renders a ratio (0.25) as a percentage (25.0%).
func FormatPercent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return Placeholder
	}
	return FormatNumber(ratio*100, 1) + "%"
}

// FormatDate renders a calendar date. The zero time renders as Placeholder.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(DateLayout)
}

// FormatDateTime renders a timestamp in UTC.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.UTC().Format(DateTimeLayout)
}

// TitleCase turns an enum value such as "in_progress" into "In Progress".
func TitleCase(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s))
	if s == "" {
		return Placeholder
	}
	return cases.Title(displayLang).String(strings.ToLower(s))
}

// FormatCell renders any record value for display, including pgtype values
// scanned from PostgreSQL. Invalid and nil values render as Placeholder.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return Placeholder
	case string:
		if val == "" {
			return Placeholder
		}
		return val
	case time.Time:
		return FormatDate(val)
	case *time.Time:
		if val == nil {
			return Placeholder
		}
		return FormatDate(*val)
	case float64:
		return FormatNumber(val, 2)
	case float32:
		return FormatNumber(float64(val), 2)
	case int:
		return FormatNumber(float64(val), 0)
	case int32:
		return FormatNumber(float64(val), 0)
	case int64:
		return FormatNumber(float64(val), 0)
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case uuid.UUID:
		if val == uuid.Nil {
			return Placeholder
		}
		return val.String()

	case pgtype.Text:
		if !val.Valid {
			return Placeholder
		}
		return FormatCell(val.String)
	case pgtype.Numeric:
		if !val.Valid {
			return Placeholder
		}
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return Placeholder
		}
		return FormatNumber(f.Float64, 2)
	case pgtype.Date:
		if !val.Valid {
			return Placeholder
		}
		return FormatDate(val.Time)
	case pgtype.Timestamptz:
		if !val.Valid {
			return Placeholder
		}
		return FormatDateTime(val.Time)
	case pgtype.Timestamp:
		if !val.Valid {
			return Placeholder
		}
		return FormatDateTime(val.Time)
	case pgtype.Int4:
		if !val.Valid {
			return Placeholder
		}
		return FormatNumber(float64(val.Int32), 0)
	case pgtype.Int8:
		if !val.Valid {
			return Placeholder
		}
		return FormatNumber(float64(val.Int64), 0)
	case pgtype.Bool:
		if !val.Valid {
			return Placeholder
		}
		return FormatCell(val.Bool)
	case pgtype.UUID:
		if !val.Valid {
			return Placeholder
		}
		return uuid.UUID(val.Bytes).String()

	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}
