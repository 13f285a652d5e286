package deal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const canonicalDateLayout = "2006-01-02"

// Layouts tried when a date value carries no time component. The sheet
// side usually arrives pre-formatted by the spreadsheet library; the API
// side is ISO and handled by the "T" truncation before parsing is reached.
var dateLayouts = []string{
	canonicalDateLayout,
	"01-02-2006",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// NormalizeDate reduces a date-like value to canonical YYYY-MM-DD form
// for comparison. It never fails: a value it cannot confidently parse is
// passed through as its literal string so a mismatch is reported instead
// of aborting the run. Nil and empty values normalize to the empty string.
func NormalizeDate(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case time.Time:
		return d.Format(canonicalDateLayout)
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return ""
		}
		// "2019-03-22T09:31:18Z" and friends
		if i := strings.IndexByte(s, 'T'); i >= 0 {
			return s[:i]
		}
		// "2026-02-01 00:00:00" and friends
		if i := strings.IndexByte(s, ' '); i >= 0 {
			return s[:i]
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(canonicalDateLayout)
			}
		}
		return s
	default:
		return ValueString(v)
	}
}

// ValueString renders a scalar cell or JSON value for comparison.
// Nil renders empty; JSON numbers render without a decimal tail so that
// a sheet cell "50" matches an API value of 50.
func ValueString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(canonicalDateLayout)
	default:
		return fmt.Sprintf("%v", x)
	}
}
