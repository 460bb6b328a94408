package graph

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue renders a value returned by the graph driver as a spreadsheet
// cell. Integers print in decimal, floats in their shortest form, lists are
// joined with ", " and nil becomes an empty cell.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := FormatValue(item); s != "" {
				parts = append(parts, s)
			}
		}

		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
