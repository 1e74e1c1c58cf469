package convert

import (
	"fmt"
	"strings"
	"time"
)

// isoLayouts cover the general ISO-8601 shapes the strict layout list
// misses, such as fractional seconds with an offset.
var isoLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
}

// NormalizeTime renders a free-form timestamp in outLayout, keeping the
// parsed wall-clock time as-is. Unparsable input is returned verbatim; that
// is a deliberate fallback, not an error.
func NormalizeTime(value string, layouts []string, outLayout string) string {
	if value == "" {
		return ""
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(outLayout)
		}
	}

	if strings.Contains(value, "T") {
		iso := value
		if strings.HasSuffix(iso, "Z") {
			iso = strings.TrimSuffix(iso, "Z") + "+00:00"
		}
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, iso); err == nil {
				return t.Format(outLayout)
			}
		}
	}

	fmt.Printf("unrecognized time format: %s\n", value)
	return value
}
