// Package normalize applies per-domain string normalization to imported
// field values. Normalization never fails: values that cannot be parsed
// pass through unchanged, since a single malformed field must not abort
// an entire import.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/credport/credport/internal/urlx"
)

// phoneValue is the structured phone representation some exports embed,
// e.g. {"num":"5551234567","ext":"12"}.
type phoneValue struct {
	Num string `json:"num"`
	Ext string `json:"ext"`
}

// Phone composes "+<number><extension>" from a structured phone value.
// Values that are not structured (or carry no number) pass through unchanged.
func Phone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return raw
	}

	var v phoneValue
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil || v.Num == "" {
		return raw
	}
	return "+" + v.Num + v.Ext
}

// Expiry normalizes a card expiry date to "MM/YY". Two source shapes are
// recognized: a textual "Month, Year" pair (e.g. "January, 2026") and a
// numeric "MM/YYYY" or "MM/YY" pair. Anything else passes through unchanged.
func Expiry(raw string) string {
	if month, year, ok := splitPair(raw, ","); ok {
		num, matched := monthNumber(month)
		if !matched {
			return raw
		}
		return fmt.Sprintf("%02d/%s", num, shortYear(year))
	}

	if month, year, ok := splitPair(raw, "/"); ok {
		num, err := strconv.Atoi(month)
		if err != nil || num < 1 || num > 12 {
			return raw
		}
		return fmt.Sprintf("%02d/%s", num, shortYear(year))
	}

	return raw
}

// Websites splits a comma-separated URL list and scheme-qualifies each
// element. An empty source field yields an empty list, never nil.
func Websites(raw string) []string {
	sites := []string{}
	for _, part := range strings.Split(raw, ",") {
		if site := urlx.WithScheme(part); site != "" {
			sites = append(sites, site)
		}
	}
	return sites
}

func splitPair(raw, sep string) (first, second string, ok bool) {
	parts := strings.SplitN(raw, sep, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	first = strings.TrimSpace(parts[0])
	second = strings.TrimSpace(parts[1])
	return first, second, first != "" && second != ""
}

func monthNumber(name string) (int, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return int(m), true
		}
	}
	return 0, false
}

// shortYear right-truncates a year to its last two digits, zero-padding
// single-digit values.
func shortYear(year string) string {
	if len(year) > 2 {
		return year[len(year)-2:]
	}
	if len(year) == 1 {
		return "0" + year
	}
	return year
}
