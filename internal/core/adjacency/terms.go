package adjacency

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/postnav/internal/logger"
)

// legacySeparator is the pre-comma separator for excluded term lists.
const legacySeparator = " and "

// ParseTermList splits a delimited term ID list.
//
// Comma is the separator. The legacy " and " separator is still accepted
// with a deprecation warning. Entries are coerced with IntVal, so
// non-numeric entries become 0 instead of failing.
func ParseTermList(list string) []int64 {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	var parts []string
	if strings.Contains(list, legacySeparator) {
		logger.Warn("excluded terms separated by %q are deprecated; use commas instead", "and")
		parts = strings.Split(list, legacySeparator)
	} else {
		parts = strings.Split(list, ",")
	}

	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id := IntVal(part)
		if id == 0 {
			logger.Debug("Excluded term %q coerced to 0", part)
		}
		ids = append(ids, id)
	}
	return ids
}

// IntVal parses the leading integer of s.
// Leading whitespace and one sign are allowed; parsing stops at the
// first non-digit. Strings without leading digits yield 0.
func IntVal(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

// NormalizeExcluded merges explicit IDs and a delimited list into one set,
// keeping first-seen order.
func NormalizeExcluded(ids []int64, list string) []int64 {
	merged := make([]int64, 0, len(ids))
	merged = append(merged, ids...)
	merged = append(merged, ParseTermList(list)...)
	return unique(merged)
}

// Subtract returns the IDs in from that are not in remove, keeping order.
func Subtract(from, remove []int64) []int64 {
	if len(from) == 0 {
		return nil
	}
	drop := make(map[int64]struct{}, len(remove))
	for _, id := range remove {
		drop[id] = struct{}{}
	}
	result := make([]int64, 0, len(from))
	for _, id := range from {
		if _, ok := drop[id]; !ok {
			result = append(result, id)
		}
	}
	return result
}

func unique(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// joinIDs renders IDs as a comma separated SQL list.
// An empty list renders as NULL, which no term ID matches.
func joinIDs(ids []int64) string {
	if len(ids) == 0 {
		return "NULL"
	}
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}
