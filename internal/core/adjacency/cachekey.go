package adjacency

import (
	"crypto/md5" //nolint:gosec // cache key derivation, not security
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/postnav/internal/core/domain"
)

// CacheGroup is the cache namespace shared by all navigation lookups.
const CacheGroup = "counts"

// Cache key prefixes.
const (
	adjacentPrefix = "adjacent_post_"
	boundaryPrefix = "boundary_post_"
)

// AdjacentCacheKey derives the cache key of a fully built adjacency query.
// Hooks have already run, so rewritten clauses yield different keys.
func AdjacentCacheKey(q *domain.AdjacencyQuery) string {
	return CacheKey(adjacentPrefix, q.SQL(), q.Args())
}

// BoundaryCacheKey derives the cache key of a boundary listing.
func BoundaryCacheKey(q domain.BoundaryQuery) string {
	text, args := BoundarySQL(q)
	return CacheKey(boundaryPrefix, text, args)
}

// CacheKey hashes the query text and its rendered arguments.
// Equal text and arguments always produce the same key.
func CacheKey(prefix, text string, args []any) string {
	var b strings.Builder
	b.WriteString(text)
	for _, arg := range args {
		b.WriteString("\x00")
		b.WriteString(renderArg(arg))
	}
	sum := md5.Sum([]byte(b.String())) //nolint:gosec
	return prefix + hex.EncodeToString(sum[:])
}

func renderArg(arg any) string {
	switch v := arg.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
