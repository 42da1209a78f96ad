package convert

import (
	"log/slog"
	"time"
)

// Config holds the settings of a conversion session.
type Config struct {
	// MapName is written as the save's map name.
	MapName string
	// AuthorName is the name of the save author. The author id is nil.
	AuthorName string
	// OwnerName is the name of the single brick owner.
	OwnerName string
	// DefaultCountHint is the number of bricks to preallocate for when the
	// source does not know its size.
	DefaultCountHint int
	// CountHintCap bounds the preallocation regardless of what the source
	// claims.
	CountHintCap int
	// Now returns the save time.
	Now func() time.Time
	// Logger receives a debug record per source brick and an info summary.
	// Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		MapName:          "Unknown",
		AuthorName:       "Unknown",
		OwnerName:        "PUBLIC",
		DefaultCountHint: 100,
		CountHintCap:     10_000_000,
		Now:              time.Now,
	}
}

// capacity returns the preallocation size for a source count hint.
func (c Config) capacity(hint int, known bool) int {
	if !known || hint < 0 {
		hint = c.DefaultCountHint
	}

	if c.CountHintCap > 0 && hint > c.CountHintCap {
		hint = c.CountHintCap
	}

	return max(hint, 0)
}
