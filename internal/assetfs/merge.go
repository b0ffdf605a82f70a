package assetfs

import (
	"slices"
	"strings"

	"github.com/thoreinstein/aisync/internal/model"
)

// DuplicatePolicy decides which of two items sharing a logical name is kept.
type DuplicatePolicy int

const (
	// FirstWins keeps the first occurrence. Callers pass items from the most
	// trusted source first.
	FirstWins DuplicatePolicy = iota

	// NewestWins replaces the kept item only when the candidate's
	// modification time is strictly greater.
	NewestWins
)

func (p DuplicatePolicy) String() string {
	switch p {
	case FirstWins:
		return "first-wins"
	case NewestWins:
		return "newest-wins"
	default:
		return "unknown"
	}
}

// prefer reports whether candidate should replace current.
func (p DuplicatePolicy) prefer(current, candidate model.Command) bool {
	if p == NewestWins {
		return candidate.Modified.After(current.Modified)
	}
	return false
}

// MergeByName collapses items with the same logical name according to
// policy and returns the survivors sorted by name.
func MergeByName(items []model.Command, policy DuplicatePolicy) []model.Command {
	if len(items) == 0 {
		return nil
	}

	byName := make(map[string]int, len(items))
	merged := make([]model.Command, 0, len(items))
	for _, item := range items {
		i, seen := byName[item.Name]
		if !seen {
			byName[item.Name] = len(merged)
			merged = append(merged, item)
			continue
		}
		if policy.prefer(merged[i], item) {
			merged[i] = item
		}
	}

	slices.SortFunc(merged, func(a, b model.Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return merged
}
