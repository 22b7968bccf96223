// Package filter decides which recommendation cards stay visible for the
// current filter controls and keeps the empty-state banner in sync.
package filter

import (
	"math"
	"strings"

	"github.com/goliatone/go-hostelui/pkg/card"
)

// Any disables a categorical criterion.
const Any = "any"

// Criteria are the filter control values. A nil MaxRent is unbounded.
type Criteria struct {
	MinScore   float64
	MaxRent    *float64
	RoomType   string
	HostelType string
}

// Unbounded returns criteria that match every card.
func Unbounded() Criteria {
	return Criteria{RoomType: Any, HostelType: Any}
}

// WithMaxRent returns a copy bounded by rent.
func (c Criteria) WithMaxRent(rent float64) Criteria {
	c.MaxRent = &rent
	return c
}

// RentLimit returns the rent bound, +Inf when unbounded.
func (c Criteria) RentLimit() float64 {
	if c.MaxRent == nil {
		return math.Inf(1)
	}
	return *c.MaxRent
}

// Match reports whether rec satisfies every criterion. A single failing
// predicate hides the card.
func Match(c Criteria, rec card.Record) bool {
	return matchScore(c, rec) &&
		matchRent(c, rec) &&
		matchRoomType(c, rec) &&
		matchHostelType(c, rec)
}

func matchScore(c Criteria, rec card.Record) bool {
	return rec.Score >= c.MinScore
}

// An unknown card rent cannot be compared and is never excluded.
func matchRent(c Criteria, rec card.Record) bool {
	if c.MaxRent == nil || !rec.Rent.Known {
		return true
	}
	return rec.Rent.Value <= *c.MaxRent
}

func matchRoomType(c Criteria, rec card.Record) bool {
	if isAny(c.RoomType) {
		return true
	}
	return rec.HasRoomType(c.RoomType)
}

func matchHostelType(c Criteria, rec card.Record) bool {
	if isAny(c.HostelType) {
		return true
	}
	return rec.HostelType == c.HostelType
}

func isAny(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, Any)
}
