package domain

import (
	"fmt"
	"strings"
)

// MatchMode combines the criteria of a search.
type MatchMode int

const (
	// MatchAll requires every criterion to match (AND).
	MatchAll MatchMode = iota
	// MatchAny requires at least one criterion to match (OR).
	MatchAny
)

// ParseMatchMode accepts "and"/"all" and "or"/"any", ignoring case. An empty
// string is MatchAll.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "and", "all":
		return MatchAll, nil
	case "or", "any":
		return MatchAny, nil
	}
	return MatchAll, fmt.Errorf("%w: unknown match mode %q", ErrInvalidArgument, s)
}

func (m MatchMode) String() string {
	if m == MatchAny {
		return "or"
	}
	return "and"
}

// Criterion is one (category, value) pair of a search.
type Criterion struct {
	Category TagCategory `json:"category"`
	Value    string      `json:"value"`
}

// NewCriterion validates a criterion the same way NewTag validates a tag.
func NewCriterion(category, value string) (Criterion, error) {
	tag, err := NewTag(category, value)
	if err != nil {
		return Criterion{}, err
	}
	return Criterion{Category: tag.Category(), Value: tag.Value()}, nil
}

// MatchedBy reports whether photo carries a tag satisfying the criterion.
func (c Criterion) MatchedBy(photo *Photo) bool {
	return photo.HasTag(string(c.Category), c.Value)
}

func (c Criterion) String() string {
	return string(c.Category) + "=" + c.Value
}
