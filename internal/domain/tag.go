package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TagCategory is the fixed set of tag names a photo can carry.
type TagCategory string

const (
	TagPerson   TagCategory = "person"
	TagLocation TagCategory = "location"
)

// TagCategories returns every supported category in declaration order.
func TagCategories() []TagCategory {
	return []TagCategory{TagPerson, TagLocation}
}

// ParseTagCategory resolves s to a supported category, ignoring case and
// surrounding whitespace.
func ParseTagCategory(s string) (TagCategory, error) {
	for _, c := range TagCategories() {
		if SameName(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown tag category %q", ErrInvalidArgument, s)
}

// Tag is an immutable category/value pair attached to a photo.
// swagger:model Tag
type Tag struct {
	category TagCategory
	value    string
}

// NewTag validates category and value and returns the tag. The value is stored
// trimmed; an empty value or an unknown category is ErrInvalidArgument.
func NewTag(category, value string) (Tag, error) {
	c, err := ParseTagCategory(category)
	if err != nil {
		return Tag{}, err
	}
	v := strings.TrimSpace(value)
	if v == "" {
		return Tag{}, fmt.Errorf("%w: tag value cannot be empty", ErrInvalidArgument)
	}
	return Tag{category: c, value: v}, nil
}

func (t Tag) Category() TagCategory { return t.category }

func (t Tag) Value() string { return t.value }

// Equal reports whether both tags have the same category and value, compared
// case-insensitively.
func (t Tag) Equal(other Tag) bool {
	return t.Matches(string(other.category), other.value)
}

// Matches reports whether the tag has the given category and value, compared
// case-insensitively.
func (t Tag) Matches(category, value string) bool {
	return SameName(string(t.category), category) && SameName(t.value, value)
}

func (t Tag) String() string {
	return string(t.category) + ": " + t.value
}

type tagJSON struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

// MarshalJSON encodes the tag as {"category": ..., "value": ...}.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagJSON{Category: string(t.category), Value: t.value})
}

// UnmarshalJSON decodes and validates a tag, so decoded tags hold the same
// invariants as ones built with NewTag.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var raw tagJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tag, err := NewTag(raw.Category, raw.Value)
	if err != nil {
		return err
	}
	*t = tag
	return nil
}
