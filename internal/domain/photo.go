package domain

import (
	"fmt"
	"path"
	"strings"
)

// Photo is a named reference to an external image resource plus its tags.
// The resource reference is the photo's identity; it is compared exactly.
type Photo struct {
	resourceRef string
	displayName string
	tags        []Tag
}

// DisplayNameFromRef derives a display name from the last path segment of a
// resource reference, ignoring any query string. It returns the trimmed
// reference itself when there is no usable segment.
func DisplayNameFromRef(ref string) string {
	ref = strings.TrimSpace(ref)
	trimmed := ref
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	base := path.Base(strings.TrimRight(trimmed, "/"))
	if base == "." || base == "/" || base == "" || strings.HasSuffix(base, ":") {
		return ref
	}
	return base
}

// NewPhoto returns an untagged photo. Both the resource reference and the
// display name are required. The reference is opaque and stored exactly as
// given, since every lookup compares it byte for byte.
func NewPhoto(resourceRef, displayName string) (*Photo, error) {
	if strings.TrimSpace(resourceRef) == "" {
		return nil, fmt.Errorf("%w: photo resource reference cannot be empty", ErrInvalidArgument)
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, fmt.Errorf("%w: photo name cannot be empty", ErrInvalidArgument)
	}
	return &Photo{resourceRef: resourceRef, displayName: name}, nil
}

func (p *Photo) ResourceRef() string { return p.resourceRef }

func (p *Photo) DisplayName() string { return p.displayName }

// Same reports whether both photos reference the same resource.
func (p *Photo) Same(other *Photo) bool {
	if p == nil || other == nil {
		return false
	}
	return p.resourceRef == other.resourceRef
}

// Tags returns a copy of the photo's tags in insertion order.
func (p *Photo) Tags() []Tag {
	out := make([]Tag, len(p.tags))
	copy(out, p.tags)
	return out
}

func (p *Photo) TagCount() int { return len(p.tags) }

// AddTag attaches a new tag. It returns false without changing anything when an
// equal tag is already attached; invalid input is ErrInvalidArgument.
func (p *Photo) AddTag(category, value string) (bool, error) {
	tag, err := NewTag(category, value)
	if err != nil {
		return false, err
	}
	if p.indexOfTag(tag) >= 0 {
		return false, nil
	}
	p.tags = append(p.tags, tag)
	return true, nil
}

// RemoveTag detaches the first tag equal to (category, value). It returns false
// when no such tag is attached.
func (p *Photo) RemoveTag(category, value string) (bool, error) {
	tag, err := NewTag(category, value)
	if err != nil {
		return false, err
	}
	i := p.indexOfTag(tag)
	if i < 0 {
		return false, nil
	}
	p.tags = append(p.tags[:i], p.tags[i+1:]...)
	return true, nil
}

// HasTag reports whether a tag with the given category and value is attached.
func (p *Photo) HasTag(category, value string) bool {
	for _, t := range p.tags {
		if t.Matches(category, value) {
			return true
		}
	}
	return false
}

// TagsByCategory returns the tags in the given category, in insertion order.
func (p *Photo) TagsByCategory(category string) []Tag {
	var out []Tag
	for _, t := range p.tags {
		if SameName(string(t.category), category) {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy of the photo.
func (p *Photo) Clone() *Photo {
	return &Photo{
		resourceRef: p.resourceRef,
		displayName: p.displayName,
		tags:        p.Tags(),
	}
}

func (p *Photo) String() string { return p.displayName }

func (p *Photo) indexOfTag(tag Tag) int {
	for i, t := range p.tags {
		if t.Equal(tag) {
			return i
		}
	}
	return -1
}
