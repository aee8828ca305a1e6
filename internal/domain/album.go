package domain

import (
	"fmt"
	"strings"
)

// Album is a named, ordered collection of photos. Insertion order is display
// order, and a resource reference appears at most once.
type Album struct {
	name   string
	photos []*Photo
}

// NewAlbum returns an empty album. The name is stored trimmed and must not be empty.
func NewAlbum(name string) (*Album, error) {
	n, err := albumName(name)
	if err != nil {
		return nil, err
	}
	return &Album{name: n}, nil
}

func (a *Album) Name() string { return a.name }

// Rename changes the album name. Uniqueness is the catalog's concern; use
// Catalog.RenameAlbum for albums that belong to a catalog.
func (a *Album) Rename(newName string) error {
	n, err := albumName(newName)
	if err != nil {
		return err
	}
	a.name = n
	return nil
}

func (a *Album) Len() int { return len(a.photos) }

// Photos returns a copy of the photo sequence. Reordering or truncating the
// returned slice does not affect the album.
func (a *Album) Photos() []*Photo {
	out := make([]*Photo, len(a.photos))
	copy(out, a.photos)
	return out
}

// AddPhoto appends p. It returns false without changing anything when p is nil
// or a photo with the same resource reference is already present.
func (a *Album) AddPhoto(p *Photo) bool {
	if p == nil || a.IndexOf(p.resourceRef) >= 0 {
		return false
	}
	a.photos = append(a.photos, p)
	return true
}

// RemovePhoto removes the photo with p's resource reference. It returns false
// when no such photo is present.
func (a *Album) RemovePhoto(p *Photo) bool {
	if p == nil {
		return false
	}
	i := a.IndexOf(p.resourceRef)
	if i < 0 {
		return false
	}
	a.photos = append(a.photos[:i], a.photos[i+1:]...)
	return true
}

// Photo returns the photo with the given resource reference.
func (a *Album) Photo(ref string) (*Photo, bool) {
	i := a.IndexOf(ref)
	if i < 0 {
		return nil, false
	}
	return a.photos[i], true
}

// IndexOf returns the display position of the photo with the given resource
// reference, or -1.
func (a *Album) IndexOf(ref string) int {
	for i, p := range a.photos {
		if p.resourceRef == ref {
			return i
		}
	}
	return -1
}

// PhotoAt returns the photo at display position i.
func (a *Album) PhotoAt(i int) (*Photo, bool) {
	if i < 0 || i >= len(a.photos) {
		return nil, false
	}
	return a.photos[i], true
}

// Neighbors returns the resource references shown before and after ref in
// display order. Either is empty at the ends of the album; ok is false when
// ref is not in the album.
func (a *Album) Neighbors(ref string) (prev, next string, ok bool) {
	i := a.IndexOf(ref)
	if i < 0 {
		return "", "", false
	}
	if i > 0 {
		prev = a.photos[i-1].resourceRef
	}
	if i < len(a.photos)-1 {
		next = a.photos[i+1].resourceRef
	}
	return prev, next, true
}

func (a *Album) String() string {
	return fmt.Sprintf("%s (%d photos)", a.name, len(a.photos))
}

func albumName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", fmt.Errorf("%w: album name cannot be empty", ErrInvalidArgument)
	}
	return n, nil
}
