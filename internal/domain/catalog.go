package domain

import "fmt"

// Catalog is the ordered collection of albums and the root of persistence.
// Album names are unique within a catalog, compared with SameName.
//
// A Catalog is not safe for concurrent use; one session owns it.
type Catalog struct {
	albums []*Album
}

// NewCatalog returns a catalog with no albums.
func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) Len() int { return len(c.albums) }

// Albums returns a copy of the album sequence in catalog order.
func (c *Catalog) Albums() []*Album {
	out := make([]*Album, len(c.albums))
	copy(out, c.albums)
	return out
}

// PhotoCount returns the number of album memberships across the catalog.
func (c *Catalog) PhotoCount() int {
	n := 0
	for _, a := range c.albums {
		n += a.Len()
	}
	return n
}

// CreateAlbum appends a new empty album. A name matching an existing album is
// ErrDuplicateName.
func (c *Catalog) CreateAlbum(name string) (*Album, error) {
	album, err := NewAlbum(name)
	if err != nil {
		return nil, err
	}
	if c.indexOf(album.name) >= 0 {
		return nil, fmt.Errorf("%w: album %q already exists", ErrDuplicateName, album.name)
	}
	c.albums = append(c.albums, album)
	return album, nil
}

// RenameAlbum renames album, which must belong to the catalog. It fails with
// ErrDuplicateName when another album already uses newName; changing only the
// letter case of an album's own name is allowed.
func (c *Catalog) RenameAlbum(album *Album, newName string) error {
	if album == nil {
		return fmt.Errorf("%w: album is nil", ErrInvalidArgument)
	}
	self := c.indexOf(album.name)
	if self < 0 {
		return fmt.Errorf("%w: album %q", ErrNotFound, album.name)
	}
	n, err := albumName(newName)
	if err != nil {
		return err
	}
	for i, a := range c.albums {
		if i != self && SameName(a.name, n) {
			return fmt.Errorf("%w: album %q already exists", ErrDuplicateName, a.name)
		}
	}
	c.albums[self].name = n
	return nil
}

// RemoveAlbum removes the album whose name matches album's, together with its
// photos. Removing an absent album is a no-op.
func (c *Catalog) RemoveAlbum(album *Album) {
	if album == nil {
		return
	}
	if i := c.indexOf(album.name); i >= 0 {
		c.albums = append(c.albums[:i], c.albums[i+1:]...)
	}
}

// FindByName looks an album up by name. Album pointers do not survive a
// reload; callers resolve albums by name again after every load.
func (c *Catalog) FindByName(name string) (*Album, bool) {
	i := c.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return c.albums[i], true
}

// AlbumsContaining returns, in catalog order, every album holding a photo with
// the given resource reference.
func (c *Catalog) AlbumsContaining(ref string) []*Album {
	var out []*Album
	for _, a := range c.albums {
		if a.IndexOf(ref) >= 0 {
			out = append(out, a)
		}
	}
	return out
}

// MovePhoto moves the photo with the given resource reference, tags included,
// from one album to the end of another. It returns false without changing
// anything when the target already holds that reference.
func (c *Catalog) MovePhoto(ref, from, to string) (bool, error) {
	if SameName(from, to) {
		return false, fmt.Errorf("%w: source and target album are the same", ErrInvalidArgument)
	}
	src, ok := c.FindByName(from)
	if !ok {
		return false, fmt.Errorf("%w: album %q", ErrNotFound, from)
	}
	dst, ok := c.FindByName(to)
	if !ok {
		return false, fmt.Errorf("%w: album %q", ErrNotFound, to)
	}
	photo, ok := src.Photo(ref)
	if !ok {
		return false, fmt.Errorf("%w: photo %q in album %q", ErrNotFound, ref, src.name)
	}
	if dst.IndexOf(ref) >= 0 {
		return false, nil
	}
	src.RemovePhoto(photo)
	dst.AddPhoto(photo)
	return true, nil
}

func (c *Catalog) indexOf(name string) int {
	for i, a := range c.albums {
		if SameName(a.name, name) {
			return i
		}
	}
	return -1
}
