// Package snapshot converts a whole catalog to and from its persisted record.
//
// The record is a JSON document carrying an explicit format version. Decoding
// rebuilds the catalog through the domain constructors, so a record that breaks
// any catalog invariant is rejected as corrupt.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"photocatalog/internal/domain"
)

// FormatVersion is the record format written by Encode.
const FormatVersion = 1

// ErrCorrupt is returned by Decode for records that cannot be turned back into
// a catalog.
var ErrCorrupt = errors.New("corrupt catalog record")

type record struct {
	FormatVersion int           `json:"format_version"`
	Albums        []albumRecord `json:"albums"`
}

type albumRecord struct {
	Name   string        `json:"name"`
	Photos []photoRecord `json:"photos"`
}

type photoRecord struct {
	ResourceRef string       `json:"resource_ref"`
	DisplayName string       `json:"display_name"`
	Tags        []domain.Tag `json:"tags"`
}

// Encode serializes every album, photo and tag of c, in order.
func Encode(c *domain.Catalog) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: catalog is nil", domain.ErrInvalidArgument)
	}
	rec := record{FormatVersion: FormatVersion, Albums: []albumRecord{}}
	for _, a := range c.Albums() {
		ar := albumRecord{Name: a.Name(), Photos: []photoRecord{}}
		for _, p := range a.Photos() {
			ar.Photos = append(ar.Photos, photoRecord{
				ResourceRef: p.ResourceRef(),
				DisplayName: p.DisplayName(),
				Tags:        p.Tags(),
			})
		}
		rec.Albums = append(rec.Albums, ar)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

// Decode rebuilds a catalog from a record written by Encode. Any failure wraps
// ErrCorrupt.
func Decode(data []byte) (*domain.Catalog, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrCorrupt, rec.FormatVersion)
	}

	c := domain.NewCatalog()
	for _, ar := range rec.Albums {
		album, err := c.CreateAlbum(ar.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: album %q: %v", ErrCorrupt, ar.Name, err)
		}
		for _, pr := range ar.Photos {
			photo, err := domain.NewPhoto(pr.ResourceRef, pr.DisplayName)
			if err != nil {
				return nil, fmt.Errorf("%w: album %q: %v", ErrCorrupt, ar.Name, err)
			}
			for _, tag := range pr.Tags {
				added, err := photo.AddTag(string(tag.Category()), tag.Value())
				if err != nil || !added {
					return nil, fmt.Errorf("%w: photo %q: bad or repeated tag %q", ErrCorrupt, pr.ResourceRef, tag)
				}
			}
			if !album.AddPhoto(photo) {
				return nil, fmt.Errorf("%w: album %q: repeated photo %q", ErrCorrupt, ar.Name, pr.ResourceRef)
			}
		}
	}
	return c, nil
}
