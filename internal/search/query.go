// Package search evaluates tag queries against a catalog.
package search

import (
	"photocatalog/internal/domain"
)

// Result is one matched photo and where it was found.
type Result struct {
	Photo     *domain.Photo
	AlbumName string
	Position  int
}

// Query is an ordered list of criteria combined with one match mode. The zero
// value is an empty AND query.
type Query struct {
	mode     domain.MatchMode
	criteria []domain.Criterion
}

// NewQuery returns a query with the given mode and criteria.
func NewQuery(mode domain.MatchMode, criteria ...domain.Criterion) *Query {
	q := &Query{mode: mode}
	for _, c := range criteria {
		q.add(c)
	}
	return q
}

func (q *Query) Mode() domain.MatchMode { return q.mode }

func (q *Query) SetMode(mode domain.MatchMode) { q.mode = mode }

// Criteria returns a copy of the criteria in insertion order.
func (q *Query) Criteria() []domain.Criterion {
	out := make([]domain.Criterion, len(q.criteria))
	copy(out, q.criteria)
	return out
}

// Empty reports whether the query has no criteria.
func (q *Query) Empty() bool { return len(q.criteria) == 0 }

// AddCriterion validates and appends a criterion. A criterion equal to one
// already present is ignored.
func (q *Query) AddCriterion(category, value string) error {
	c, err := domain.NewCriterion(category, value)
	if err != nil {
		return err
	}
	q.add(c)
	return nil
}

// Clear drops every criterion and keeps the mode.
func (q *Query) Clear() { q.criteria = nil }

// Matches reports whether photo satisfies the query. An empty query matches
// nothing.
func (q *Query) Matches(photo *domain.Photo) bool {
	if len(q.criteria) == 0 || photo == nil {
		return false
	}
	if q.mode == domain.MatchAny {
		for _, c := range q.criteria {
			if c.MatchedBy(photo) {
				return true
			}
		}
		return false
	}
	for _, c := range q.criteria {
		if !c.MatchedBy(photo) {
			return false
		}
	}
	return true
}

// Run scans albums in catalog order and photos in album order and returns the
// matching photos. A resource reference is reported once, keeping the first
// matching instance. Its AlbumName and Position point at the first album in
// catalog order that contains the reference, matching or not. An empty query
// returns nil without scanning.
func (q *Query) Run(catalog *domain.Catalog) []Result {
	if len(q.criteria) == 0 || catalog == nil {
		return nil
	}
	var results []Result
	seen := make(map[string]struct{})
	albums := catalog.Albums()
	for ai, album := range albums {
		for _, photo := range album.Photos() {
			ref := photo.ResourceRef()
			if _, dup := seen[ref]; dup {
				continue
			}
			if !q.Matches(photo) {
				continue
			}
			seen[ref] = struct{}{}
			owner, pos := locate(albums[:ai+1], ref)
			results = append(results, Result{Photo: photo, AlbumName: owner.Name(), Position: pos})
		}
	}
	return results
}

// locate returns the first album holding ref and its position there. The
// last album in albums always holds it.
func locate(albums []*domain.Album, ref string) (*domain.Album, int) {
	for _, a := range albums {
		if i := a.IndexOf(ref); i >= 0 {
			return a, i
		}
	}
	last := albums[len(albums)-1]
	return last, last.IndexOf(ref)
}

func (q *Query) add(c domain.Criterion) {
	for _, existing := range q.criteria {
		if domain.SameName(string(existing.Category), string(c.Category)) && domain.SameName(existing.Value, c.Value) {
			return
		}
	}
	q.criteria = append(q.criteria, c)
}
