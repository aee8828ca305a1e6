// Package resource resolves photo resource references into bytes.
package resource

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"photocatalog/internal/domain"
)

const fileScheme = "file://"

type FSResolver struct {
	fs billy.Filesystem
}

// NewFSResolver resolves references against the root of fs.
func NewFSResolver(fs billy.Filesystem) *FSResolver {
	return &FSResolver{fs: fs}
}

// NewDirResolver resolves references against the media directory dir.
func NewDirResolver(dir string) *FSResolver {
	return NewFSResolver(osfs.New(dir))
}

func (r *FSResolver) Resolve(ctx context.Context, ref string) (*domain.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := cleanRef(ref)
	if err != nil {
		return nil, err
	}
	info, err := r.fs.Stat(name)
	if err != nil {
		return nil, unavailable(ref, err)
	}
	if info.IsDir() {
		return nil, unavailable(ref, fmt.Errorf("is a directory"))
	}
	data, err := util.ReadFile(r.fs, name)
	if err != nil {
		return nil, unavailable(ref, err)
	}
	return &domain.Resource{
		Data:        data,
		ContentType: mimetype.Detect(data).String(),
	}, nil
}

// cleanRef maps a reference to a path relative to the resolver root.
// Absolute paths are taken relative to the root; ".." may not climb out of it.
func cleanRef(ref string) (string, error) {
	p := strings.TrimPrefix(strings.TrimSpace(ref), fileScheme)
	if p == "" {
		return "", fmt.Errorf("%w: empty resource reference", domain.ErrInvalidArgument)
	}
	p = path.Clean(strings.TrimLeft(p, "/"))
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", unavailable(ref, fmt.Errorf("path escapes media root"))
	}
	return p, nil
}

func unavailable(ref string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrResourceUnavailable, ref, err)
}
