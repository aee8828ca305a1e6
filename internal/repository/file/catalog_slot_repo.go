// Package file keeps each catalog slot as a single file on a billy filesystem.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"photocatalog/internal/domain"
)

const slotExt = ".catalog"

type SlotStore struct {
	fs billy.Filesystem
}

// NewSlotStore returns a SlotStore rooted at fs.
func NewSlotStore(fs billy.Filesystem) *SlotStore {
	return &SlotStore{fs: fs}
}

// OpenDir returns a SlotStore over the directory dir, creating it if needed.
func OpenDir(dir string) (*SlotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return NewSlotStore(osfs.New(dir)), nil
}

func (s *SlotStore) ReadSlot(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := util.ReadFile(s.fs, slotFile(name))
	if os.IsNotExist(err) {
		return nil, domain.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", name, err)
	}
	return data, nil
}

// WriteSlot writes the record to a temp file and renames it over the slot
// file, so a failed write leaves the previous record in place.
func (s *SlotStore) WriteSlot(ctx context.Context, name string, record []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := util.TempFile(s.fs, "", "."+name+"-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(record); err != nil {
		tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write slot %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("close slot %q: %w", name, err)
	}
	if err := s.fs.Rename(tmpName, slotFile(name)); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace slot %q: %w", name, err)
	}
	return nil
}

func slotFile(name string) string {
	return name + slotExt
}
