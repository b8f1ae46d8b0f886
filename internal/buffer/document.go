// internal/buffer/document.go
package buffer

import (
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/tidehx/internal/logger"
	mmap "github.com/edsrzf/mmap-go"
)

// mmapThreshold is the file size above which Load maps the file instead of reading it.
const mmapThreshold = 1 << 20

// Document owns the current snapshot of one text buffer and its file binding.
type Document struct {
	current  *MemSnapshot
	saved    *MemSnapshot
	filePath string
}

// NewDocument creates an unbound document holding text.
func NewDocument(text string) *Document {
	snap := NewSnapshot(text)
	return &Document{current: snap, saved: snap}
}

// Snapshot returns the current snapshot.
func (d *Document) Snapshot() *MemSnapshot { return d.current }

// FilePath returns the bound path, or "" for an unnamed document.
func (d *Document) FilePath() string { return d.filePath }

// IsModified reports whether the current snapshot differs from the last saved or loaded one.
func (d *Document) IsModified() bool { return d.current != d.saved }

// Commit applies e and makes its result the current snapshot.
func (d *Document) Commit(e *Edit) (*ChangeSet, error) {
	if e.Base() != Snapshot(d.current) {
		return nil, ErrStaleSnapshot
	}
	next, cs, err := e.Apply()
	if err != nil {
		return nil, err
	}
	d.current = next
	return cs, nil
}

// Restore makes snap current without an edit. Used by undo/redo.
func (d *Document) Restore(snap *MemSnapshot) {
	d.current = snap
}

// Load reads filePath into the document. A missing file yields an empty,
// unmodified document bound to that path.
func (d *Document) Load(filePath string) error {
	text, err := readFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debugf("Document: '%s' does not exist, starting empty", filePath)
			text = ""
		} else {
			return fmt.Errorf("failed to load file '%s': %w", filePath, err)
		}
	}
	d.current = NewSnapshot(text)
	d.saved = d.current
	d.filePath = filePath
	return nil
}

// Save writes the current snapshot to filePath, or to the bound path when empty.
func (d *Document) Save(filePath string) error {
	path := d.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}
	if err := os.WriteFile(path, []byte(d.current.String()), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	d.filePath = path
	d.saved = d.current
	return nil
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() < mmapThreshold {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("mmap '%s': %w", path, err)
	}
	defer m.Unmap()
	logger.Debugf("Document: mapped %d bytes from '%s'", len(m), path)
	return string(m), nil
}
