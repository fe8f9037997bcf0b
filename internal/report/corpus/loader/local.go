package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hairnote/internal/report/corpus"
)

// LocalSource reads notes from a directory of markdown files, the
// development setup. Missing files leave the note absent.
type LocalSource struct {
	dir string
}

func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{dir: dir}
}

func (s *LocalSource) Name() string { return "local" }

func (s *LocalSource) Fetch(_ context.Context) (map[corpus.NoteID]string, error) {
	notes := make(map[corpus.NoteID]string)
	for _, id := range corpus.AllNotes {
		path := filepath.Join(s.dir, id.Filename())
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		notes[id] = string(data)
	}
	return notes, nil
}
