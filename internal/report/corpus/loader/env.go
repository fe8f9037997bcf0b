package loader

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"hairnote/internal/report/corpus"
)

// EnvSource reads base64-encoded note bodies from NOTE1_CONTENT through
// NOTE5_CONTENT. Base64 keeps multi-line Korean markdown survivable in
// deployment environments that mangle newlines.
type EnvSource struct {
	lookup func(string) (string, bool)
}

func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

func (s *EnvSource) Name() string { return "env" }

func (s *EnvSource) Fetch(_ context.Context) (map[corpus.NoteID]string, error) {
	notes := make(map[corpus.NoteID]string)
	for i, id := range corpus.AllNotes {
		key := fmt.Sprintf("NOTE%d_CONTENT", i+1)
		encoded, ok := s.lookup(key)
		if !ok || encoded == "" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		notes[id] = string(decoded)
	}
	return notes, nil
}
