package loader

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"

	"hairnote/internal/report/corpus"
)

// BucketSource reads notes from an S3-compatible bucket under
// "notes/note<n>.md". A missing object leaves the note absent so the chain
// can fall through to the next source.
type BucketSource struct {
	bucket string
	fetch  func(ctx context.Context, key string) (io.ReadCloser, error)
}

func NewBucketSource(client *minio.Client, bucket string) *BucketSource {
	return &BucketSource{
		bucket: bucket,
		fetch: func(ctx context.Context, key string) (io.ReadCloser, error) {
			return client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
		},
	}
}

func (s *BucketSource) Name() string { return "bucket" }

func (s *BucketSource) Fetch(ctx context.Context) (map[corpus.NoteID]string, error) {
	var (
		mu    sync.Mutex
		notes = make(map[corpus.NoteID]string)
	)
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range corpus.AllNotes {
		id := id
		key := fmt.Sprintf("notes/note%d.md", i+1)
		g.Go(func() error {
			obj, err := s.fetch(ctx, key)
			if err != nil {
				return fmt.Errorf("get %s/%s: %w", s.bucket, key, err)
			}
			defer obj.Close()

			data, err := io.ReadAll(obj)
			if err != nil {
				if isNoSuchKey(err) {
					return nil
				}
				return fmt.Errorf("read %s/%s: %w", s.bucket, key, err)
			}
			mu.Lock()
			notes[id] = string(data)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return notes, nil
}

// isNoSuchKey matches the minio error for absent objects. GetObject is lazy,
// so the miss only surfaces on the first read.
func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return true
	}
	return strings.Contains(err.Error(), "NoSuchKey")
}
