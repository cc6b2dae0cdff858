package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Storage defines the read side of file storage used by catalog sources
type Storage interface {
	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)
}

// Config holds object storage configuration
type Config struct {
	BasePath  string // For local storage
	Region    string // For S3/R2
	AccessKey string // For S3/R2
	SecretKey string // For S3/R2
	Endpoint  string // For R2 or custom S3
}

const s3Scheme = "s3://"

// Location is a parsed storage path.
type Location struct {
	Bucket string // empty for local files
	Key    string
}

// Remote reports whether the location points at an object store
func (l Location) Remote() bool { return l.Bucket != "" }

func (l Location) String() string {
	if l.Remote() {
		return s3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Key
}

// ParseLocation splits "s3://bucket/key" into bucket and key; anything else is a local path
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, fmt.Errorf("empty storage location")
	}
	if !strings.HasPrefix(raw, s3Scheme) {
		return Location{Key: raw}, nil
	}

	rest := strings.TrimPrefix(raw, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid object location %q: expected s3://bucket/key", raw)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// Opener resolves locations to the right backend. S3 clients are created lazily
// per bucket and reused.
type Opener struct {
	cfg   Config
	local *LocalStorage

	mu      sync.Mutex
	buckets map[string]*S3Storage
}

// NewOpener creates an opener for local paths and s3:// locations
func NewOpener(cfg Config) *Opener {
	return &Opener{
		cfg:     cfg,
		local:   NewLocalStorage(cfg),
		buckets: make(map[string]*S3Storage),
	}
}

func (o *Opener) backend(ctx context.Context, loc Location) (Storage, error) {
	if !loc.Remote() {
		return o.local, nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if s, ok := o.buckets[loc.Bucket]; ok {
		return s, nil
	}
	s, err := NewS3Storage(ctx, o.cfg, loc.Bucket)
	if err != nil {
		return nil, err
	}
	o.buckets[loc.Bucket] = s
	return s, nil
}

// Open returns a reader for the location. Callers must close it.
func (o *Opener) Open(ctx context.Context, raw string) (io.ReadCloser, error) {
	loc, err := ParseLocation(raw)
	if err != nil {
		return nil, err
	}
	s, err := o.backend(ctx, loc)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, loc.Key)
}

// Exists checks whether the location can be read
func (o *Opener) Exists(ctx context.Context, raw string) (bool, error) {
	loc, err := ParseLocation(raw)
	if err != nil {
		return false, err
	}
	s, err := o.backend(ctx, loc)
	if err != nil {
		return false, err
	}
	return s.Exists(ctx, loc.Key)
}
