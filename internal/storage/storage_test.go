package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Location
		wantErr bool
	}{
		{"local relative", "data/universities.csv", Location{Key: "data/universities.csv"}, false},
		{"local absolute", "/srv/catalog.csv", Location{Key: "/srv/catalog.csv"}, false},
		{"bucket and key", "s3://catalog/2024/universities.csv", Location{Bucket: "catalog", Key: "2024/universities.csv"}, false},
		{"missing key", "s3://catalog", Location{}, true},
		{"missing bucket", "s3:///file.csv", Location{}, true},
		{"empty", "  ", Location{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocation(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "s3://b/k.csv", Location{Bucket: "b", Key: "k.csv"}.String())
	assert.Equal(t, "k.csv", Location{Key: "k.csv"}.String())
}

func TestOpener_Local(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unis.csv"), []byte("university,country\n"), 0o644))

	opener := NewOpener(Config{BasePath: dir})
	ctx := context.Background()

	ok, err := opener.Exists(ctx, "unis.csv")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = opener.Exists(ctx, "missing.csv")
	require.NoError(t, err)
	assert.False(t, ok)

	rc, err := opener.Open(ctx, "unis.csv")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "university,country\n", string(body))

	_, err = opener.Open(ctx, "missing.csv")
	assert.Error(t, err)
}

func TestOpener_AbsolutePathIgnoresBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	opener := NewOpener(Config{BasePath: "/nonexistent"})
	ok, err := opener.Exists(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, ok)
}
