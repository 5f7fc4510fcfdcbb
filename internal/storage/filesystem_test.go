package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeKey(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "plan.zip", want: "plan.zip"},
		{in: "./nested/plan.zip", want: "nested/plan.zip"},
		{in: "/abs/plan.zip", want: "abs/plan.zip"},
		{in: "a\\b.zip", want: "a/b.zip"},
		{in: "a/../b.zip", want: "b.zip"},
		{in: "../escape.zip", wantErr: true},
		{in: "..", wantErr: true},
		{in: "  ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := sanitizeKey(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("sanitizeKey(%q) expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("sanitizeKey(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestWriteArchiveRoundTrip(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	store, err := NewFileStore(base)
	require.NoError(t, err)

	ctx := context.Background()
	key, err := store.WriteArchive(ctx, "Automated_design_plan", []byte("zip-1"))
	require.NoError(t, err)
	assert.Equal(t, "Automated_design_plan.zip", key)

	_, err = store.WriteArchive(ctx, "Automated_design_plan", []byte("zip-2"))
	require.NoError(t, err)

	path, err := store.Path(key)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "zip-2", string(got))

	_, err = os.Stat(filepath.Join(base, key+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteHonorsContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Write(ctx, "x.zip", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore(" ")
	assert.Error(t, err)
}
