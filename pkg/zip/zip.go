// Package zip assembles in-memory zip archives from a flat list of entries.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

// Entry is a single file in the archive. Path uses forward slashes; a
// trailing slash marks a directory.
type Entry struct {
	Path string
	Data []byte
}

// epoch pins entry timestamps so equal inputs yield equal archives.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Archive writes entries in order using deflate compression.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		hdr := &zip.FileHeader{
			Name:     entry.Path,
			Method:   zip.Deflate,
			Modified: epoch,
		}
		if isDir(entry.Path) {
			hdr.Method = zip.Store
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", entry.Path, err)
		}
		if isDir(entry.Path) {
			continue
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", entry.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close: %w", err)
	}
	return buf.Bytes(), nil
}

func isDir(path string) bool {
	return len(path) > 0 && path[len(path)-1] == '/'
}
