// Package zip bundles JSON documents into a single downloadable archive.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// File is one named entry of a bundle.
type File struct {
	Name string
	Data []byte
}

// Bundle packs the files into a zip archive in the given order.
func Bundle(files []File) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
