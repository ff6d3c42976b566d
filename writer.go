package goodp

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer is the interface for document package writers.
type Writer interface {
	Save(path string) error
	WriteTo(w io.Writer) error
}

// WriterType represents the output format.
type WriterType string

const (
	WriterOpenDocument WriterType = "OpenDocument"
)

// NewWriter creates a writer for the given format.
func NewWriter(pkg Package, format WriterType) (Writer, error) {
	switch format {
	case WriterOpenDocument:
		return &ODFWriter{pkg: pkg}, nil
	default:
		return nil, fmt.Errorf("unsupported writer format: %s", format)
	}
}

// ODFWriter writes packages in ODF zip form. The ODF packaging rule is
// enforced here: the mimetype member comes first and is stored without
// compression so consumers can sniff the document type from the first
// bytes of the archive; every other member is deflated, in sorted order
// for deterministic output.
type ODFWriter struct {
	pkg Package
}

// Save writes the package to a file. Parent directories are created as
// needed; on write failure the partial file is removed.
func (w *ODFWriter) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writeErr := w.WriteTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		// Attempt cleanup on write failure
		os.Remove(path)
		return writeErr
	}
	return closeErr
}

// WriteTo writes the package to a writer.
func (w *ODFWriter) WriteTo(writer io.Writer) error {
	if w.pkg == nil {
		return fmt.Errorf("package is nil")
	}
	mimetype, ok := w.pkg[memberMimetype]
	if !ok {
		return fmt.Errorf("%w: package has no %s member", ErrStructure, memberMimetype)
	}

	zw := zip.NewWriter(writer)

	// mimetype first, stored.
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:   memberMimetype,
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", memberMimetype, err)
	}
	if _, err := fw.Write(mimetype); err != nil {
		return fmt.Errorf("failed to write %s: %w", memberMimetype, err)
	}

	for _, name := range w.pkg.Names() {
		if name == memberMimetype {
			continue
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return fmt.Errorf("failed to create %s in zip: %w", name, err)
		}
		if _, err := fw.Write(w.pkg[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return zw.Close()
}
