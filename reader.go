package goodp

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// Reader is the interface for document package readers.
type Reader interface {
	Read(path string) (Package, error)
	ReadFromReader(r io.ReaderAt, size int64) (Package, error)
}

// ReaderType represents the input format.
type ReaderType string

const (
	ReaderOpenDocument ReaderType = "OpenDocument"
)

// NewReader creates a reader for the given format.
func NewReader(format ReaderType) (Reader, error) {
	switch format {
	case ReaderOpenDocument:
		return &ODFReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported reader format: %s", format)
	}
}

// ODFReader reads ODF packages (.odp, .otp and friends).
type ODFReader struct{}

// maxZipEntrySize is the maximum allowed size for a single file extracted
// from a ZIP. This prevents zip bomb attacks. 50 MB is generous for any
// legitimate ODF part.
const maxZipEntrySize = 50 << 20 // 50 MB

// maxZipTotalSize is the cumulative limit for all extracted content from a single ZIP.
const maxZipTotalSize = 200 << 20 // 200 MB

// maxZipEntries is the maximum number of files allowed in a ZIP archive.
const maxZipEntries = 10000

// Read reads a package from a file path.
func (r *ODFReader) Read(path string) (Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrInvalidArchive, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat %s: %v", ErrInvalidArchive, path, err)
	}

	return r.ReadFromReader(f, info.Size())
}

// ReadFromReader reads a package from an io.ReaderAt, loading every member
// into memory.
func (r *ODFReader) ReadFromReader(reader io.ReaderAt, size int64) (Package, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: invalid reader size %d", ErrInvalidArchive, size)
	}
	if size > int64(maxZipTotalSize) {
		return nil, fmt.Errorf("%w: size %d exceeds maximum allowed (%d bytes)", ErrInvalidArchive, size, maxZipTotalSize)
	}

	zr, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	if len(zr.File) > maxZipEntries {
		return nil, fmt.Errorf("%w: archive contains too many entries (%d > %d)", ErrInvalidArchive, len(zr.File), maxZipEntries)
	}

	pkg := make(Package, len(zr.File))
	var total int64
	for _, f := range zr.File {
		if f.UncompressedSize64 > maxZipEntrySize {
			return nil, fmt.Errorf("%w: member %s exceeds maximum allowed size (%d bytes)", ErrInvalidArchive, f.Name, maxZipEntrySize)
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open member %s: %v", ErrInvalidArchive, f.Name, err)
		}
		data, err := io.ReadAll(io.LimitReader(rc, int64(maxZipEntrySize)+1))
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read member %s: %v", ErrInvalidArchive, f.Name, err)
		}
		if int64(len(data)) > int64(maxZipEntrySize) {
			return nil, fmt.Errorf("%w: member %s actual size exceeds maximum allowed size", ErrInvalidArchive, f.Name)
		}

		total += int64(len(data))
		if total > int64(maxZipTotalSize) {
			return nil, fmt.Errorf("%w: cumulative extracted size exceeds maximum allowed (%d bytes)", ErrInvalidArchive, maxZipTotalSize)
		}
		pkg[f.Name] = data
	}

	return pkg, nil
}
