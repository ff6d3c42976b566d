package goodp

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	// Decoders for dimension probing of registered assets.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// AssetInfo records one registered image asset.
type AssetInfo struct {
	// Source is the resolved absolute path of the original file.
	Source string
	// Target is the package-internal path the bytes were copied to.
	Target string
	// MediaType is the manifest content type, inferred from the extension.
	MediaType string
	// Width and Height are the pixel dimensions, or zero when the bytes
	// did not decode as an image (probing is best-effort).
	Width, Height int
}

// AssetRegistry deduplicates and copies referenced image files into the
// package, recording each addition in the manifest. Each distinct source
// path is copied at most once per build; the mapping is append-only. The
// image counter lives here, not in package state, so every build starts
// at 01.
type AssetRegistry struct {
	doc     *Document
	root    string
	byPath  map[string]string
	infos   []AssetInfo
	counter int
}

// NewAssetRegistry creates a registry resolving source paths against the
// given project root ("" means the working directory).
func NewAssetRegistry(doc *Document, root string) *AssetRegistry {
	return &AssetRegistry{
		doc:     doc,
		root:    root,
		byPath:  make(map[string]string),
		counter: 1,
	}
}

// Register resolves a project-relative image path, copies its bytes into
// the package under the reserved Pictures directory and returns the
// package-internal path. Registering the same source twice returns the
// path assigned the first time without copying again.
func (r *AssetRegistry) Register(sourcePath string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(r.root, sourcePath))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", sourcePath, err)
	}

	if target, ok := r.byPath[abs]; ok {
		return target, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrAssetNotFound, abs)
		}
		return "", fmt.Errorf("reading %s: %w", abs, err)
	}

	ext := strings.ToLower(filepath.Ext(abs))
	stem := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	target := fmt.Sprintf("%s/%02d_%s%s", pictureDir, r.counter, slugify(stem), ext)
	r.counter++

	mediaType := mime.TypeByExtension(ext)
	if mediaType == "" {
		mediaType = mediaTypeFallback
	}

	r.doc.pkg[target] = data
	r.doc.addManifestEntry(target, mediaType)
	r.byPath[abs] = target

	info := AssetInfo{Source: abs, Target: target, MediaType: mediaType}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		info.Width, info.Height = cfg.Width, cfg.Height
	}
	r.infos = append(r.infos, info)

	return target, nil
}

// Registered returns the assets registered so far, in registration order.
func (r *AssetRegistry) Registered() []AssetInfo {
	out := make([]AssetInfo, len(r.infos))
	copy(out, r.infos)
	return out
}

// asciiFold strips combining marks so accented Latin figure names survive
// slugging as readable ASCII.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var unsafeRuns = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// slugify derives a filesystem-safe name from a file's base name:
// non-alphanumeric runs collapse to a single underscore, leading and
// trailing underscores are trimmed, and an empty result falls back to
// "image".
func slugify(name string) string {
	if folded, _, err := transform.String(asciiFold, name); err == nil {
		name = folded
	}
	name = unsafeRuns.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "image"
	}
	return name
}
