package goodp

import "errors"

// Sentinel errors returned by the library. Callers match them with
// errors.Is; call sites wrap them with fmt.Errorf("%w: ...") to attach
// detail. Every error is fatal for a build: there is no retry and no
// partial output.
var (
	// ErrInvalidArchive indicates the template could not be read as a
	// zip-based ODF package.
	ErrInvalidArchive = errors.New("invalid document archive")

	// ErrMalformedXML indicates an XML part of the package is not
	// well-formed markup.
	ErrMalformedXML = errors.New("malformed xml part")

	// ErrAssetNotFound indicates a referenced image path does not resolve
	// to an existing file.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrStructure indicates the template or a page lacks structure a
	// layout requires (missing prototype pages, missing title frame,
	// missing outline frame on a mix slide).
	ErrStructure = errors.New("required structure missing")

	// ErrUnsupportedLayout indicates a slide specification declares a
	// layout outside the recognized set.
	ErrUnsupportedLayout = errors.New("unsupported layout")

	// ErrSlideCount indicates the slide specification list does not have
	// the expected number of entries.
	ErrSlideCount = errors.New("slide count mismatch")
)
