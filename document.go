// Package goodp provides a pure Go library for assembling OpenDocument
// presentation files (.odp) from ODF presentation templates (.otp).
//
// It operates directly on the package level of the format: the zip
// container is loaded into memory, the content and manifest XML parts are
// parsed into mutable trees, pages are synthesized by cloning the
// template's prototype pages, and the result is written back as a
// conforming archive. It is a companion to the GoPPT library and follows
// the same reader/writer conventions.
//
// See the Version variable for the current library version.
package goodp

import (
	"fmt"
	"io"
)

// Document is an in-memory ODF presentation package: the raw member
// mapping plus the two parsed XML parts every build mutates — the content
// tree and the resource manifest.
type Document struct {
	pkg      Package
	content  *Node
	manifest *Node
}

// OpenTemplate reads an ODF presentation package from disk and parses its
// content and manifest parts. The template itself is never modified; all
// mutation happens on the in-memory trees.
func OpenTemplate(path string) (*Document, error) {
	reader, err := NewReader(ReaderOpenDocument)
	if err != nil {
		return nil, err
	}
	pkg, err := reader.Read(path)
	if err != nil {
		return nil, err
	}
	return newDocument(pkg)
}

// ReadFrom reads an ODF package from an io.ReaderAt with the given size.
func ReadFrom(r io.ReaderAt, size int64) (*Document, error) {
	reader, err := NewReader(ReaderOpenDocument)
	if err != nil {
		return nil, err
	}
	pkg, err := reader.ReadFromReader(r, size)
	if err != nil {
		return nil, err
	}
	return newDocument(pkg)
}

func newDocument(pkg Package) (*Document, error) {
	contentData, ok := pkg[memberContent]
	if !ok {
		return nil, fmt.Errorf("%w: package has no %s member", ErrInvalidArchive, memberContent)
	}
	manifestData, ok := pkg[memberManifest]
	if !ok {
		return nil, fmt.Errorf("%w: package has no %s member", ErrInvalidArchive, memberManifest)
	}

	content, err := ParseXML(contentData)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", memberContent, err)
	}
	manifest, err := ParseXML(manifestData)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", memberManifest, err)
	}

	return &Document{pkg: pkg, content: content, manifest: manifest}, nil
}

// Package returns the underlying member mapping.
func (d *Document) Package() Package {
	return d.pkg
}

// Content returns the root of the parsed content tree.
func (d *Document) Content() *Node {
	return d.content
}

// Manifest returns the root of the parsed manifest tree.
func (d *Document) Manifest() *Node {
	return d.manifest
}

// presentationBody returns the office:presentation element of the content
// tree, the parent of all draw:page elements.
func (d *Document) presentationBody() (*Node, error) {
	body := d.content.Find(QName(nsOffice, "body"))
	if body == nil {
		return nil, fmt.Errorf("%w: content has no office:body", ErrStructure)
	}
	pres := body.Find(QName(nsOffice, "presentation"))
	if pres == nil {
		return nil, fmt.Errorf("%w: content has no office:presentation", ErrStructure)
	}
	return pres, nil
}

// Pages returns all draw:page elements of the presentation in document
// order.
func (d *Document) Pages() ([]*Page, error) {
	pres, err := d.presentationBody()
	if err != nil {
		return nil, err
	}
	nodes := pres.FindAll(QName(nsDraw, "page"))
	pages := make([]*Page, len(nodes))
	for i, n := range nodes {
		pages[i] = &Page{node: n}
	}
	return pages, nil
}

// removePages detaches every draw:page from the presentation body.
func (d *Document) removePages() error {
	pres, err := d.presentationBody()
	if err != nil {
		return err
	}
	for _, page := range pres.FindAll(QName(nsDraw, "page")) {
		pres.Remove(page)
	}
	return nil
}

// appendPages appends pages to the presentation body, keeping the
// presentation:settings element (when present) as the last child — the
// position ODF consumers expect it in.
func (d *Document) appendPages(pages []*Page) error {
	pres, err := d.presentationBody()
	if err != nil {
		return err
	}
	settings := pres.Find(QName(nsPresentation, "settings"))
	if settings != nil {
		pres.Remove(settings)
	}
	for _, p := range pages {
		pres.Append(p.node)
	}
	if settings != nil {
		pres.Append(settings)
	}
	return nil
}

// addManifestEntry appends a manifest:file-entry recording a package
// member and its media type.
func (d *Document) addManifestEntry(fullPath, mediaType string) {
	entry := d.manifest.NewChild(QName(nsManifest, "file-entry"))
	entry.SetAttr(QName(nsManifest, "full-path"), fullPath)
	entry.SetAttr(QName(nsManifest, "media-type"), mediaType)
}

// setDocumentMediaType stamps the package as a finished document of the
// given media type: the mimetype member is replaced and the manifest's
// root ("/") entry is rewritten. Converting a .otp template into a .odp
// document is exactly this operation.
func (d *Document) setDocumentMediaType(mediaType string) {
	d.pkg[memberMimetype] = []byte(mediaType)
	for _, entry := range d.manifest.FindAll(QName(nsManifest, "file-entry")) {
		if entry.GetAttr(QName(nsManifest, "full-path")) == "/" {
			entry.SetAttr(QName(nsManifest, "media-type"), mediaType)
			entry.SetAttr(QName(nsManifest, "version"), "1.2")
		}
	}
}

// Sync serializes the mutated content and manifest trees back into the
// package members.
func (d *Document) Sync() error {
	content, err := d.content.XML()
	if err != nil {
		return fmt.Errorf("serializing %s: %w", memberContent, err)
	}
	manifest, err := d.manifest.XML()
	if err != nil {
		return fmt.Errorf("serializing %s: %w", memberManifest, err)
	}
	d.pkg[memberContent] = content
	d.pkg[memberManifest] = manifest
	return nil
}

// Save syncs the XML parts and writes the package to a file.
// This is a convenience wrapper around Sync + NewWriter + Save.
func (d *Document) Save(path string) error {
	if err := d.Sync(); err != nil {
		return err
	}
	writer, err := NewWriter(d.pkg, WriterOpenDocument)
	if err != nil {
		return err
	}
	return writer.Save(path)
}

// WriteTo syncs the XML parts and writes the package to a writer in ODF
// zip form.
func (d *Document) WriteTo(w io.Writer) error {
	if err := d.Sync(); err != nil {
		return err
	}
	writer, err := NewWriter(d.pkg, WriterOpenDocument)
	if err != nil {
		return err
	}
	return writer.WriteTo(w)
}
