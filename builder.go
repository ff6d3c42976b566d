package goodp

import (
	"fmt"
)

// Page style constants for the Midnightblue template. The builder targets
// one fixed template; these are data, not logic.
const (
	pageStyleTitle = "dp1"
	pageStyleBody  = "dp3"

	masterContent = "Midnightblue"
	masterClosing = "Midnightblue2"

	outlineStyleContent = "Midnightblue-outline1"
	outlineStyleClosing = "Midnightblue2-outline1"
)

// Frame geometry for the synthesized regions, in template coordinates.
var (
	closingTextGeom = frameGeometry{x: 8.8, y: 9.2, w: 17.6, h: 4.4}

	mixOutlineGeom = frameGeometry{x: 1, y: 3.3, w: 11.8, h: 10.8}
	mixImageGeom   = frameGeometry{x: 13.2, y: 3.3, w: 13.2, h: 10.8}

	imageFullGeom    = frameGeometry{x: 1.0, y: 3.0, w: 26.0, h: 10.9}
	imageCaptionGeom = frameGeometry{x: 1.2, y: 14.2, w: 25.6, h: 0.7}

	splitLeftGeom         = frameGeometry{x: 1.0, y: 3.2, w: 12.6, h: 9.9}
	splitRightGeom        = frameGeometry{x: 14.4, y: 3.2, w: 12.6, h: 9.9}
	splitLeftCaptionGeom  = frameGeometry{x: 1.1, y: 13.4, w: 12.4, h: 0.8}
	splitRightCaptionGeom = frameGeometry{x: 14.5, y: 13.4, w: 12.4, h: 0.8}
)

// BuildOptions configures a Builder.
type BuildOptions struct {
	// ProjectRoot resolves the project-relative image paths in slide
	// specs. Empty means the current working directory.
	ProjectRoot string

	// ExpectedSlides, when positive, makes Build fail unless the deck has
	// exactly this many slides. The check runs before any mutation.
	ExpectedSlides int
}

// Builder synthesizes the pages of one presentation build. It owns every
// piece of mutable build state — the document, the asset registry and its
// image counter — so a failed build leaves nothing behind beyond the
// abandoned in-memory document.
type Builder struct {
	doc    *Document
	assets *AssetRegistry
	opts   BuildOptions
}

// NewBuilder creates a Builder over an opened template document.
func NewBuilder(doc *Document, opts BuildOptions) *Builder {
	return &Builder{
		doc:    doc,
		assets: NewAssetRegistry(doc, opts.ProjectRoot),
		opts:   opts,
	}
}

// Assets returns the builder's asset registry.
func (b *Builder) Assets() *AssetRegistry {
	return b.assets
}

// Build replaces the template's pages with one synthesized page per slide
// spec, in order, and stamps the package as a presentation document.
// Any error aborts the build with the document in an undefined state;
// nothing has been written to disk either way.
func (b *Builder) Build(specs []SlideSpec) error {
	if b.opts.ExpectedSlides > 0 && len(specs) != b.opts.ExpectedSlides {
		return fmt.Errorf("%w: deck has %d slides, expected %d", ErrSlideCount, len(specs), b.opts.ExpectedSlides)
	}

	if err := b.doc.Validate(); err != nil {
		return err
	}

	protos, err := b.doc.Pages()
	if err != nil {
		return err
	}
	protoTitle, protoContent, protoClosing := protos[0], protos[1], protos[2]

	if err := b.doc.removePages(); err != nil {
		return err
	}

	pages := make([]*Page, 0, len(specs))
	for i, spec := range specs {
		page, err := b.makePage(i+1, spec, protoTitle, protoContent, protoClosing)
		if err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
		pages = append(pages, page)
	}

	if err := b.doc.appendPages(pages); err != nil {
		return err
	}

	b.doc.setDocumentMediaType(MediaTypePresentation)
	return nil
}

// makePage clones the prototype for the spec's layout and applies the
// layout-specific mutations. i is the 1-based slide index.
func (b *Builder) makePage(i int, spec SlideSpec, protoTitle, protoContent, protoClosing *Page) (*Page, error) {
	var page *Page
	switch spec.Layout {
	case LayoutTitle:
		page = protoTitle.Clone()
		page.SetStyleName(pageStyleTitle)
	case LayoutClosing:
		page = protoClosing.Clone()
		page.SetStyleName(pageStyleBody)
		page.SetMasterPageName(masterClosing)
	case LayoutText, LayoutMix, LayoutImage, LayoutSplit:
		page = protoContent.Clone()
		page.SetStyleName(pageStyleBody)
		page.SetMasterPageName(masterContent)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLayout, spec.Layout)
	}

	page.SetName(fmt.Sprintf("page%d", i))
	page.SetNotesPageNumber(i)

	if err := page.SetTitle(spec.Title); err != nil {
		return nil, err
	}

	switch spec.Layout {
	case LayoutTitle:
		page.SetSubtitle(spec.Subtitle)

	case LayoutText:
		page.SetOutline(spec.Bullets)

	case LayoutClosing:
		page.AddTextFrame(outlineStyleClosing, RoleOutline, closingTextGeom, spec.Bullets, true)

	case LayoutMix:
		outline := page.FindFrame(RoleOutline)
		if outline == nil {
			return nil, fmt.Errorf("%w: mix layout needs an outline frame", ErrStructure)
		}
		setGeometry(outline, mixOutlineGeom)
		setParagraphs(outline, bulleted(spec.Bullets))

		href, err := b.assets.Register(spec.Image)
		if err != nil {
			return nil, err
		}
		page.AddImageFrame(href, mixImageGeom, fmt.Sprintf("img%d", i))

	case LayoutImage:
		page.RemoveOutlineFrame()
		href, err := b.assets.Register(spec.Image)
		if err != nil {
			return nil, err
		}
		page.AddImageFrame(href, imageFullGeom, fmt.Sprintf("img%d", i))
		page.AddTextFrame(outlineStyleContent, RoleOutline, imageCaptionGeom, []string{spec.Caption}, false)

	case LayoutSplit:
		page.RemoveOutlineFrame()
		hrefL, err := b.assets.Register(spec.ImageLeft)
		if err != nil {
			return nil, err
		}
		hrefR, err := b.assets.Register(spec.ImageRight)
		if err != nil {
			return nil, err
		}
		page.AddImageFrame(hrefL, splitLeftGeom, fmt.Sprintf("img%d_l", i))
		page.AddImageFrame(hrefR, splitRightGeom, fmt.Sprintf("img%d_r", i))
		page.AddTextFrame(outlineStyleContent, RoleOutline, splitLeftCaptionGeom, []string{spec.CaptionLeft}, false)
		page.AddTextFrame(outlineStyleContent, RoleOutline, splitRightCaptionGeom, []string{spec.CaptionRight}, false)
	}

	return page, nil
}
