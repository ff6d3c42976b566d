package goodp

// LayoutKind is the enumerated slide-content pattern governing which
// frames a build mutates.
type LayoutKind string

const (
	// LayoutTitle is the opening slide: title plus subtitle lines.
	LayoutTitle LayoutKind = "title"
	// LayoutText is a plain bullet slide.
	LayoutText LayoutKind = "text"
	// LayoutMix is bullets on the left half, one image on the right.
	LayoutMix LayoutKind = "mix"
	// LayoutImage is one full-width image with a caption below it.
	LayoutImage LayoutKind = "image"
	// LayoutSplit is two side-by-side images, each with a caption.
	LayoutSplit LayoutKind = "split"
	// LayoutClosing is the final slide: closing theme plus bullet lines.
	LayoutClosing LayoutKind = "closing"
)

// SlideSpec describes one slide to synthesize. Which fields apply depends
// on the layout; unused fields are ignored. Specs are plain immutable
// data: the deck for a build is a fixed ordered list of them.
type SlideSpec struct {
	Layout LayoutKind

	// Title is mandatory for every layout.
	Title string

	// Subtitle lines, for the title layout.
	Subtitle []string

	// Bullets, for the text, mix and closing layouts.
	Bullets []string

	// Image is a project-relative path, for the mix and image layouts.
	Image string

	// ImageLeft and ImageRight are project-relative paths, for the split
	// layout.
	ImageLeft  string
	ImageRight string

	// Caption sits below the image on an image layout.
	Caption string

	// CaptionLeft and CaptionRight sit below the two images on a split
	// layout.
	CaptionLeft  string
	CaptionRight string
}
