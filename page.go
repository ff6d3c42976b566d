package goodp

import (
	"fmt"
	"strconv"
)

// Frame roles. A frame's role is its presentation:class attribute; frames
// are located by role, never by position.
const (
	RoleTitle    = "title"
	RoleOutline  = "outline"
	RoleSubtitle = "subtitle"
)

// bulletPrefix is prepended to every outline line.
const bulletPrefix = "• "

// Page wraps a draw:page element and provides the mutation operations the
// synthesizer needs. A Page produced by Clone shares no state with its
// source, so rewrites never leak between slides or back into a prototype.
type Page struct {
	node *Node
}

// Node returns the underlying draw:page element.
func (p *Page) Node() *Node {
	return p.node
}

// Clone deep-copies the page.
func (p *Page) Clone() *Page {
	return &Page{node: p.node.Clone()}
}

// Name returns the page's draw:name attribute.
func (p *Page) Name() string {
	return p.node.GetAttr(QName(nsDraw, "name"))
}

// SetName sets the page's draw:name attribute.
func (p *Page) SetName(name string) {
	p.node.SetAttr(QName(nsDraw, "name"), name)
}

// SetStyleName sets the page's draw:style-name attribute.
func (p *Page) SetStyleName(style string) {
	p.node.SetAttr(QName(nsDraw, "style-name"), style)
}

// SetMasterPageName sets the page's draw:master-page-name attribute,
// switching the page to another master's visual theme.
func (p *Page) SetMasterPageName(master string) {
	p.node.SetAttr(QName(nsDraw, "master-page-name"), master)
}

// FindFrame returns the first draw:frame child whose presentation:class
// matches the given role, or nil if the page has no such frame.
func (p *Page) FindFrame(role string) *Node {
	for _, frame := range p.node.FindAll(QName(nsDraw, "frame")) {
		if frame.GetAttr(QName(nsPresentation, "class")) == role {
			return frame
		}
	}
	return nil
}

// clearTextBox returns the frame's draw:text-box with all prior content
// discarded, creating the text box if the frame has none. Replacement is
// destructive: nothing of the prototype's text survives.
func clearTextBox(frame *Node) *Node {
	textbox := frame.Find(QName(nsDraw, "text-box"))
	if textbox == nil {
		textbox = frame.NewChild(QName(nsDraw, "text-box"))
	}
	textbox.Children = nil
	textbox.Text = ""
	return textbox
}

// setParagraphs replaces the frame's text content with one text:p element
// per line.
func setParagraphs(frame *Node, lines []string) {
	textbox := clearTextBox(frame)
	for _, line := range lines {
		p := textbox.NewChild(QName(nsText, "p"))
		p.Text = line
	}
}

// bulleted returns the lines with the bullet glyph prefixed.
func bulleted(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = bulletPrefix + line
	}
	return out
}

// SetTitle overwrites the title frame's text with the single title line.
// Every layout requires a title; a page without a title frame is a
// structural error.
func (p *Page) SetTitle(title string) error {
	frame := p.FindFrame(RoleTitle)
	if frame == nil {
		return fmt.Errorf("%w: page %q has no title frame", ErrStructure, p.Name())
	}
	setParagraphs(frame, []string{title})
	return nil
}

// SetOutline writes bullet-prefixed lines into the outline frame.
// No-op when the page has no outline frame.
func (p *Page) SetOutline(lines []string) {
	frame := p.FindFrame(RoleOutline)
	if frame == nil {
		return
	}
	setParagraphs(frame, bulleted(lines))
}

// SetSubtitle writes lines into the subtitle frame. No-op when the page
// has no subtitle frame.
func (p *Page) SetSubtitle(lines []string) {
	frame := p.FindFrame(RoleSubtitle)
	if frame == nil {
		return
	}
	setParagraphs(frame, lines)
}

// RemoveOutlineFrame deletes the outline frame entirely, for layouts that
// have no bullet region. No-op when absent.
func (p *Page) RemoveOutlineFrame() {
	if frame := p.FindFrame(RoleOutline); frame != nil {
		p.node.Remove(frame)
	}
}

// SetNotesPageNumber propagates the slide's 1-based index into the
// embedded notes page-thumbnail reference. No-op when the page carries no
// notes or the notes have no thumbnail.
func (p *Page) SetNotesPageNumber(pageNo int) {
	notes := p.node.Find(QName(nsPresentation, "notes"))
	if notes == nil {
		return
	}
	thumb := notes.Find(QName(nsDraw, "page-thumbnail"))
	if thumb == nil {
		return
	}
	thumb.SetAttr(QName(nsDraw, "page-number"), strconv.Itoa(pageNo))
}

// frameGeometry is the position and size of a frame in centimeters.
type frameGeometry struct {
	x, y, w, h Centimeters
}

func setGeometry(frame *Node, g frameGeometry) {
	frame.SetAttr(QName(nsSVG, "x"), g.x.String())
	frame.SetAttr(QName(nsSVG, "y"), g.y.String())
	frame.SetAttr(QName(nsSVG, "width"), g.w.String())
	frame.SetAttr(QName(nsSVG, "height"), g.h.String())
}

// AddTextFrame inserts a freestanding text frame with the given
// presentation style, role and geometry. With bullet set, each line gets
// the bullet glyph.
func (p *Page) AddTextFrame(styleName, role string, g frameGeometry, lines []string, bullet bool) {
	frame := p.node.NewChild(QName(nsDraw, "frame"))
	frame.SetAttr(QName(nsPresentation, "style-name"), styleName)
	frame.SetAttr(QName(nsDraw, "layer"), "layout")
	setGeometry(frame, g)
	frame.SetAttr(QName(nsPresentation, "class"), role)
	frame.SetAttr(QName(nsPresentation, "user-transformed"), "true")

	if bullet {
		lines = bulleted(lines)
	}
	setParagraphs(frame, lines)
}

// AddImageFrame inserts an image frame referencing a package-internal
// asset path.
func (p *Page) AddImageFrame(href string, g frameGeometry, name string) {
	frame := p.node.NewChild(QName(nsDraw, "frame"))
	frame.SetAttr(QName(nsDraw, "style-name"), "gr1")
	frame.SetAttr(QName(nsDraw, "name"), name)
	frame.SetAttr(QName(nsDraw, "layer"), "layout")
	setGeometry(frame, g)

	img := frame.NewChild(QName(nsDraw, "image"))
	img.SetAttr(QName(nsXLink, "href"), href)
	img.SetAttr(QName(nsXLink, "type"), "simple")
	img.SetAttr(QName(nsXLink, "show"), "embed")
	img.SetAttr(QName(nsXLink, "actuate"), "onLoad")
}
