package goodp

import (
	"errors"
	"strings"
	"testing"
)

func TestParseXMLBasic(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0">
  <office:body>
    <draw:page draw:name="p1"/>
    <draw:page draw:name="p2"/>
  </office:body>
</office:document-content>`)

	root, err := ParseXML(data)
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}
	if root.Name != QName(nsOffice, "document-content") {
		t.Fatalf("unexpected root name: %v", root.Name)
	}

	body := root.Find(QName(nsOffice, "body"))
	if body == nil {
		t.Fatal("office:body not found")
	}
	pages := body.FindAll(QName(nsDraw, "page"))
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if got := pages[1].GetAttr(QName(nsDraw, "name")); got != "p2" {
		t.Fatalf("expected attr p2, got %q", got)
	}
}

func TestParseXMLMalformed(t *testing.T) {
	cases := [][]byte{
		[]byte("not xml at all <"),
		[]byte("<a><b></a></b>"),
		[]byte("<unclosed>"),
		[]byte(""),
	}
	for _, data := range cases {
		if _, err := ParseXML(data); !errors.Is(err, ErrMalformedXML) {
			t.Errorf("ParseXML(%q): expected ErrMalformedXML, got %v", data, err)
		}
	}
}

func TestNodeTextAndTail(t *testing.T) {
	root, err := ParseXML([]byte(`<p>before<span>inner</span>after</p>`))
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}
	if root.Text != "before" {
		t.Fatalf("expected text %q, got %q", "before", root.Text)
	}
	span := root.Find(QName("", "span"))
	if span == nil {
		t.Fatal("span not found")
	}
	if span.Text != "inner" || span.Tail != "after" {
		t.Fatalf("unexpected text/tail: %q / %q", span.Text, span.Tail)
	}

	out, err := root.XML()
	if err != nil {
		t.Fatalf("XML failed: %v", err)
	}
	if !strings.Contains(string(out), "before<span>inner</span>after") {
		t.Fatalf("mixed content lost: %s", out)
	}
}

func TestNodeCloneIndependence(t *testing.T) {
	root, err := ParseXML([]byte(`<page name="orig"><frame class="title"><box>text</box></frame></page>`))
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}

	clone := root.Clone()
	clone.SetAttr(QName("", "name"), "copy")
	frame := clone.Find(QName("", "frame"))
	frame.Children = nil
	clone.NewChild(QName("", "extra"))

	if got := root.GetAttr(QName("", "name")); got != "orig" {
		t.Fatalf("original attribute mutated: %q", got)
	}
	origFrame := root.Find(QName("", "frame"))
	if origFrame == nil || len(origFrame.Children) != 1 {
		t.Fatal("original children mutated through clone")
	}
	if root.Find(QName("", "extra")) != nil {
		t.Fatal("child added to clone leaked into original")
	}
}

func TestNodeAttrOperations(t *testing.T) {
	n := &Node{Name: QName(nsDraw, "frame")}
	name := QName(nsPresentation, "class")

	if got := n.GetAttr(name); got != "" {
		t.Fatalf("expected empty attr, got %q", got)
	}
	n.SetAttr(name, "title")
	n.SetAttr(name, "outline") // overwrite, not append
	if len(n.Attr) != 1 || n.GetAttr(name) != "outline" {
		t.Fatalf("SetAttr did not replace: %v", n.Attr)
	}
	n.RemoveAttr(name)
	if n.GetAttr(name) != "" {
		t.Fatal("RemoveAttr left attribute behind")
	}
}

func TestXMLRoundTrip(t *testing.T) {
	data := []byte(`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"><office:body><text:p text:style-name="P1">5 &lt; 6 &amp; 7</text:p></office:body></office:document-content>`)

	root, err := ParseXML(data)
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}
	out, err := root.XML()
	if err != nil {
		t.Fatalf("XML failed: %v", err)
	}
	again, err := ParseXML(out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	p := again.Find(QName(nsOffice, "body")).Find(QName(nsText, "p"))
	if p == nil {
		t.Fatal("text:p lost in round trip")
	}
	if p.Text != "5 < 6 & 7" {
		t.Fatalf("escaped text corrupted: %q", p.Text)
	}
	if got := p.GetAttr(QName(nsText, "style-name")); got != "P1" {
		t.Fatalf("namespaced attribute lost: %q", got)
	}
}

func TestXMLUnknownNamespacePrefix(t *testing.T) {
	data := []byte(`<root xmlns:x="urn:example:unknown"><x:child x:attr="v"/></root>`)
	root, err := ParseXML(data)
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}
	out, err := root.XML()
	if err != nil {
		t.Fatalf("XML failed: %v", err)
	}
	if !strings.Contains(string(out), `xmlns:ns0="urn:example:unknown"`) {
		t.Fatalf("generated prefix not declared: %s", out)
	}
	again, err := ParseXML(out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	child := again.Find(QName("urn:example:unknown", "child"))
	if child == nil {
		t.Fatal("unknown-namespace child lost")
	}
	if got := child.GetAttr(QName("urn:example:unknown", "attr")); got != "v" {
		t.Fatalf("unknown-namespace attr lost: %q", got)
	}
}
