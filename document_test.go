package goodp

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTemplate(t *testing.T) {
	doc := templateDoc(t)
	if err := doc.Validate(); err != nil {
		t.Fatalf("template should validate: %v", err)
	}
}

func TestValidateTooFewPrototypes(t *testing.T) {
	pkg := Package{
		memberMimetype: []byte(MediaTypePresentationTemplate),
		memberContent: []byte(`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"><office:body><office:presentation><draw:page draw:name="only"/></office:presentation></office:body></office:document-content>`),
		memberManifest: []byte(testManifestXML),
	}
	doc, err := newDocument(pkg)
	if err != nil {
		t.Fatalf("newDocument failed: %v", err)
	}
	if err := doc.Validate(); !errors.Is(err, ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
}

func TestNewDocumentMissingParts(t *testing.T) {
	_, err := newDocument(Package{memberMimetype: []byte("x")})
	if !errors.Is(err, ErrInvalidArchive) {
		t.Fatalf("expected ErrInvalidArchive, got %v", err)
	}
}

func TestNewDocumentMalformedContent(t *testing.T) {
	pkg := Package{
		memberMimetype: []byte(MediaTypePresentationTemplate),
		memberContent:  []byte("<broken"),
		memberManifest: []byte(testManifestXML),
	}
	if _, err := newDocument(pkg); !errors.Is(err, ErrMalformedXML) {
		t.Fatalf("expected ErrMalformedXML, got %v", err)
	}
}

func TestDestructiveTextReplacement(t *testing.T) {
	doc := templateDoc(t)
	pages, err := doc.Pages()
	if err != nil {
		t.Fatalf("Pages failed: %v", err)
	}

	// The content prototype's outline box starts with placeholder text;
	// writing new lines must discard it, not merge.
	content := pages[1].Clone()
	content.SetOutline([]string{"fresh"})
	lines := frameLines(t, content, RoleOutline)
	if len(lines) != 1 || lines[0] != "• fresh" {
		t.Fatalf("outline lines %v, want [• fresh]", lines)
	}
	for _, l := range lines {
		if strings.Contains(l, "placeholder") {
			t.Fatal("prototype placeholder text survived replacement")
		}
	}
}

func TestCentimeters(t *testing.T) {
	cases := []struct {
		in   Centimeters
		want string
	}{
		{CM(8.8), "8.8cm"},
		{CM(1), "1cm"},
		{CM(26.0), "26cm"},
		{CM(0.7), "0.7cm"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", float64(c.in), got, c.want)
		}
	}

	v, err := ParseCentimeters("10.8cm")
	if err != nil {
		t.Fatalf("ParseCentimeters failed: %v", err)
	}
	if v != 10.8 {
		t.Fatalf("parsed %v, want 10.8", v)
	}
	if _, err := ParseCentimeters("12pt"); err == nil {
		t.Fatal("expected error for non-cm unit")
	}
}
