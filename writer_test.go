package goodp

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"sort"
	"testing"
)

func testPackage() Package {
	return Package{
		memberMimetype:       []byte(MediaTypePresentation),
		memberContent:        []byte("<c/>"),
		memberManifest:       []byte("<m/>"),
		"Pictures/01_a.png":  testPNG(),
		"styles.xml":         []byte("<s/>"),
	}
}

func TestWriterMimetypeFirstAndStored(t *testing.T) {
	pkg := testPackage()
	w, err := NewWriter(pkg, WriterOpenDocument)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	var buf bytes.Buffer
	if err := w.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	if len(zr.File) != len(pkg) {
		t.Fatalf("expected %d members, got %d", len(pkg), len(zr.File))
	}

	first := zr.File[0]
	if first.Name != memberMimetype {
		t.Fatalf("first member is %q, want %q", first.Name, memberMimetype)
	}
	if first.Method != zip.Store {
		t.Fatalf("mimetype member is compressed (method %d)", first.Method)
	}
	rc, err := first.Open()
	if err != nil {
		t.Fatalf("opening mimetype member: %v", err)
	}
	content, _ := io.ReadAll(rc)
	rc.Close()
	if string(content) != MediaTypePresentation {
		t.Fatalf("mimetype content %q, want %q", content, MediaTypePresentation)
	}

	var rest []string
	for _, f := range zr.File[1:] {
		if f.Method != zip.Deflate {
			t.Errorf("member %s not deflated (method %d)", f.Name, f.Method)
		}
		rest = append(rest, f.Name)
	}
	if !sort.StringsAreSorted(rest) {
		t.Errorf("members after mimetype not sorted: %v", rest)
	}
}

func TestWriterRequiresMimetype(t *testing.T) {
	pkg := Package{"content.xml": []byte("<c/>")}
	w, err := NewWriter(pkg, WriterOpenDocument)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
}

func TestReaderRoundTrip(t *testing.T) {
	pkg := testPackage()
	w, _ := NewWriter(pkg, WriterOpenDocument)

	var buf bytes.Buffer
	if err := w.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	r, _ := NewReader(ReaderOpenDocument)
	got, err := r.ReadFromReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("ReadFromReader failed: %v", err)
	}

	if len(got) != len(pkg) {
		t.Fatalf("expected %d members, got %d", len(pkg), len(got))
	}
	for name, want := range pkg {
		if !bytes.Equal(got[name], want) {
			t.Errorf("member %s corrupted in round trip", name)
		}
	}
}

func TestReaderRejectsGarbage(t *testing.T) {
	data := []byte("this is definitely not a zip archive")
	r, _ := NewReader(ReaderOpenDocument)
	if _, err := r.ReadFromReader(bytes.NewReader(data), int64(len(data))); !errors.Is(err, ErrInvalidArchive) {
		t.Fatalf("expected ErrInvalidArchive, got %v", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	r, _ := NewReader(ReaderOpenDocument)
	if _, err := r.Read("/nonexistent/template.otp"); !errors.Is(err, ErrInvalidArchive) {
		t.Fatalf("expected ErrInvalidArchive, got %v", err)
	}
}

func TestUnsupportedFormats(t *testing.T) {
	if _, err := NewReader("PowerPoint2007"); err == nil {
		t.Error("expected error for unsupported reader format")
	}
	if _, err := NewWriter(Package{}, "PowerPoint2007"); err == nil {
		t.Error("expected error for unsupported writer format")
	}
}
