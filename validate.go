package goodp

import (
	"fmt"
	"strings"
)

// prototypePageCount is the number of prototype pages a template must
// carry: title, content and closing, in that order.
const prototypePageCount = 3

// Validate checks the document for the structure a build needs and
// returns an error describing all problems found, or nil if the document
// is usable as a build template.
func (d *Document) Validate() error {
	var errs []string

	if !d.pkg.Has(memberMimetype) {
		errs = append(errs, "package has no mimetype member")
	}
	if d.content == nil {
		errs = append(errs, "content tree is nil")
	}
	if d.manifest == nil {
		errs = append(errs, "manifest tree is nil")
	} else if d.manifest.Name != QName(nsManifest, "manifest") {
		errs = append(errs, "manifest root element is not manifest:manifest")
	}

	if d.content != nil {
		if pres, err := d.presentationBody(); err != nil {
			errs = append(errs, err.Error())
		} else {
			pages := pres.FindAll(QName(nsDraw, "page"))
			if len(pages) < prototypePageCount {
				errs = append(errs, fmt.Sprintf("template has %d pages, need at least %d prototypes", len(pages), prototypePageCount))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: validation failed:\n  %s", ErrStructure, strings.Join(errs, "\n  "))
}
