package goodp

import "sort"

// Package is the in-memory form of an ODF zip container: a mapping from
// archive member path to raw bytes. It grows monotonically during a build
// as images and rewritten XML parts are added; nothing is ever removed.
type Package map[string][]byte

// Names returns all member names in sorted order.
func (p Package) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the named member exists.
func (p Package) Has(name string) bool {
	_, ok := p[name]
	return ok
}
