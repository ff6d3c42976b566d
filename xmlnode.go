package goodp

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

// Node is a mutable element in a parsed XML tree. Names and attributes are
// namespace-qualified (xml.Name.Space holds the namespace URI). Text is the
// character data before the first child, Tail the character data following
// the element's end tag — the ElementTree text/tail model, which round-trips
// the mixed content found in ODF text paragraphs.
type Node struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*Node
	Text     string
	Tail     string
}

// QName builds a namespace-qualified name.
func QName(space, local string) xml.Name {
	return xml.Name{Space: space, Local: local}
}

// ParseXML parses a well-formed XML document into a Node tree.
// Comments and processing instructions are discarded; namespace
// declarations are stripped on parse and reconstructed on serialization.
func ParseXML(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: el.Name}
			for _, a := range el.Attr {
				// xmlns declarations are regenerated when the tree
				// is serialized.
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				node.Attr = append(node.Attr, a)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedXML)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			// CharData is only valid until the next Token call.
			text := string(el)
			curr := stack[len(stack)-1]
			if len(curr.Children) == 0 {
				curr.Text += text
			} else {
				last := curr.Children[len(curr.Children)-1]
				last.Tail += text
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedXML)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed element", ErrMalformedXML)
	}
	return root, nil
}

// Clone returns a deep copy of the node. The copy shares no mutable state
// with the original, so cloned prototypes can be rewritten freely.
func (n *Node) Clone() *Node {
	c := &Node{
		Name: n.Name,
		Text: n.Text,
		Tail: n.Tail,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]xml.Attr, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Find returns the first direct child with the given name, or nil.
func (n *Node) Find(name xml.Name) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns all direct children with the given name.
func (n *Node) FindAll(name xml.Name) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// GetAttr returns the value of the named attribute, or "" if unset.
func (n *Node) GetAttr(name xml.Name) string {
	for _, a := range n.Attr {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets the named attribute, replacing any existing value.
func (n *Node) SetAttr(name xml.Name, value string) {
	for i, a := range n.Attr {
		if a.Name == name {
			n.Attr[i].Value = value
			return
		}
	}
	n.Attr = append(n.Attr, xml.Attr{Name: name, Value: value})
}

// RemoveAttr removes the named attribute if present.
func (n *Node) RemoveAttr(name xml.Name) {
	for i, a := range n.Attr {
		if a.Name == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// Append adds a child at the end of the child list.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// Remove detaches the given child. Returns false if the node is not a
// direct child.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// NewChild creates an element with the given name, appends it and
// returns it.
func (n *Node) NewChild(name xml.Name) *Node {
	child := &Node{Name: name}
	n.Append(child)
	return child
}

// --- Serialization ---

// XML serializes the tree to a standalone XML document, including the XML
// declaration. Namespace prefixes follow the canonical ODF prefix table;
// URIs outside the table are assigned generated prefixes. All prefixes in
// use are declared on the root element.
func (n *Node) XML() ([]byte, error) {
	prefixes, order := collectPrefixes(n)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := writeNode(&buf, n, prefixes, order); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// collectPrefixes walks the tree and assigns a prefix to every namespace
// URI in use. The returned order lists URIs in declaration order: table
// entries sorted by prefix, then generated ones.
func collectPrefixes(root *Node) (map[string]string, []string) {
	used := make(map[string]bool)
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Name.Space != "" {
			used[n.Name.Space] = true
		}
		for _, a := range n.Attr {
			if a.Name.Space != "" {
				used[a.Name.Space] = true
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	prefixes := make(map[string]string, len(used))
	var known, unknown []string
	for uri := range used {
		if _, ok := odfPrefixes[uri]; ok {
			known = append(known, uri)
		} else {
			unknown = append(unknown, uri)
		}
	}
	sort.Slice(known, func(i, j int) bool {
		return odfPrefixes[known[i]] < odfPrefixes[known[j]]
	})
	sort.Strings(unknown)

	for _, uri := range known {
		prefixes[uri] = odfPrefixes[uri]
	}
	for i, uri := range unknown {
		prefixes[uri] = fmt.Sprintf("ns%d", i)
	}
	return prefixes, append(known, unknown...)
}

func qname(name xml.Name, prefixes map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	return prefixes[name.Space] + ":" + name.Local
}

func writeNode(buf *bytes.Buffer, n *Node, prefixes map[string]string, nsOrder []string) error {
	buf.WriteByte('<')
	buf.WriteString(qname(n.Name, prefixes))

	// nsOrder is non-nil only for the root element.
	for _, uri := range nsOrder {
		buf.WriteString(` xmlns:`)
		buf.WriteString(prefixes[uri])
		buf.WriteString(`="`)
		if err := xml.EscapeText(buf, []byte(uri)); err != nil {
			return err
		}
		buf.WriteByte('"')
	}

	for _, a := range n.Attr {
		buf.WriteByte(' ')
		buf.WriteString(qname(a.Name, prefixes))
		buf.WriteString(`="`)
		if err := xml.EscapeText(buf, []byte(a.Value)); err != nil {
			return err
		}
		buf.WriteByte('"')
	}

	if len(n.Children) == 0 && n.Text == "" {
		buf.WriteString("/>")
	} else {
		buf.WriteByte('>')
		if err := xml.EscapeText(buf, []byte(n.Text)); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := writeNode(buf, c, prefixes, nil); err != nil {
				return err
			}
		}
		buf.WriteString("</")
		buf.WriteString(qname(n.Name, prefixes))
		buf.WriteByte('>')
	}

	if n.Tail != "" {
		if err := xml.EscapeText(buf, []byte(n.Tail)); err != nil {
			return err
		}
	}
	return nil
}
