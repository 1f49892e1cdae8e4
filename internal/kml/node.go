package kml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Node is a namespace-agnostic XML element.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// Decode reads a whole XML document into a Node tree. Any syntax error,
// unclosed element or missing root is reported as ErrMalformedXML.
func Decode(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader

	var root *Node
	var stack []*Node
	var text []*strings.Builder
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			} else {
				return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedXML)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedXML)
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed <%s>", ErrMalformedXML, stack[len(stack)-1].Name)
	}
	return root, nil
}

// charsetReader transcodes documents that declare a non-UTF-8 encoding,
// such as ISO-8859-1 or windows-1252, into UTF-8.
func charsetReader(label string, in io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", label)
	}
	return enc.NewDecoder().Reader(in), nil
}

// Child returns the first direct child called name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find returns the first descendant called name, depth-first.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// FindPath follows names through successive descendant lookups and
// returns nil as soon as one is missing.
func (n *Node) FindPath(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Find(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// FindAll returns every descendant called name in document order.
func (n *Node) FindAll(name string) []*Node {
	return n.FindAllOutside(name, "")
}

// FindAllOutside is FindAll without entering subtrees rooted at an element
// called skip.
func (n *Node) FindAllOutside(name, skip string) []*Node {
	var out []*Node
	n.walk(func(c *Node) bool {
		if c.Name == name {
			out = append(out, c)
		}
		return skip == "" || c.Name != skip
	})
	return out
}

// walk visits descendants depth-first. Children of a node are skipped when
// fn returns false for it.
func (n *Node) walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		if fn(c) {
			c.walk(fn)
		}
	}
}
