package element

import (
	"encoding/xml"
	"fmt"
	"io"
)

type encodeConfig struct {
	prefix string
	indent string
	header bool
}

type EncodeOption func(c *encodeConfig)

// WithIndent makes the output pretty printed, see xml.Encoder.Indent.
func WithIndent(prefix, indent string) EncodeOption {
	return func(c *encodeConfig) {
		c.prefix = prefix
		c.indent = indent
	}
}

// WithHeader prepends the standard xml declaration.
func WithHeader() EncodeOption {
	return func(c *encodeConfig) {
		c.header = true
	}
}

// Encode writes root to w. Names are written unprefixed; a default namespace
// declaration is emitted on the root and wherever a child leaves its parent's
// namespace, so a DAV: tree carries a single xmlns="DAV:".
func Encode(w io.Writer, root *Element, opts ...EncodeOption) error {
	if root == nil {
		return fmt.Errorf("nil root, err:%w", ErrInvalidElement)
	}
	c := &encodeConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.header {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
	}
	enc := xml.NewEncoder(w)
	if len(c.prefix) != 0 || len(c.indent) != 0 {
		enc.Indent(c.prefix, c.indent)
	}
	if err := encodeElement(enc, root, "", true); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeElement(enc *xml.Encoder, e *Element, parentSpace string, isRoot bool) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name.Local}}
	if (isRoot && len(e.name.Space) != 0) || (!isRoot && e.name.Space != parentSpace) {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: e.name.Space})
	}
	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("encode start element failed, name:%s, err:%w", e.name, err)
	}
	if e.text != nil {
		if err := enc.EncodeToken(xml.CharData(e.text.value)); err != nil {
			return fmt.Errorf("encode text failed, name:%s, err:%w", e.name, err)
		}
	}
	for _, child := range e.children {
		ce, ok := child.(*Element)
		if !ok {
			continue
		}
		if err := encodeElement(enc, ce, e.name.Space, false); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("encode end element failed, name:%s, err:%w", e.name, err)
	}
	return nil
}
