package element

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidElement = errors.New("invalid element")
)

// Node is either a *Text or an *Element.
type Node interface {
	node()
}

// Text is an immutable character data leaf.
type Text struct {
	value string
}

func NewText(v string) *Text {
	return &Text{value: v}
}

func (t *Text) Value() string {
	return t.value
}

func (t *Text) node() {}

// Element is a write-once tree node. It carries either one text payload or an
// ordered list of child nodes, never both.
type Element struct {
	name     QName
	text     *Text
	children []Node
}

func (e *Element) node() {}

// New builds an element named name. A single *Text argument selects text content,
// anything else is treated as the ordered child list.
func New(name QName, nodes ...Node) (*Element, error) {
	if len(name.Local) == 0 {
		return nil, fmt.Errorf("empty local name, space:%s, err:%w", name.Space, ErrInvalidElement)
	}
	e := &Element{name: name}
	if len(nodes) == 0 {
		return e, nil
	}
	for idx, n := range nodes {
		switch v := n.(type) {
		case nil:
			return nil, fmt.Errorf("nil node at index:%d, name:%s, err:%w", idx, name, ErrInvalidElement)
		case *Text:
			if v == nil {
				return nil, fmt.Errorf("nil text at index:%d, name:%s, err:%w", idx, name, ErrInvalidElement)
			}
			if len(nodes) != 1 {
				return nil, fmt.Errorf("text mixed with other content, name:%s, err:%w", name, ErrInvalidElement)
			}
			e.text = v
			return e, nil
		case *Element:
			if v == nil {
				return nil, fmt.Errorf("nil child at index:%d, name:%s, err:%w", idx, name, ErrInvalidElement)
			}
		default:
			return nil, fmt.Errorf("unsupported node at index:%d, name:%s, err:%w", idx, name, ErrInvalidElement)
		}
	}
	e.children = make([]Node, len(nodes))
	copy(e.children, nodes)
	return e, nil
}

// NewTextElement builds an element holding the text v.
func NewTextElement(name QName, v string) (*Element, error) {
	return New(name, NewText(v))
}

// MustNew is like New but panics when the element is malformed.
func MustNew(name QName, nodes ...Node) *Element {
	e, err := New(name, nodes...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Element) Name() QName {
	return e.name
}

// Text returns the text payload and whether the element is in text mode.
func (e *Element) Text() (string, bool) {
	if e.text == nil {
		return "", false
	}
	return e.text.value, true
}

func (e *Element) HasText() bool {
	return e.text != nil
}

// Children returns a copy of the child list, nil in text mode.
func (e *Element) Children() []Node {
	if len(e.children) == 0 {
		return nil
	}
	rs := make([]Node, len(e.children))
	copy(rs, e.children)
	return rs
}

// ChildElements returns the element children in order.
func (e *Element) ChildElements() []*Element {
	rs := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if ce, ok := c.(*Element); ok {
			rs = append(rs, ce)
		}
	}
	return rs
}

func (e *Element) IsEmpty() bool {
	return e.text == nil && len(e.children) == 0
}
