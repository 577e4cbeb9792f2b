package keymap

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding"

	"github.com/joshuapare/keyremap/pkg/types"
)

// Element and attribute names understood by this package.
const (
	ShortcutTag         = "keyboard-shortcut"
	FirstKeystrokeAttr  = "first-keystroke"
	SecondKeystrokeAttr = "second-keystroke"
	ActionIDAttr        = "id"
)

// Document is a parsed keymap.
type Document struct {
	doc     *etree.Document
	charset string            // declared encoding label, "" for UTF-8
	enc     encoding.Encoding // nil for UTF-8
}

// Load parses the keymap at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap: %w", err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Read parses a keymap from r.
func Read(r io.Reader) (*Document, error) {
	d := &Document{doc: etree.NewDocument()}
	d.doc.ReadSettings.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		enc, err := lookupCharset(label)
		if err != nil {
			return nil, err
		}
		d.enc = enc
		if enc != nil {
			d.charset = label
		}
		return decodeReader(enc, input), nil
	}

	if _, err := d.doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedKeymap, err)
	}
	if d.doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", types.ErrMalformedKeymap)
	}
	return d, nil
}

// Charset returns the declared non-UTF-8 encoding, or "" for UTF-8.
func (d *Document) Charset() string {
	return d.charset
}

// Name returns the root element's name attribute, if any.
func (d *Document) Name() string {
	return d.doc.Root().SelectAttrValue("name", "")
}

// Actions returns the children of the root element.
func (d *Document) Actions() []Action {
	children := d.doc.Root().ChildElements()
	actions := make([]Action, 0, len(children))
	for _, el := range children {
		actions = append(actions, Action{el: el})
	}
	return actions
}

// Write serializes the document to w in its original encoding.
func (d *Document) Write(w io.Writer) error {
	if d.enc == nil {
		_, err := d.doc.WriteTo(w)
		return err
	}

	ew := encodeWriter(d.enc, w)
	if _, err := d.doc.WriteTo(ew); err != nil {
		ew.Close()
		return fmt.Errorf("encoding %s: %w", d.charset, err)
	}
	if err := ew.Close(); err != nil {
		return fmt.Errorf("encoding %s: %w", d.charset, err)
	}
	return nil
}

// Bytes returns the serialized document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("serializing keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap: %w", err)
	}
	return nil
}

// Action is one child of the keymap root.
type Action struct {
	el *etree.Element
}

// ID returns the action's id attribute, or "" when absent.
func (a Action) ID() string {
	return a.el.SelectAttrValue(ActionIDAttr, "")
}

// Shortcuts returns the keyboard-shortcut children. Other children are
// ignored.
func (a Action) Shortcuts() []Shortcut {
	var out []Shortcut
	for _, el := range a.el.ChildElements() {
		if el.FullTag() == ShortcutTag {
			out = append(out, Shortcut{el: el})
		}
	}
	return out
}

// Shortcut is a keyboard-shortcut element.
type Shortcut struct {
	el *etree.Element
}

// First returns the first-keystroke attribute.
func (s Shortcut) First() (string, bool) {
	return s.attr(FirstKeystrokeAttr)
}

// Second returns the second-keystroke attribute.
func (s Shortcut) Second() (string, bool) {
	return s.attr(SecondKeystrokeAttr)
}

// SetFirst replaces the first-keystroke attribute.
func (s Shortcut) SetFirst(v string) {
	s.el.CreateAttr(FirstKeystrokeAttr, v)
}

// SetSecond replaces the second-keystroke attribute.
func (s Shortcut) SetSecond(v string) {
	s.el.CreateAttr(SecondKeystrokeAttr, v)
}

func (s Shortcut) attr(key string) (string, bool) {
	a := s.el.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}
