package keymap

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// lookupCharset resolves an XML encoding label. A nil encoding means the
// bytes are already UTF-8 and pass through untouched.
func lookupCharset(label string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", label)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// decodeReader converts input to UTF-8.
func decodeReader(enc encoding.Encoding, input io.Reader) io.Reader {
	if enc == nil {
		return input
	}
	return transform.NewReader(input, enc.NewDecoder())
}

// encodeWriter converts UTF-8 written to w into enc. Runes the target
// charset cannot hold become numeric character references, which any XML
// reader resolves back to the original text.
func encodeWriter(enc encoding.Encoding, w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, encoding.HTMLEscapeUnsupported(enc.NewEncoder()))
}
