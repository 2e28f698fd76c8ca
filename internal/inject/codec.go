package inject

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// layoutText is a decoded layout file. The byte order mark is kept aside so
// the transformer never sees it and it survives the rewrite.
type layoutText struct {
	text string
	bom  bool
}

func decodeLayout(raw []byte) (layoutText, error) {
	if !utf8.Valid(raw) {
		return layoutText{}, errors.EncodingError("layout file is not valid UTF-8").Build()
	}

	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return layoutText{}, errors.WrapError(err, errors.CategoryEncoding, "failed to decode layout file").Build()
	}

	return layoutText{text: string(text), bom: bytes.HasPrefix(raw, utf8BOM)}, nil
}

func (l layoutText) encode(text string) ([]byte, error) {
	if !l.bom {
		return []byte(text), nil
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewEncoder(), []byte(text))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryEncoding, "failed to encode layout file").Build()
	}
	return out, nil
}
