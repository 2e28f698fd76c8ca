package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

func TestDecodeLayout(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		text    string
		bom     bool
		wantErr bool
	}{
		{name: "plain", raw: []byte("<VBox/>"), text: "<VBox/>"},
		{name: "with bom", raw: append([]byte{0xEF, 0xBB, 0xBF}, "<VBox/>"...), text: "<VBox/>", bom: true},
		{name: "empty", raw: []byte{}, text: ""},
		{name: "invalid utf-8", raw: []byte{'<', 0xff, 0xfe, '>'}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := decodeLayout(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCategory(err, errors.CategoryEncoding))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.text, doc.text)
			assert.Equal(t, tt.bom, doc.bom)
		})
	}
}

func TestLayoutText_EncodeRestoresBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, "<VBox/>"...)
	doc, err := decodeLayout(raw)
	require.NoError(t, err)

	out, err := doc.encode("<VBox>edited</VBox>")
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, "<VBox>edited</VBox>"...), out)

	plain, err := layoutText{}.encode("<VBox/>")
	require.NoError(t, err)
	assert.Equal(t, []byte("<VBox/>"), plain)
}
