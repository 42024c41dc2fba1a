package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/clubshop/internal/encoding"
)

const sheet = "Produto;Preço;Categoria\nQuota anual;120,00;membership\nCamisola época;35,50;apparel\n"

func windows1252(t *testing.T, s string) []byte {
	t.Helper()

	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)

	return b
}

func utf16LE(t *testing.T, s string) []byte {
	t.Helper()

	b, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)

	return b
}

func TestDetect(t *testing.T) {
	type testCase struct {
		name  string
		input []byte
		want  encoding.Charset
	}

	tests := []testCase{
		{
			name:  "plain utf-8",
			input: []byte(sheet),
			want:  encoding.UTF8,
		},
		{
			name:  "utf-8 bom",
			input: append([]byte{0xEF, 0xBB, 0xBF}, sheet...),
			want:  encoding.UTF8BOM,
		},
		{
			name:  "utf-16 little endian bom",
			input: []byte{0xFF, 0xFE, 'P', 0},
			want:  encoding.UTF16LE,
		},
		{
			name:  "utf-16 big endian bom",
			input: []byte{0xFE, 0xFF, 0, 'P'},
			want:  encoding.UTF16BE,
		},
		{
			name:  "utf-8 cut mid rune",
			input: []byte("Preço")[:4],
			want:  encoding.UTF8,
		},
		{
			name:  "empty",
			input: nil,
			want:  encoding.UTF8,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, encoding.Detect(tc.input))
		})
	}
}

func TestDetect_LegacySingleByte(t *testing.T) {
	latin := windows1252(t, sheet)

	got := encoding.Detect(latin)
	assert.Contains(t, []encoding.Charset{encoding.Windows1252, encoding.ISO8859_15}, got)
}

func TestNewUTF8Reader(t *testing.T) {
	utf16 := utf16LE(t, sheet)
	latin := windows1252(t, sheet)

	type testCase struct {
		name  string
		input []byte
	}

	tests := []testCase{
		{name: "utf-8 passthrough", input: []byte(sheet)},
		{name: "utf-8 bom stripped", input: append([]byte{0xEF, 0xBB, 0xBF}, sheet...)},
		{name: "utf-16 decoded", input: utf16},
		{name: "windows-1252 decoded", input: latin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := encoding.NewUTF8Reader(bytes.NewReader(tc.input))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, sheet, string(got))
		})
	}
}

func TestNewUTF8Reader_LargerThanSample(t *testing.T) {
	big := strings.Repeat(sheet, 200)

	r, err := encoding.NewUTF8Reader(strings.NewReader(big))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, big, string(got))
}
