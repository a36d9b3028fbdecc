package highlight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usd-tools/usdlex/pkgs/token"
	"github.com/usd-tools/usdlex/pkgs/usd"
)

func TestStyleForFallsBackThroughHierarchy(t *testing.T) {
	// String.Doc has no entry of its own; it inherits String's style.
	assert.Equal(t, styles[token.String], StyleFor(token.StringDoc))
	assert.Equal(t, styles[token.Comment], StyleFor(token.CommentHashbang))
	// KeywordType has its own entry; no fallback.
	assert.Equal(t, ColorCyan, StyleFor(token.KeywordType))
	// Punctuation is deliberately unstyled.
	assert.Equal(t, "", StyleFor(token.Punctuation))
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "x", Colorize("x", ColorRed, false))
	assert.Equal(t, "x", Colorize("x", "", true))
	assert.Equal(t, ColorRed+"x"+ColorReset, Colorize("x", ColorRed, true))
}

func TestWriteWithoutColorIsIdentity(t *testing.T) {
	input := "#usda 1.0\ndef Xform \"World\"\n{\n    custom double myAttr = 1.0\n}\n"
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, usd.New(input), false))
	assert.Equal(t, input, buf.String())
}

func TestWriteWithColorStylesKeywords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, usd.New("def Xform"), true))

	out := buf.String()
	assert.Contains(t, out, ColorBlue+"def"+ColorReset)
	assert.True(t, strings.HasSuffix(out, "Xform"), "unstyled generic text stays bare: %q", out)
}
