package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmatos/tabula/internal/domain"
)

func TestRenderTextLayout(t *testing.T) {
	out, err := RenderText(
		[]string{"a", "b"},
		[]domain.Row{{"a": "x", "b": 1}},
		true,
	)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a | b", lines[0])
	assert.Equal(t, "--+--", lines[1])
	assert.Equal(t, "x | 1", lines[2])
}

func TestRenderTextWidthsFromContent(t *testing.T) {
	out, err := RenderText(
		[]string{"name", "n"},
		[]domain.Row{
			{"name": "Ana", "n": 1},
			{"name": "Guilherme", "n": 22},
		},
		true,
	)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "name      | n ", lines[0])
	assert.Equal(t, "----------+---", lines[1])
	assert.Equal(t, "Ana       | 1 ", lines[2])
	assert.Equal(t, "Guilherme | 22", lines[3])
}

func TestRenderTextStripsEmbeddedNewlines(t *testing.T) {
	out, err := RenderText(
		[]string{"a"},
		[]domain.Row{{"a": "line1\r\nline2"}},
		true,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "line1 line2")
	for _, line := range strings.Split(out, "\n") {
		assert.NotContains(t, line, "\r")
	}
}

func TestRenderTextNilAndDateCells(t *testing.T) {
	d := time.Date(2021, 12, 25, 0, 0, 0, 0, time.UTC)
	out, err := RenderText(
		[]string{"date", "note"},
		[]domain.Row{{"date": d, "note": nil}},
		true,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "2021-12-25")
}

func TestRenderTextMissingKeyRendersEmpty(t *testing.T) {
	out, err := RenderText(
		[]string{"a", "b"},
		[]domain.Row{{"a": "x"}},
		true,
	)
	require.NoError(t, err)
	assert.Equal(t, "x |  ", strings.Split(out, "\n")[2])
}

func TestRenderTextRejectsUnsupportedCellType(t *testing.T) {
	_, err := RenderText(
		[]string{"a"},
		[]domain.Row{{"a": []string{"nope"}}},
		true,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestWrapWords(t *testing.T) {
	assert.Equal(t, []string{"aaa bb", "cc"}, wrapWords("aaa bb cc", 6))
	assert.Equal(t, []string{"abcde", "fgh"}, wrapWords("abcdefgh", 5))
	assert.Equal(t, []string{""}, wrapWords("", 4))
	assert.Equal(t, []string{"ab"}, wrapWords("ab", 4))
}
