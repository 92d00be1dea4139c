package treefold

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine opens src as a JSON document named "doc" and renders it.
func newTestEngine(t *testing.T, src string, opts ...Option) *Engine {
	t.Helper()
	e := New(opts...)
	require.NoError(t, e.Open(context.Background(), "doc", "json", []byte(src)))
	require.NoError(t, e.Render("doc"))
	return e
}

func TestOpen_UnknownKind(t *testing.T) {
	t.Parallel()
	e := New()
	err := e.Open(context.Background(), "doc", "toml", []byte("x = 1"))
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestRender_UnopenedDocument(t *testing.T) {
	t.Parallel()
	e := New()
	require.ErrorIs(t, e.Render("nope"), ErrProviderUnavailable)
}

func TestPin_ViaCursor(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1,"c":[1,2,3]}}`)

	// Cursor on the "b" key.
	path, ok := e.Pin("doc", 0, 7)
	require.True(t, ok)
	assert.Equal(t, ".a.b", path)
	assert.True(t, e.IsPinned("doc", 0, 7))

	// Pinning again leaves the registry unchanged.
	_, ok = e.Pin("doc", 0, 7)
	require.True(t, ok)
	assert.Equal(t, []string{".a.b"}, e.Pins("doc"))

	_, ok = e.Unpin("doc", 0, 7)
	require.True(t, ok)
	assert.Empty(t, e.Pins("doc"))
}

func TestPin_CursorOutsideAnyKey(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":1}`)

	// Cursor on the root brace: no enclosing key, silent no-op.
	_, ok := e.Pin("doc", 0, 0)
	assert.False(t, ok)
	assert.Empty(t, e.Pins("doc"))
}

func TestPinPath_AndClear(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1}}`)

	require.True(t, e.PinPath("doc", ".a.b"))
	require.True(t, e.PinPath("doc", ".a.z"))
	assert.False(t, e.PinPath("doc", "not-a-path"))
	assert.Equal(t, []string{".a.b", ".a.z"}, e.Pins("doc"))

	e.ClearPins("doc")
	assert.Empty(t, e.Pins("doc"))
}

func TestRender_ArrayCountIndex(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1,"c":[1,2,3]}}`)

	count, ok := e.ArrayCount("doc", 0)
	require.True(t, ok)
	assert.Equal(t, 3, count)

	_, ok = e.ArrayCount("doc", 5)
	assert.False(t, ok)
}

func TestCountAnnotations_Threshold(t *testing.T) {
	t.Parallel()
	src := `{"a":{"b":1,"c":[1,2,3]}}`

	e := newTestEngine(t, src) // default threshold 10
	assert.Empty(t, e.CountAnnotations("doc"))

	cfg := DefaultConfig()
	cfg.ArrayCountThreshold = 2
	e = newTestEngine(t, src, WithConfig(cfg))
	assert.Equal(t, map[int]int{0: 3}, e.CountAnnotations("doc"))
}

func TestRender_PinIndicators(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1}}`)

	e.PinPath("doc", ".a.b")
	require.NoError(t, e.Render("doc"))

	indicators := e.PinIndicators("doc")
	require.Len(t, indicators, 1)
	assert.Equal(t, 0, indicators[0].StartRow)
	assert.Equal(t, 6, indicators[0].StartCol)
}

func TestComposeFoldSummary_ObjectWithPin(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1,"c":[1,2,3]}}`)
	e.PinPath("doc", ".a.b")

	s, err := e.ComposeFoldSummary("doc", 0, 5)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Len(t, s.Pins, 1)
	assert.Equal(t, "b", s.Pins[0].Path)
	assert.Equal(t, "1", s.Pins[0].Value)
	assert.Equal(t, "{ b: 1, … }", s.Text())
}

func TestComposeFoldSummary_PinAcrossArrayHidden(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1,"c":[1,2,3]}}`)
	e.PinPath("doc", ".a.c.[].x")

	s, err := e.ComposeFoldSummary("doc", 0, 5)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Empty(t, s.Pins)
	assert.Equal(t, "{…}", s.Text())
}

func TestComposeFoldSummary_Array(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1,"c":[1,2,3]}}`)

	s, err := e.ComposeFoldSummary("doc", 0, 16)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "[…] [3]", s.Text())
}

func TestComposeFoldSummary_UnopenedDocument(t *testing.T) {
	t.Parallel()
	e := New()
	_, err := e.ComposeFoldSummary("nope", 0, 0)
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestUnfoldTargets_ChainsSingleItemArrays(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `[[["x"]]]`)

	targets := e.UnfoldTargets("doc", 0, 0)
	require.Len(t, targets, 3, "three nested single-item arrays open in one action")
	assert.Equal(t, Range{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 9}, targets[0])
	assert.Equal(t, Range{StartRow: 0, StartCol: 2, EndRow: 0, EndCol: 7}, targets[2])
}

func TestUnfoldTargets_StopsAtDifferentCount(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `[[1,2]]`)

	targets := e.UnfoldTargets("doc", 0, 0)
	require.Len(t, targets, 2)
}

func TestUnfoldTargets_Disabled(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.UnfoldSingleItemArrays = false
	e := newTestEngine(t, `[[["x"]]]`, WithConfig(cfg))

	targets := e.UnfoldTargets("doc", 0, 0)
	require.Len(t, targets, 1)
}

func TestUpdate_StalePinStaysInert(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1}}`)
	e.PinPath("doc", ".a.b")

	require.NoError(t, e.Update(context.Background(), "doc", []byte(`{"a":{"z":2}}`)))
	require.NoError(t, e.Render("doc"))

	// The pin no longer resolves; it is skipped in summaries but kept in
	// the registry until explicitly unpinned.
	s, err := e.ComposeFoldSummary("doc", 0, 5)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Empty(t, s.Pins)
	assert.Equal(t, []string{".a.b"}, e.Pins("doc"))
}

func TestUpdate_InvalidatesCountIndex(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"c":[1,2,3]}`)

	require.NoError(t, e.Update(context.Background(), "doc", []byte(`{"c":[1]}`)))

	// Derived cache is absent until the next render.
	_, ok := e.ArrayCount("doc", 0)
	assert.False(t, ok)

	require.NoError(t, e.Render("doc"))
	count, ok := e.ArrayCount("doc", 0)
	require.True(t, ok)
	assert.Equal(t, 1, count)
}

func TestClose_DropsAllState(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, `{"a":{"b":1}}`)
	e.PinPath("doc", ".a.b")

	e.Close("doc")
	assert.Empty(t, e.Pins("doc"))
	require.ErrorIs(t, e.Render("doc"), ErrProviderUnavailable)
}

func TestYAMLDocument(t *testing.T) {
	t.Parallel()
	e := New()
	require.NoError(t, e.Open(context.Background(), "doc", "yaml",
		[]byte("a:\n  b: 1\n  c:\n    - 1\n    - 2\n")))
	require.NoError(t, e.Render("doc"))

	e.PinPath("doc", ".a.b")
	s, err := e.ComposeFoldSummary("doc", 1, 2)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Len(t, s.Pins, 1)
	assert.Equal(t, "b", s.Pins[0].Path)
	assert.Equal(t, "1", s.Pins[0].Value)
}
