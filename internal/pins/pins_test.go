package pins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPin_AppendsInOrder(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	assert.True(t, r.Pin("doc", ".a.b"))
	assert.True(t, r.Pin("doc", ".a.c"))
	assert.True(t, r.Pin("doc", ".z"))

	assert.Equal(t, []string{".a.b", ".a.c", ".z"}, r.List("doc"))
}

func TestPin_DuplicateIsNoOp(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	require.True(t, r.Pin("doc", ".a.b"))
	assert.False(t, r.Pin("doc", ".a.b"))
	assert.Len(t, r.List("doc"), 1)
}

func TestUnpin_RemovesExactlyOne(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Pin("doc", ".a")
	r.Pin("doc", ".b")
	r.Pin("doc", ".c")

	assert.True(t, r.Unpin("doc", ".b"))
	assert.Equal(t, []string{".a", ".c"}, r.List("doc"))

	assert.False(t, r.Unpin("doc", ".missing"))
	assert.Len(t, r.List("doc"), 2)
}

func TestIsPinned(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Pin("doc", ".a.b")

	assert.True(t, r.IsPinned("doc", ".a.b"))
	assert.False(t, r.IsPinned("doc", ".a"))
	assert.False(t, r.IsPinned("other", ".a.b"))
}

func TestClear(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Pin("doc", ".a")
	r.Pin("other", ".b")

	r.Clear("doc")
	assert.Empty(t, r.List("doc"))
	assert.Equal(t, []string{".b"}, r.List("other"), "clear is per document")
}

func TestList_ReturnsCopy(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Pin("doc", ".a")

	got := r.List("doc")
	got[0] = ".mutated"
	assert.Equal(t, []string{".a"}, r.List("doc"))
}
