package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex_FindNext(t *testing.T) {
	data := []byte{0x00, 0x50, 0x4b, 0x01, 0x50, 0x4b, 0x02, 0x50, 0x4b}
	ix := New(data, []byte{0x50, 0x4b})

	off, ok := ix.FindNext(0)
	require.True(t, ok)
	require.Equal(t, 1, off)

	off, ok = ix.FindNext(off + 1)
	require.True(t, ok)
	require.Equal(t, 4, off)

	off, ok = ix.FindNext(off + 1)
	require.True(t, ok)
	require.Equal(t, 7, off)

	_, ok = ix.FindNext(off + 1)
	require.False(t, ok)
}

func TestIndex_StartClamping(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0xaa}
	ix := New(data, []byte{0xaa})

	off, ok := ix.FindNext(-5)
	require.True(t, ok)
	require.Equal(t, 0, off)
}

func TestIndex_SignatureLongerThanRemaining(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	// Longer than the whole buffer: no match, not an error.
	ix := New(data, []byte{0x01, 0x02, 0x03, 0x04})
	_, ok := ix.FindNext(0)
	require.False(t, ok)

	// Longer than the remaining tail.
	ix = New(data, []byte{0x02, 0x03})
	_, ok = ix.FindNext(2)
	require.False(t, ok)
}

func TestIndex_OverlappingOccurrences(t *testing.T) {
	data := []byte{0xaa, 0xaa, 0xaa}
	ix := New(data, []byte{0xaa, 0xaa})

	off, ok := ix.FindNext(0)
	require.True(t, ok)
	require.Equal(t, 0, off)

	off, ok = ix.FindNext(1)
	require.True(t, ok)
	require.Equal(t, 1, off)

	_, ok = ix.FindNext(2)
	require.False(t, ok)
}

func TestIndex_EmptySignature(t *testing.T) {
	ix := New([]byte{0x01}, nil)
	_, ok := ix.FindNext(0)
	require.False(t, ok)
	require.Equal(t, 0, ix.SigLen())
}
