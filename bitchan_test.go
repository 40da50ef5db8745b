package huffpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitWriter(t *testing.T) {
	bw := NewBitWriter()
	require.NoError(t, bw.WriteU32(0x01020304))
	require.NoError(t, bw.WriteBit(true))
	require.NoError(t, bw.WriteBit(false))
	require.NoError(t, bw.WriteBit(true))
	assert.Equal(t, uint64(35), bw.BitLen())
	assert.Equal(t, 5, bw.Len())

	require.NoError(t, bw.Align())
	assert.Equal(t, uint64(40), bw.BitLen())
	require.NoError(t, bw.Align())
	assert.Equal(t, uint64(40), bw.BitLen())

	require.NoError(t, bw.WriteCode(MakeCode(10, 0x3ff)))
	require.NoError(t, bw.WriteCode(Code{}))

	raw, err := bw.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0xa0, 0xff, 0xc0}, raw)
}

func TestBitReader(t *testing.T) {
	br := NewBitReader([]byte{0x01, 0x02, 0x03, 0x04, 0xa0, 0xff, 0xc0})
	assert.Equal(t, 7, br.Len())

	word, err := br.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), word)

	for _, expect := range []bool{true, false, true} {
		bit, err := br.ReadBit()
		require.NoError(t, err)
		assert.Equal(t, expect, bit)
	}
	assert.Equal(t, uint64(35), br.Offset())

	br.Align()
	assert.Equal(t, uint64(40), br.Offset())
	assert.Equal(t, 2, br.Len())

	for i := 0; i < 10; i++ {
		bit, err := br.ReadBit()
		require.NoError(t, err)
		assert.True(t, bit)
	}
	br.Align()
	assert.Equal(t, 0, br.Len())

	_, err = br.ReadBit()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestBitReader_Short(t *testing.T) {
	br := NewBitReader([]byte{0x00, 0x00, 0x07})
	_, err := br.ReadU32()
	assert.ErrorIs(t, err, ErrCorrupt)

	br = NewBitReader(nil)
	_, err = br.ReadBit()
	assert.ErrorIs(t, err, ErrCorrupt)
}
