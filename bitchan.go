package huffpack

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// BitWriter appends bits and 32-bit words to a growing byte buffer.  Bits
// are packed most significant bit first within each byte, and words are
// written big-endian.
type BitWriter struct {
	buf   bytes.Buffer
	w     *bitio.Writer
	nbits uint64
}

// NewBitWriter returns an empty BitWriter.
func NewBitWriter() *BitWriter {
	bw := &BitWriter{}
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// WriteBit appends a single bit.
func (bw *BitWriter) WriteBit(bit bool) error {
	if err := bw.w.WriteBool(bit); err != nil {
		return err
	}
	bw.nbits++
	return nil
}

// WriteCode appends the bits of hc, first bit first.
func (bw *BitWriter) WriteCode(hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	if err := bw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	bw.nbits += uint64(hc.Size)
	return nil
}

// WriteU32 appends a 32-bit word.
func (bw *BitWriter) WriteU32(value uint32) error {
	if err := bw.w.WriteBits(uint64(value), 32); err != nil {
		return err
	}
	bw.nbits += 32
	return nil
}

// Align pads the current byte with zero bits, so that the next write starts
// on a byte boundary.  It is a no-op if already aligned.
func (bw *BitWriter) Align() error {
	skipped, err := bw.w.Align()
	if err != nil {
		return err
	}
	bw.nbits += uint64(skipped)
	return nil
}

// BitLen returns the number of bits written so far, including padding.
func (bw *BitWriter) BitLen() uint64 {
	return bw.nbits
}

// Len returns the number of bytes written so far.  A partially filled
// final byte counts as a whole byte.
func (bw *BitWriter) Len() int {
	return int((bw.nbits + 7) / 8)
}

// Bytes pads the final byte, if needed, and returns the written bytes.  The
// BitWriter must not be used afterward.
func (bw *BitWriter) Bytes() ([]byte, error) {
	if err := bw.Align(); err != nil {
		return nil, err
	}
	if err := bw.w.Close(); err != nil {
		return nil, err
	}
	return bw.buf.Bytes(), nil
}

// BitReader consumes bits and 32-bit words from a byte slice, in the same
// order and layout that BitWriter produces them.
//
// Every read that would run past the end of the data fails with an error
// wrapping ErrCorrupt.
//
type BitReader struct {
	r     *bitio.Reader
	nbits uint64
	total uint64
}

// NewBitReader returns a BitReader positioned at the start of data.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{
		r:     bitio.NewReader(bytes.NewReader(data)),
		total: uint64(len(data)) * 8,
	}
}

func (br *BitReader) need(n uint64, what string) error {
	if br.total-br.nbits < n {
		return fmt.Errorf("%w: need %d bits for %s at bit offset %d, have %d", ErrCorrupt, n, what, br.nbits, br.total-br.nbits)
	}
	return nil
}

// ReadBit consumes a single bit.
func (br *BitReader) ReadBit() (bool, error) {
	if err := br.need(1, "bit"); err != nil {
		return false, err
	}
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	br.nbits++
	return bit, nil
}

// ReadU32 consumes a 32-bit word.
func (br *BitReader) ReadU32() (uint32, error) {
	if err := br.need(32, "word"); err != nil {
		return 0, err
	}
	value, err := br.r.ReadBits(32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	br.nbits += 32
	return uint32(value), nil
}

// Align skips the rest of the current byte, so that the next read starts on
// a byte boundary.  It is a no-op if already aligned.
func (br *BitReader) Align() {
	br.nbits += uint64(br.r.Align())
}

// Offset returns the number of bits consumed so far.
func (br *BitReader) Offset() uint64 {
	return br.nbits
}

// Len returns the number of whole bytes that remain unread.
func (br *BitReader) Len() int {
	return int((br.total - br.nbits) / 8)
}
