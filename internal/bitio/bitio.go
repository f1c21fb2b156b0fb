// Package bitio provides the bit cursor used by the table-free annotation
// codec: an append-only bit writer and a sequential bit reader, both
// MSB-first within each byte. Counts use Elias gamma codes so that a group
// of one annotation costs a single bit.
package bitio

import (
	"errors"
	"math/bits"
)

var (
	// ErrOutOfBits is returned when a read runs past the end of the stream.
	ErrOutOfBits = errors.New("read past end of bit stream")
	// ErrGammaOverflow is returned when a gamma code declares a value wider
	// than 32 bits. Well-formed streams never produce one.
	ErrGammaOverflow = errors.New("gamma code out of range")
)

// Writer accumulates bits MSB-first. The zero value is ready to use.
type Writer struct {
	buf  []byte
	cur  byte
	nbit uint8
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits appends the n low-order bits of v, most significant first.
// n must be at most 64.
func (w *Writer) WriteBits(v uint64, n uint8) {
	for i := int(n) - 1; i >= 0; i-- {
		w.cur = w.cur<<1 | byte(v>>uint(i)&1)
		w.nbit++
		if w.nbit == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur, w.nbit = 0, 0
		}
	}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(b uint8) {
	w.WriteBits(uint64(b), 1)
}

// WriteGamma appends the Elias gamma code of n, which must be >= 1:
// floor(log2(n)) zero bits followed by the binary form of n.
func (w *Writer) WriteGamma(n uint64) {
	k := uint8(bits.Len64(n)) - 1
	w.WriteBits(0, k)
	w.WriteBits(n, k+1)
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return len(w.buf)*8 + int(w.nbit)
}

// Bytes returns the written stream with the final byte zero-padded.
// The Writer remains usable; later writes continue from the unpadded
// position.
func (w *Writer) Bytes() []byte {
	if w.nbit == 0 {
		return w.buf
	}
	out := make([]byte, len(w.buf)+1)
	copy(out, w.buf)
	out[len(w.buf)] = w.cur << (8 - w.nbit)
	return out
}

// Reader consumes bits MSB-first from a byte slice.
type Reader struct {
	buf []byte
	pos int   // next byte
	bit uint8 // bits consumed from buf[pos]
}

// NewReader returns a Reader over buf. The Reader does not copy buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return (len(r.buf)-r.pos)*8 - int(r.bit)
}

// ReadBits reads the next n bits as an unsigned integer, most significant
// first. It fails with ErrOutOfBits if fewer than n bits remain.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	if int(n) > r.Remaining() {
		return 0, ErrOutOfBits
	}
	var v uint64
	for i := uint8(0); i < n; i++ {
		v = v<<1 | uint64(r.buf[r.pos]>>(7-r.bit)&1)
		r.bit++
		if r.bit == 8 {
			r.pos++
			r.bit = 0
		}
	}
	return v, nil
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (uint64, error) {
	return r.ReadBits(1)
}

// ReadGamma reads an Elias gamma code written by WriteGamma.
func (r *Reader) ReadGamma() (uint64, error) {
	var k uint8
	for {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if b == 1 {
			break
		}
		k++
		if k > 32 {
			return 0, ErrGammaOverflow
		}
	}
	rest, err := r.ReadBits(k)
	if err != nil {
		return 0, err
	}
	return 1<<k | rest, nil
}
