package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadBits(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b101, 3)
	w.WriteBits(0xFF, 8)
	w.WriteBits(0, 5)
	w.WriteBits(0xABCDE, 20)
	w.WriteBit(1)

	r := NewReader(w.Bytes())

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	assert.EqualValues(t, 0b101, v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	assert.EqualValues(t, 0xFF, v)

	v, err = r.ReadBits(5)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)

	v, err = r.ReadBits(20)
	require.NoError(t, err)
	assert.EqualValues(t, 0xABCDE, v)

	v, err = r.ReadBit()
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
}

func TestPadding(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b1, 1)
	out := w.Bytes()
	require.Len(t, out, 1)
	assert.EqualValues(t, 0b10000000, out[0], "final byte is zero-padded, MSB-first")

	// Bytes must not disturb the cursor.
	w.WriteBits(0b1, 1)
	out = w.Bytes()
	require.Len(t, out, 1)
	assert.EqualValues(t, 0b11000000, out[0])
}

func TestLen(t *testing.T) {
	w := NewWriter()
	assert.Equal(t, 0, w.Len())
	w.WriteBits(0, 11)
	assert.Equal(t, 11, w.Len())
	assert.Len(t, w.Bytes(), 2)
}

func TestGammaRoundTrip(t *testing.T) {
	w := NewWriter()
	for n := uint64(1); n <= 1000; n++ {
		w.WriteGamma(n)
	}
	r := NewReader(w.Bytes())
	for n := uint64(1); n <= 1000; n++ {
		v, err := r.ReadGamma()
		require.NoError(t, err)
		assert.Equal(t, n, v)
	}
}

func TestGammaSingleBit(t *testing.T) {
	// gamma(1) is the single bit 1, the cheapest possible count.
	w := NewWriter()
	w.WriteGamma(1)
	assert.Equal(t, 1, w.Len())
}

func TestReadOutOfBits(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadBits(8)
	require.NoError(t, err)
	_, err = r.ReadBit()
	assert.ErrorIs(t, err, ErrOutOfBits)

	r = NewReader([]byte{0xFF})
	_, err = r.ReadBits(9)
	assert.ErrorIs(t, err, ErrOutOfBits)
}

func TestReadGammaTruncated(t *testing.T) {
	// All-zero stream never terminates the zero run within the buffer.
	r := NewReader([]byte{0x00})
	_, err := r.ReadGamma()
	assert.ErrorIs(t, err, ErrOutOfBits)
}

func TestReadGammaOverflow(t *testing.T) {
	// 40 zero bits exceed the 32-bit cap before the run ends.
	r := NewReader([]byte{0, 0, 0, 0, 0, 0x01})
	_, err := r.ReadGamma()
	assert.ErrorIs(t, err, ErrGammaOverflow)
}

func TestRemaining(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB})
	assert.Equal(t, 16, r.Remaining())
	_, err := r.ReadBits(3)
	require.NoError(t, err)
	assert.Equal(t, 13, r.Remaining())
}
