package facodec

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hupe1980/facodec/blobstore"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Dictionary snapshots let the encode-side and decode-side processes share
// the identical table: codes are token positions, so the snapshot of a
// given corpus is bit-identical across runs.

const (
	// SnapshotMagic identifies dictionary snapshot files (ASCII "FAD1").
	SnapshotMagic = 0x46414431
	// SnapshotVersion is the current snapshot format version.
	SnapshotVersion = 1

	// maxSnapshotSize bounds the header-declared payload sizes, so a
	// corrupt header cannot drive a multi-gigabyte allocation before the
	// checksum is ever verified.
	maxSnapshotSize = 1 << 30
)

// CompressionType selects the snapshot payload compression.
type CompressionType uint8

const (
	// CompressionNone stores the token payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fastest).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (best ratio, default).
	CompressionZSTD CompressionType = 2
)

// snapshotHeader is the fixed 28-byte header of a snapshot, little-endian.
// The checksum covers the uncompressed token payload.
type snapshotHeader struct {
	Magic            uint32
	Version          uint32
	Compression      uint8
	Padding          [3]byte
	TokenCount       uint32
	UncompressedSize uint32
	PayloadSize      uint32
	Checksum         uint32
}

// Save writes the dictionary as a snapshot: the header above followed by
// the uvarint-length-prefixed tokens in code order, compressed per the
// WithCompression option.
func (d *Dictionary) Save(w io.Writer, optFns ...SnapshotOption) error {
	opts := applySnapshotOptions(optFns)

	var payload []byte
	for _, t := range d.tokens {
		payload = binary.AppendUvarint(payload, uint64(len(t)))
		payload = append(payload, t...)
	}

	compressed, ctype, err := compressPayload(payload, opts.compression)
	if err != nil {
		return err
	}

	hdr := snapshotHeader{
		Magic:            SnapshotMagic,
		Version:          SnapshotVersion,
		Compression:      uint8(ctype),
		TokenCount:       uint32(len(d.tokens)),
		UncompressedSize: uint32(len(payload)),
		PayloadSize:      uint32(len(compressed)),
		Checksum:         crc32.ChecksumIEEE(payload),
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if _, err := bw.Write(compressed); err != nil {
		return err
	}
	return bw.Flush()
}

// LoadDictionary reads a snapshot written by Save and publishes a fresh
// immutable Dictionary. Structural damage of any kind (bad magic,
// unsupported version, short reads, checksum mismatch, duplicate tokens)
// fails with ErrInvalidSnapshot.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidSnapshot, err)
	}
	if hdr.Magic != SnapshotMagic {
		return nil, fmt.Errorf("%w: bad magic 0x%08x", ErrInvalidSnapshot, hdr.Magic)
	}
	if hdr.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, hdr.Version)
	}
	if hdr.TokenCount > MaxDictionarySize {
		return nil, fmt.Errorf("%w: token count %d", ErrInvalidSnapshot, hdr.TokenCount)
	}

	if hdr.PayloadSize > maxSnapshotSize || hdr.UncompressedSize > maxSnapshotSize {
		return nil, fmt.Errorf("%w: declared payload size %d/%d", ErrInvalidSnapshot, hdr.PayloadSize, hdr.UncompressedSize)
	}

	// Grow the buffer as bytes arrive rather than trusting PayloadSize
	// with an up-front allocation.
	var payloadBuf bytes.Buffer
	n, err := io.Copy(&payloadBuf, io.LimitReader(r, int64(hdr.PayloadSize)))
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrInvalidSnapshot, err)
	}
	if n != int64(hdr.PayloadSize) {
		return nil, fmt.Errorf("%w: payload: %d of %d bytes", ErrInvalidSnapshot, n, hdr.PayloadSize)
	}
	compressed := payloadBuf.Bytes()

	payload, err := decompressPayload(compressed, CompressionType(hdr.Compression), hdr.UncompressedSize)
	if err != nil {
		return nil, err
	}
	if sum := crc32.ChecksumIEEE(payload); sum != hdr.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch: expected 0x%08x, got 0x%08x", ErrInvalidSnapshot, hdr.Checksum, sum)
	}

	tokens := make([]string, hdr.TokenCount)
	codes := make(map[string]uint32, hdr.TokenCount)
	off := 0
	for i := range tokens {
		l, n := binary.Uvarint(payload[off:])
		if n <= 0 || uint64(len(payload)-off-n) < l {
			return nil, fmt.Errorf("%w: token %d out of bounds", ErrInvalidSnapshot, i)
		}
		off += n
		token := string(payload[off : off+int(l)])
		off += int(l)

		if _, dup := codes[token]; dup {
			return nil, fmt.Errorf("%w: duplicate token %q", ErrInvalidSnapshot, token)
		}
		tokens[i] = token
		codes[token] = uint32(i)
	}
	if off != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", ErrInvalidSnapshot, len(payload)-off)
	}

	return &Dictionary{tokens: tokens, codes: codes}, nil
}

// SaveToStore writes the snapshot as a single blob.
func (d *Dictionary) SaveToStore(ctx context.Context, store blobstore.Store, name string, optFns ...SnapshotOption) error {
	var buf bytes.Buffer
	if err := d.Save(&buf, optFns...); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// LoadFromStore reads a snapshot blob written by SaveToStore.
func LoadFromStore(ctx context.Context, store blobstore.Store, name string) (*Dictionary, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return LoadDictionary(bytes.NewReader(data))
}

// compressPayload compresses per ctype. If compression does not shrink the
// payload the uncompressed form is stored instead, mirrored by the
// compression byte in the header.
func compressPayload(payload []byte, ctype CompressionType) ([]byte, CompressionType, error) {
	switch ctype {
	case CompressionNone:
		return payload, CompressionNone, nil

	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, dst, nil)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 || n >= len(payload) { // incompressible
			return payload, CompressionNone, nil
		}
		return dst[:n], CompressionLZ4, nil

	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, 0, err
		}
		defer enc.Close()
		dst := enc.EncodeAll(payload, nil)
		if len(dst) >= len(payload) {
			return payload, CompressionNone, nil
		}
		return dst, CompressionZSTD, nil

	default:
		return nil, 0, fmt.Errorf("unsupported compression type: %d", ctype)
	}
}

func decompressPayload(compressed []byte, ctype CompressionType, uncompressedSize uint32) ([]byte, error) {
	switch ctype {
	case CompressionNone:
		if uint32(len(compressed)) != uncompressedSize {
			return nil, fmt.Errorf("%w: payload size mismatch", ErrInvalidSnapshot)
		}
		return compressed, nil

	case CompressionLZ4:
		dst := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(compressed, dst)
		if err != nil || uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("%w: lz4 payload: %v", ErrInvalidSnapshot, err)
		}
		return dst, nil

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		dst, err := dec.DecodeAll(compressed, make([]byte, 0, uncompressedSize))
		if err != nil || uint32(len(dst)) != uncompressedSize {
			return nil, fmt.Errorf("%w: zstd payload: %v", ErrInvalidSnapshot, err)
		}
		return dst, nil

	default:
		return nil, fmt.Errorf("%w: unsupported compression type %d", ErrInvalidSnapshot, ctype)
	}
}
