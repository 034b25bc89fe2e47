package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression algorithm.
type Compression uint8

const (
	// None stores the payload uncompressed.
	None Compression = 0
	// LZ4 uses LZ4 block compression.
	LZ4 Compression = 1
	// ZSTD uses Zstandard compression.
	ZSTD Compression = 2
)

// String returns the algorithm name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// HeaderSize is the size of the block header in bytes.
const HeaderSize = 9

var (
	// ErrUnknownCompression is returned for an unsupported algorithm.
	ErrUnknownCompression = errors.New("codec: unknown compression")
	// ErrCorrupt is returned when a block cannot be decoded.
	ErrCorrupt = errors.New("codec: corrupt block")
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compress encodes data into a block using c.
// If compression does not shrink data by at least 10% the block stores it raw.
func Compress(data []byte, c Compression) ([]byte, error) {
	raw, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("codec: payload too large: %w", err)
	}

	var packed []byte
	switch c {
	case None:
	case LZ4:
		packed, err = compressLZ4(data)
	case ZSTD:
		packed, err = compressZSTD(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
	if err != nil {
		return nil, err
	}

	if len(packed) == 0 || float64(len(packed)) > float64(len(data))*0.9 {
		return frame(None, raw, 0, data), nil
	}
	// len(packed) < len(data) here, so it fits uint32.
	return frame(c, raw, uint32(len(packed)), packed), nil
}

// Decompress decodes a block produced by Compress.
func Decompress(block []byte) ([]byte, error) {
	if len(block) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(block))
	}

	c := Compression(block[0])
	raw := binary.LittleEndian.Uint32(block[1:])
	packed := binary.LittleEndian.Uint32(block[5:])
	payload := block[HeaderSize:]

	if packed == 0 {
		if uint64(len(payload)) < uint64(raw) {
			return nil, fmt.Errorf("%w: stored payload truncated", ErrCorrupt)
		}
		out := make([]byte, raw)
		copy(out, payload)
		return out, nil
	}

	if uint64(len(payload)) < uint64(packed) {
		return nil, fmt.Errorf("%w: compressed payload truncated", ErrCorrupt)
	}
	payload = payload[:packed]
	out := make([]byte, raw)

	switch c {
	case LZ4:
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(n) != raw {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, nil

	case ZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(payload, out[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != raw {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}

func frame(c Compression, raw, packed uint32, payload []byte) []byte {
	out := make([]byte, HeaderSize+len(payload))
	out[0] = byte(c)
	binary.LittleEndian.PutUint32(out[1:], raw)
	binary.LittleEndian.PutUint32(out[5:], packed)
	copy(out[HeaderSize:], payload)
	return out
}

func compressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return dst[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}
