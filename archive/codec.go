package archive

import "fmt"

// CompressionType identifies the codec used for a snapshot body.
type CompressionType uint8

const (
	// CompressionNone stores the body uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd uses Zstandard, best ratio for archived sessions.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 uses S2, fastest round trip.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 uses LZ4 block compression.
	CompressionLZ4 CompressionType = 0x4
)

// IsValid reports whether the value names a known codec.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

// String returns the codec name.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(c))
	}
}

// Compressor compresses a snapshot body.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot body.
//
// Implementations validate the input format and return an error when the
// data is corrupted or was produced by a different codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions, usually with shared internal state.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a Codec for the given compression type.
//
// Parameters:
//   - compressionType: one of None, Zstd, S2 or LZ4.
//
// Returns:
//   - Codec: codec instance for the type.
//   - error: unknown compression type.
func CreateCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}
