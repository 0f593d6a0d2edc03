package archive

import "github.com/klauspost/compress/s2"

// S2Compressor is the fastest of the snapshot codecs; the ratio on JSON
// session bodies is still typically better than 2:1.
//
// Snapshot bodies are a few KiB and are compressed once per archival, so
// the encoder uses the better-ratio mode rather than the fastest one; the
// speed difference is invisible at these sizes.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 in better-ratio mode.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress restores S2-compressed data.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
