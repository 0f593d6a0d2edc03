package archive

// ZstdCompressor offers the best ratio of the snapshot codecs and is the
// default for archived sessions. The implementation is selected at build
// time: the cgo-backed gozstd bindings when cgo is available, otherwise the
// pure Go klauspost encoder.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
