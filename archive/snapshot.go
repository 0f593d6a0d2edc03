package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/calibration"
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/internal/pool"
)

// snapshotMagic is the 4-byte file signature of an encoded snapshot.
var snapshotMagic = [4]byte{'V', 'A', 'L', '1'}

// headerSize is magic plus the compression identifier byte.
const headerSize = 5

var (
	// ErrBadMagic is returned when a blob does not start with the snapshot
	// signature.
	ErrBadMagic = errors.New("archive: not a snapshot blob")
	// ErrTruncated is returned when a blob is shorter than the header.
	ErrTruncated = errors.New("archive: truncated snapshot blob")
)

// Snapshot is a self-contained record of one calibration session.
type Snapshot struct {
	// Name labels the session, e.g. a certificate number.
	Name string `json:"name"`
	// CreatedAt is the encoding timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// Instrument describes the device under test.
	Instrument calibration.Instrument `json:"instrument"`
	// Environment is the ambient record entered for the session.
	Environment calibration.Environment `json:"environment"`
	// StandardName identifies the reference standard.
	StandardName string `json:"standardName"`
	// StandardPoints is the standard's certificate record set.
	StandardPoints []calibration.StandardPoint `json:"standardPoints"`
	// ValueModel and UncertaintyModel are the canonical model identifiers
	// the session was fitted with.
	ValueModel       string `json:"valueModel"`
	UncertaintyModel string `json:"uncertaintyModel"`
	// Points are the session's measured points.
	Points []calibration.Point `json:"points"`
	// Results are the computed outcomes, one per point, possibly empty
	// when the session was archived before computation.
	Results []calibration.Result `json:"results,omitempty"`
}

// Encode serializes the snapshot into a framed blob: the 4-byte magic, one
// compression identifier byte, then the JSON body passed through the
// selected codec.
//
// Parameters:
//   - snap: the session snapshot to serialize.
//   - compression: codec for the body.
//
// Returns:
//   - []byte: newly allocated blob owned by the caller.
//   - error: unknown compression type, or a codec failure.
func Encode(snap *Snapshot, compression CompressionType) ([]byte, error) {
	codec, err := CreateCodec(compression)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("archive: encode snapshot body: %w", err)
	}

	compressed, err := codec.Compress(body)
	if err != nil {
		return nil, fmt.Errorf("archive: compress snapshot body: %w", err)
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	_, _ = buf.Write(snapshotMagic[:])
	_, _ = buf.Write([]byte{byte(compression)})
	_, _ = buf.Write(compressed)

	blob := make([]byte, buf.Len())
	copy(blob, buf.Bytes())

	return blob, nil
}

// Decode parses a framed snapshot blob produced by Encode.
//
// Returns:
//   - *Snapshot: the decoded session.
//   - error: ErrTruncated, ErrBadMagic, an unknown compression identifier,
//     or a codec/JSON failure.
func Decode(data []byte) (*Snapshot, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if [4]byte(data[:4]) != snapshotMagic {
		return nil, ErrBadMagic
	}

	compression := CompressionType(data[4])
	codec, err := CreateCodec(compression)
	if err != nil {
		return nil, err
	}

	body, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("archive: decompress snapshot body: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("archive: decode snapshot body: %w", err)
	}

	return &snap, nil
}
