package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/calibration"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Name:      "CERT-2026-0117",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Instrument: calibration.Instrument{
			Resolution:    0.01,
			Tolerance:     0.1,
			Unit:          "mbar",
			PascalPerUnit: 100,
		},
		Environment: calibration.Environment{
			TemperatureC: 21.3,
			PressureHPa:  1009.4,
			HumidityPct:  44,
			LatitudeDeg:  48.1,
			AltitudeM:    310,
			Medium:       calibration.FluidWater,
			HeightDiffM:  0.25,
		},
		StandardName: "REF-0042",
		StandardPoints: []calibration.StandardPoint{
			{Nominal: 0, Indication: 0.01, ReferenceValue: 0, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 100, Indication: 100.02, ReferenceValue: 100, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 200, Indication: 200.05, ReferenceValue: 200, Uncertainty: 0.03, CoverageFactor: 2},
		},
		ValueModel:       "linear_pearson",
		UncertaintyModel: "linear_pearson",
		Points: []calibration.Point{
			{Nominal: 100, StandardReading: 100.02, Runs: [4]float64{100.03, 100.01, 100.03, 100.02}, RunCount: 4},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	types := []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			snap := testSnapshot()

			blob, err := Encode(snap, ct)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(blob), headerSize)
			require.Equal(t, snapshotMagic[:], blob[:4])
			require.Equal(t, byte(ct), blob[4])

			decoded, err := Decode(blob)
			require.NoError(t, err)
			require.Equal(t, snap, decoded)
		})
	}
}

func TestDecodeRejectsMalformedBlobs(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		_, err := Decode([]byte{'V', 'A'})
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("bad magic", func(t *testing.T) {
		_, err := Decode([]byte{'N', 'O', 'P', 'E', byte(CompressionNone), '{', '}'})
		require.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("unknown compression", func(t *testing.T) {
		_, err := Decode([]byte{'V', 'A', 'L', '1', 0x7f, 0, 0})
		require.Error(t, err)
	})

	t.Run("corrupted body", func(t *testing.T) {
		blob, err := Encode(testSnapshot(), CompressionZstd)
		require.NoError(t, err)
		blob[len(blob)-1] ^= 0xff
		_, err = Decode(blob)
		require.Error(t, err)
	})
}

func TestEncodeRejectsUnknownCompression(t *testing.T) {
	_, err := Encode(testSnapshot(), CompressionType(0x7f))
	require.Error(t, err)
}

func TestCompressionTypeStrings(t *testing.T) {
	require.Equal(t, "none", CompressionNone.String())
	require.Equal(t, "zstd", CompressionZstd.String())
	require.Equal(t, "s2", CompressionS2.String())
	require.Equal(t, "lz4", CompressionLZ4.String())
	require.False(t, CompressionType(0).IsValid())
	require.True(t, CompressionLZ4.IsValid())
}
