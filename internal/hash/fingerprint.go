// Package hash provides 64-bit fingerprints for calibration datasets.
//
// Fingerprints are used to detect staleness of cached regression results:
// a cached result is only served while the fingerprint of the point set and
// model selection it was computed from still matches the current inputs.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Series computes the xxHash64 fingerprint of one or more float64 series.
// The series are hashed in order, each value as its IEEE-754 bit pattern,
// with a length separator between series so that ([1,2],[3]) and ([1],[2,3])
// fingerprint differently.
func Series(series ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, s := range series {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		for _, v := range s {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}

// Mix folds additional discriminator values (model type identifiers and the
// like) into an existing fingerprint.
func Mix(fp uint64, extra ...uint64) uint64 {
	var buf [8]byte
	d := xxhash.New()
	binary.LittleEndian.PutUint64(buf[:], fp)
	_, _ = d.Write(buf[:])
	for _, v := range extra {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// ID computes the xxHash64 of a string identifier.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
