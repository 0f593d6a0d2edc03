package calibration

import (
	"errors"
	"sort"
	"sync/atomic"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/internal/hash"
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/regression"
)

// ErrNoPoints is returned when a standard has no calibration records to fit.
var ErrNoPoints = errors.New("calibration: standard has no points")

// Standard is a reference standard together with its calibration
// certificate and the cached regressions derived from it.
//
// The cache is replaced atomically and keyed by a fingerprint of the point
// set and model selection, so a stale result is never served after the
// points or the requested models change. Reads and refits may race freely;
// the loser of a concurrent refit simply recomputes.
type Standard struct {
	// Name identifies the standard, e.g. its inventory number.
	Name string
	// Points is the certificate record set. Order is irrelevant to
	// fitting; SortedPoints returns a display ordering.
	Points []StandardPoint

	cache atomic.Pointer[fittedModels]
}

// fittedModels is one immutable cache generation.
type fittedModels struct {
	fingerprint uint64
	value       *regression.Result
	uncertainty *regression.Result
}

// SortedPoints returns the certificate records ordered by indication.
// The receiver's slice is not modified.
func (s *Standard) SortedPoints() []StandardPoint {
	pts := make([]StandardPoint, len(s.Points))
	copy(pts, s.Points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Indication < pts[j].Indication })

	return pts
}

// fingerprint hashes the current point set and the full model selection:
// the two top-level families plus the semantic fit options (sub-family
// choices, validation toggles) packed by regression.OptionFingerprint.
func (s *Standard) fingerprint(valueModel, uncModel regression.ModelType, optKey uint64) uint64 {
	n := len(s.Points)
	indications := make([]float64, n)
	references := make([]float64, n)
	uncertainties := make([]float64, n)
	for i, p := range s.Points {
		indications[i] = p.Indication
		references[i] = p.ReferenceValue
		uncertainties[i] = p.Uncertainty
	}

	fp := hash.Series(indications, references, uncertainties)

	return hash.Mix(fp, hash.ID(s.Name), uint64(valueModel), uint64(uncModel), optKey)
}

// Fit computes the standard's value and uncertainty regressions, caching
// both until the point set, the model selection, or the fit options change.
//
// The value regression maps an indication to the certificate's reference
// value; the uncertainty regression maps an indication to the certificate's
// expanded uncertainty. Degenerate data does not fail the call: the
// returned results carry an INVALID quality verdict instead.
//
// Parameters:
//   - valueModel: model family for the indication → reference value fit.
//   - uncModel: model family for the indication → uncertainty fit.
//   - opts: fit options applied to both regressions.
//
// Returns:
//   - *regression.Result: the value regression.
//   - *regression.Result: the uncertainty regression.
//   - error: ErrNoPoints when the standard has no records, or a fit
//     precondition violation.
func (s *Standard) Fit(valueModel, uncModel regression.ModelType, opts ...regression.FitOption) (*regression.Result, *regression.Result, error) {
	if len(s.Points) == 0 {
		return nil, nil, ErrNoPoints
	}

	optKey, err := regression.OptionFingerprint(opts...)
	if err != nil {
		return nil, nil, err
	}

	fp := s.fingerprint(valueModel, uncModel, optKey)
	if cached := s.cache.Load(); cached != nil && cached.fingerprint == fp {
		return cached.value, cached.uncertainty, nil
	}

	n := len(s.Points)
	indications := make([]float64, n)
	references := make([]float64, n)
	uncertainties := make([]float64, n)
	for i, p := range s.Points {
		indications[i] = p.Indication
		references[i] = p.ReferenceValue
		uncertainties[i] = p.Uncertainty
	}

	value, err := regression.Fit(indications, references, valueModel, opts...)
	if err != nil {
		return nil, nil, err
	}
	uncertainty, err := regression.Fit(indications, uncertainties, uncModel, opts...)
	if err != nil {
		return nil, nil, err
	}

	s.cache.Store(&fittedModels{fingerprint: fp, value: value, uncertainty: uncertainty})

	return value, uncertainty, nil
}

// Models returns the cached regressions, or nil pointers when Fit has not
// run since the last change.
func (s *Standard) Models() (value, uncertainty *regression.Result) {
	cached := s.cache.Load()
	if cached == nil {
		return nil, nil
	}

	return cached.value, cached.uncertainty
}

// Invalidate drops the cached regressions. Callers normally do not need
// this: Fit detects changed points by fingerprint on its own.
func (s *Standard) Invalidate() {
	s.cache.Store(nil)
}
