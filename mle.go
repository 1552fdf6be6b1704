// MIT License
//
// Copyright (c) 2025 David L Kinney <david@pinkhop.com> <david@kinney.io>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package evt

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/optimize"
)

const (
	// shapeTolerance is the |γ| below which the GEV and GPD densities are
	// evaluated through their γ → 0 limits (Gumbel and exponential).
	shapeTolerance = 1e-8

	// initialSimplexSize is the edge length of the initial Nelder-Mead simplex
	// in the standardized coordinates of the likelihood problems.
	initialSimplexSize = 0.05

	// convergenceTolerance and convergenceIterations stop the optimizer once
	// the best negative log-likelihood has not improved by more than the
	// tolerance for that many iterations.
	convergenceTolerance  = 1e-12
	convergenceIterations = 200

	// maxNegLogLikelihood replaces non-finite likelihood values so the
	// simplex only ever compares finite numbers.
	maxNegLogLikelihood = 1e300
)

// outOfSupportPenalty is added to a negative log-likelihood for every point
// outside the support of the candidate distribution. It is large compared to
// any attainable log-density, but finite.
var outOfSupportPenalty = 100 * math.Log(math.MaxFloat64)

// FittedParams are the parameters of a distribution fitted by maximum
// likelihood. For GPDMLE the location is the threshold, which is not fitted.
type FittedParams struct {
	TailIndex float64
	Location  float64
	Scale     float64
}

// minimizeNegLogLikelihood minimizes nll with the Nelder-Mead simplex method
// starting at init. The result is nil only if the optimizer could not start.
func minimizeNegLogLikelihood(nll func(x []float64) float64, init []float64, maxIterations int) (*optimize.Result, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			f := nll(x)
			if math.IsNaN(f) || f > maxNegLogLikelihood {
				return maxNegLogLikelihood
			}
			return f
		},
	}
	settings := &optimize.Settings{
		MajorIterations: maxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   convergenceTolerance,
			Relative:   convergenceTolerance,
			Iterations: convergenceIterations,
		},
	}
	method := &optimize.NelderMead{
		SimplexSize: initialSimplexSize,
	}

	return optimize.Minimize(problem, init, settings, method)
}

// usableResult reports whether result holds a finite parameter vector,
// logging the outcome of the optimization on logger.
func usableResult(logger zerolog.Logger, estimator string, result *optimize.Result, err error) bool {
	if result == nil {
		logger.Warn().Err(err).Str("estimator", estimator).Msg("likelihood optimization did not start")
		return false
	}

	usable := allFinite(result.X) && !math.IsNaN(result.F)
	event := logger.Debug()
	if err != nil || !usable {
		event = logger.Warn()
	}
	event.Err(err).
		Str("estimator", estimator).
		Str("status", result.Status.String()).
		Int("iterations", result.Stats.MajorIterations).
		Int("evaluations", result.Stats.FuncEvaluations).
		Float64("neg_log_likelihood", result.F).
		Bool("usable", usable).
		Msg("likelihood optimization finished")

	return usable
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
