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
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GPDMLE is the maximum likelihood estimator of the generalized Pareto
// distribution
//
//	H(x) = 1 - (1 + γ(x-μ)/σ)^(-1/γ),  x ≥ μ
//
// fitted to the peaks over a threshold, with tail index γ and scale σ. The
// location μ is not estimated: it is the threshold.
//
// The estimator is irregular for γ ≤ -1/2 and can behave erratically there.
// Confidence intervals use the asymptotic variance of the estimates; bias is
// not taken into account.
//
// Estimate stores the fitted parameters in the GPDMLE; concurrent calls to
// Estimate are not safe.
type GPDMLE struct {
	peaksOverThreshold *PeaksOverThreshold
	opts               options
	fitted             *FittedParams
}

// NewGPDMLE returns a GPD maximum likelihood estimator for the peaks of pot.
// An error wrapping ErrInvalidArgument is returned when an option is invalid.
func NewGPDMLE(pot *PeaksOverThreshold, opts ...Option) (*GPDMLE, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &GPDMLE{peaksOverThreshold: pot, opts: o}, nil
}

// PeaksOverThreshold returns the peaks the estimator fits.
func (g *GPDMLE) PeaksOverThreshold() *PeaksOverThreshold {
	return g.peaksOverThreshold
}

// Estimate fits the GPD to the peaks over the threshold and returns the
// estimates of the tail index and the scale, in that order.
//
// The likelihood is maximized with the Nelder-Mead method starting from
// method-of-moments estimates, so the result can be a local optimum only. An
// error wrapping ErrNumericalFailure is returned only when no finite
// estimate is found, and an error wrapping ErrInvalidArgument when there are
// no peaks.
func (g *GPDMLE) Estimate() ([]Estimate, error) {
	threshold := g.peaksOverThreshold.threshold
	tail := g.peaksOverThreshold.tail.values
	n := len(tail)
	if n == 0 {
		return nil, fmt.Errorf("%w: no peaks over threshold %v", ErrEmptySample, threshold)
	}

	excesses := make([]float64, n)
	for i, x := range tail {
		excesses[i] = x - threshold
	}
	meanExcess := stat.Mean(excesses, nil)

	initTailIndex, initScale := gpdInitialParams(excesses)
	theta := []float64{initTailIndex, math.Log(initScale / meanExcess)}

	result, err := minimizeNegLogLikelihood(func(theta []float64) float64 {
		return gpdNegLogLikelihood(excesses, theta[0], meanExcess*math.Exp(theta[1]))
	}, theta, g.opts.maxIterations)
	if !usableResult(g.opts.logger, "gpd", result, err) {
		return nil, fmt.Errorf("%w: GPD likelihood optimization: %v", ErrNumericalFailure, err)
	}

	params := FittedParams{
		TailIndex: result.X[0],
		Location:  threshold,
		Scale:     meanExcess * math.Exp(result.X[1]),
	}
	g.fitted = &params

	sqrtN := math.Sqrt(float64(n))
	tailIndexStdErr := (1 + math.Abs(params.TailIndex)) / sqrtN
	scaleStdErr := math.Sqrt(1+(1+params.TailIndex)*(1+params.TailIndex)) / sqrtN

	estimates := []Estimate{
		newEstimate(params.TailIndex, tailIndexStdErr, g.opts.confidenceLevel),
		newEstimate(params.Scale, scaleStdErr, g.opts.confidenceLevel),
	}
	if params.TailIndex <= -0.5 {
		g.opts.logger.Warn().Float64("tail_index", params.TailIndex).
			Msg("GPD maximum likelihood is irregular for tail index <= -1/2")
	}
	return estimates, nil
}

// Fitted returns the parameters found by the last call to Estimate, or
// ErrNotFitted when Estimate has not been called. The location is the
// threshold.
func (g *GPDMLE) Fitted() (FittedParams, error) {
	if g.fitted == nil {
		return FittedParams{}, ErrNotFitted
	}
	return *g.fitted, nil
}

// IsFitted reports whether Estimate has produced fitted parameters.
func (g *GPDMLE) IsFitted() bool {
	return g.fitted != nil
}

// SurvivalQQ compares the empirical survival function of the peaks with
// the survival function of the fitted GPD. It returns ErrNotFitted when
// Estimate has not been called.
func (g *GPDMLE) SurvivalQQ() ([]QQPoint, error) {
	params, err := g.Fitted()
	if err != nil {
		return nil, err
	}
	return qqPoints(g.peaksOverThreshold.tail.values, func(x float64) float64 {
		return GPDSurvival(x, params)
	}), nil
}

// GPDSurvival returns 1 - H(x) for the GPD with the given parameters.
func GPDSurvival(x float64, p FittedParams) float64 {
	y := x - p.Location
	if y < 0 {
		return 1
	}
	if math.Abs(p.TailIndex) < shapeTolerance {
		return distuv.Exponential{Rate: 1 / p.Scale}.Survival(y)
	}

	t := 1 + p.TailIndex*y/p.Scale
	if t <= 0 {
		return 0 // above the upper endpoint
	}
	return math.Pow(t, -1/p.TailIndex)
}

// gpdInitialParams returns method-of-moments estimates of the GPD tail index
// and scale from the excesses over the threshold, with the scale widened
// until every excess lies inside the support.
func gpdInitialParams(excesses []float64) (tailIndex, scale float64) {
	mean := stat.Mean(excesses, nil)
	scale = mean
	if len(excesses) > 1 {
		if variance := stat.Variance(excesses, nil); variance > 0 {
			ratio := mean * mean / variance
			tailIndex = 0.5 * (1 - ratio)
			scale = 0.5 * mean * (ratio + 1)
		}
	}

	for !gpdSupports(excesses, tailIndex, scale) {
		scale *= 2
	}
	return tailIndex, scale
}

func gpdSupports(excesses []float64, tailIndex, scale float64) bool {
	for _, y := range excesses {
		if 1+tailIndex*y/scale <= 0 {
			return false
		}
	}
	return true
}

// gpdNegLogLikelihood returns the negative log-likelihood of the excesses
// over the threshold under the GPD. Excesses outside the support add
// outOfSupportPenalty each.
func gpdNegLogLikelihood(excesses []float64, tailIndex, scale float64) float64 {
	if !(scale > 0) {
		return maxNegLogLikelihood
	}

	logScale := math.Log(scale)
	var nll float64
	outside := 0
	for _, y := range excesses {
		if math.Abs(tailIndex) < shapeTolerance {
			nll += logScale + y/scale
			continue
		}

		t := 1 + tailIndex*y/scale
		if t <= 0 {
			outside++
			continue
		}
		nll += logScale + (1+1/tailIndex)*math.Log(t)
	}

	return nll + float64(outside)*outOfSupportPenalty
}
