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
)

// Moment is the moment estimator of the tail index γ, also known as the
// Dekkers-Einmahl-de Haan estimator. Unlike Hill, it is consistent for
// every real γ. Confidence intervals use the asymptotic variance of the
// estimate; bias is not taken into account.
//
// Citation: Arnold L. M. Dekkers, John H. J. Einmahl and Laurens de Haan
// (1989), A Moment Estimator for the Index of an Extreme-Value
// Distribution, The Annals of Statistics 17(4), 1833-1855.
type Moment struct {
	orderStatisticTail
	opts options
}

// NewMoment returns a moment estimator for the peaks of pot. Only the
// confidence level and logger options apply.
func NewMoment(pot *PeaksOverThreshold, opts ...Option) (*Moment, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Moment{orderStatisticTail: newOrderStatisticTail(pot), opts: o}, nil
}

// Estimate returns the moment estimate of the tail index computed from the
// k largest order statistics:
//
//	γ = M1 + 1 - 1/2 · 1/(1 - M1²/M2)
//
// where M1 and M2 are the first and second moments of
// log X_(i) - log X_(k) over i < k. An error wrapping ErrInvalidArgument is
// returned unless 1 <= k < n, with n the number of peaks.
//
// With k = 1, or when the k largest peaks are equal, M1² = M2 and the
// estimate is not finite; neither are its confidence bounds.
func (m *Moment) Estimate(k int) ([]Estimate, error) {
	if err := m.checkOrderStatistics(k); err != nil {
		return nil, err
	}

	first, second := m.logExcessMoments(k)
	tailIndex := first + 1 - 0.5/(1-first*first/second)

	stdErr := math.Sqrt(momentVariance(tailIndex)) / math.Sqrt(float64(k))
	estimate := newEstimate(tailIndex, stdErr, m.opts.confidenceLevel)
	if !estimate.HasConfidenceInterval() {
		m.opts.logger.Warn().Int("k", k).Float64("tail_index", tailIndex).
			Msg("moment estimator variance is not finite")
	}
	return []Estimate{estimate}, nil
}

// EstimatePath returns the moment estimates for k = 1..maxK. A maxK of 0
// uses every admissible k, up to n-1.
func (m *Moment) EstimatePath(maxK int) ([]PathPoint, error) {
	return m.estimatePath(maxK, m.Estimate)
}

// momentVariance is the asymptotic variance of the moment estimator at
// tail index g.
func momentVariance(g float64) float64 {
	if g >= 0 {
		return g*g + 1
	}
	return (1 - g) * (1 - g) * (1 - 2*g) * (1 - g + 6*g*g) /
		((1 - 3*g) * (1 - 4*g))
}
