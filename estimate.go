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

// DefaultConfidenceLevel is the confidence level of the confidence intervals
// reported by estimators unless WithConfidenceLevel says otherwise.
const DefaultConfidenceLevel = 0.95

// Estimate is a point estimate of a parameter together with the bounds of a
// two-sided confidence interval at ConfidenceLevel. The bounds are NaN when
// the variance of the estimate could not be computed.
type Estimate struct {
	Value           float64
	CILower         float64
	CIUpper         float64
	ConfidenceLevel float64
}

// newEstimate returns the estimate value ± z·stdErr where z corresponds to
// confidenceLevel. A NaN or infinite stdErr yields non-finite bounds.
func newEstimate(value, stdErr, confidenceLevel float64) Estimate {
	z := ConfidenceIntervalToStd(confidenceLevel)
	return Estimate{
		Value:           value,
		CILower:         value - z*stdErr,
		CIUpper:         value + z*stdErr,
		ConfidenceLevel: confidenceLevel,
	}
}

// Tuple returns the estimate, the lower bound and the upper bound, in that
// order.
func (e Estimate) Tuple() (estimate, lower, upper float64) {
	return e.Value, e.CILower, e.CIUpper
}

// Array returns the estimate, the lower bound and the upper bound, in that
// order.
func (e Estimate) Array() [3]float64 {
	return [3]float64{e.Value, e.CILower, e.CIUpper}
}

// HasConfidenceInterval reports whether both bounds are finite.
func (e Estimate) HasConfidenceInterval() bool {
	return !math.IsNaN(e.CILower) && !math.IsInf(e.CILower, 0) &&
		!math.IsNaN(e.CIUpper) && !math.IsInf(e.CIUpper, 0)
}

// Estimator estimates one or more parameters of a tail distribution. GEVMLE
// and GPDMLE are Estimators; Hill and Moment become one through
// AtOrderStatistics.
type Estimator interface {
	Estimate() ([]Estimate, error)
}

// OrderStatisticEstimator estimates the tail index from the k largest order
// statistics of the peaks over a threshold.
type OrderStatisticEstimator interface {
	Estimate(k int) ([]Estimate, error)
	EstimatePath(maxK int) ([]PathPoint, error)
}

// EstimatorFunc adapts a function to the Estimator interface.
type EstimatorFunc func() ([]Estimate, error)

// Estimate calls f.
func (f EstimatorFunc) Estimate() ([]Estimate, error) {
	return f()
}

// AtOrderStatistics fixes the number of order statistics of e to k.
func AtOrderStatistics(e OrderStatisticEstimator, k int) Estimator {
	return EstimatorFunc(func() ([]Estimate, error) {
		return e.Estimate(k)
	})
}

var (
	_ Estimator               = (*GEVMLE)(nil)
	_ Estimator               = (*GPDMLE)(nil)
	_ OrderStatisticEstimator = (*Hill)(nil)
	_ OrderStatisticEstimator = (*Moment)(nil)
)
