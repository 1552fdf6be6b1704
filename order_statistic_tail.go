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

	"gonum.org/v1/gonum/floats"
)

// orderStatisticTail holds the order statistics of the peaks over a
// threshold, and their logarithms, for the semi-parametric estimators.
type orderStatisticTail struct {
	peaksOverThreshold *PeaksOverThreshold
	orderStatistics    []float64
	logs               []float64
}

func newOrderStatisticTail(pot *PeaksOverThreshold) orderStatisticTail {
	orderStatistics := OrderStatistics(pot.tail.values)
	logs := make([]float64, len(orderStatistics))
	for i, x := range orderStatistics {
		logs[i] = math.Log(x)
	}

	return orderStatisticTail{
		peaksOverThreshold: pot,
		orderStatistics:    orderStatistics,
		logs:               logs,
	}
}

// checkOrderStatistics returns an error wrapping ErrInvalidArgument unless
// 1 <= k < n, where n is the number of peaks.
func (t *orderStatisticTail) checkOrderStatistics(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: number of order statistics %d must be >= 1", ErrInvalidArgument, k)
	} else if n := len(t.orderStatistics); k >= n {
		return fmt.Errorf("%w: number of order statistics %d must be smaller than the number of peaks %d", ErrInvalidArgument, k, n)
	}
	return nil
}

// logExcessMoments returns the first and second moments of
// log X_(i) - log X_(k) over i = 0..k-1, where X_(i) is the (i+1)-th largest
// peak. The caller validates k.
func (t *orderStatisticTail) logExcessMoments(k int) (first, second float64) {
	excesses := make([]float64, k)
	copy(excesses, t.logs[:k])
	floats.AddConst(-t.logs[k], excesses)

	kF64 := float64(k)
	return floats.Sum(excesses) / kF64, floats.Dot(excesses, excesses) / kF64
}

// estimatePath evaluates estimate for k = 1..maxK. A maxK of 0 selects n-1.
func (t *orderStatisticTail) estimatePath(maxK int, estimate func(k int) ([]Estimate, error)) ([]PathPoint, error) {
	if maxK == 0 {
		maxK = len(t.orderStatistics) - 1
	}
	if err := t.checkOrderStatistics(maxK); err != nil {
		return nil, fmt.Errorf("max order statistics: %w", err)
	}

	path := make([]PathPoint, 0, maxK)
	for k := 1; k <= maxK; k++ {
		estimates, err := estimate(k)
		if err != nil {
			return nil, err
		}
		path = append(path, PathPoint{OrderStatistics: k, Estimate: estimates[0]})
	}
	return path, nil
}

// OrderStatistics returns a copy of the peaks sorted in descending order.
func (t *orderStatisticTail) OrderStatistics() []float64 {
	out := make([]float64, len(t.orderStatistics))
	copy(out, t.orderStatistics)
	return out
}

// PeaksOverThreshold returns the peaks the estimator works on.
func (t *orderStatisticTail) PeaksOverThreshold() *PeaksOverThreshold {
	return t.peaksOverThreshold
}
