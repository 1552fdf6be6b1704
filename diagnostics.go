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
	"slices"
)

// MeanExcessPoint is the average excess of the values strictly greater than
// Threshold.
type MeanExcessPoint struct {
	Threshold  float64
	MeanExcess float64
}

// MeanExcess returns the empirical mean excess function of values: for
// every distinct value u it reports the mean of x-u over the values x > u.
// The largest value has no excess and is omitted. Points are sorted by
// ascending threshold.
//
// A mean excess that grows linearly in the threshold points to a heavy
// tail; a decreasing one to a bounded tail.
func MeanExcess(values []float64) []MeanExcessPoint {
	sorted := OrderStatistics(values)

	points := make([]MeanExcessPoint, 0, len(sorted))
	var sumAbove float64
	for i, u := range sorted {
		if i > 0 && u != sorted[i-1] {
			points = append(points, MeanExcessPoint{
				Threshold:  u,
				MeanExcess: (sumAbove - float64(i)*u) / float64(i),
			})
		}
		sumAbove += u
	}

	slices.Reverse(points)
	return points
}

// MaximumToSum returns the running ratio of the maximum to the sum of
// |x|^moment over the first i+1 values, for every i. The ratio tends to zero
// when the moment of the given order is finite. A prefix whose absolute
// values are all zero yields NaN.
func MaximumToSum(values []float64, moment int) ([]float64, error) {
	// Guard statements
	if moment < 1 {
		return nil, fmt.Errorf("%w: moment %d must be >= 1", ErrInvalidArgument, moment)
	}

	ratios := make([]float64, len(values))
	var runningMax, runningSum float64
	for i, v := range values {
		p := math.Pow(math.Abs(v), float64(moment))
		runningMax = math.Max(runningMax, p)
		runningSum += p
		if runningSum == 0 {
			ratios[i] = math.NaN()
			continue
		}
		ratios[i] = runningMax / runningSum
	}

	return ratios, nil
}
