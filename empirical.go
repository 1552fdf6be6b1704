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
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistributionPoint is a value together with a probability, such as the
// empirical distribution function or survival function evaluated at that
// value.
type DistributionPoint struct {
	Value       float64
	Probability float64
}

// EmpiricalCDF returns the empirical distribution function of values using
// the plotting position r/(n+1), where r is the ascending rank of a value
// and n the number of values, so every probability lies strictly between 0
// and 1. Repeated values keep their lowest rank, which makes the returned
// points strictly increasing in both Value and Probability.
func EmpiricalCDF(values []float64) []DistributionPoint {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	size := float64(len(sorted) + 1)
	cdf := make([]DistributionPoint, 0, len(sorted))
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		cdf = append(cdf, DistributionPoint{Value: v, Probability: float64(i+1) / size})
	}

	return cdf
}

// EmpiricalSurvival returns one minus the empirical distribution function of
// values, evaluated at the same points as EmpiricalCDF.
func EmpiricalSurvival(values []float64) []DistributionPoint {
	survival := EmpiricalCDF(values)
	for i := range survival {
		survival[i].Probability = 1 - survival[i].Probability
	}
	return survival
}

// ConfidenceIntervalToStd returns the number of standard deviations of a
// standard normal distribution spanning a two-sided confidence interval with
// the given confidence level, i.e. the quantile Φ⁻¹(0.5 + confidence/2).
// A confidence of 0 yields 0 and a confidence of 1 yields +Inf. NaN is
// returned for a confidence outside [0, 1].
func ConfidenceIntervalToStd(confidence float64) float64 {
	if !(confidence >= 0 && confidence <= 1) {
		return math.NaN()
	}
	return distuv.UnitNormal.Quantile(0.5 + confidence/2)
}
