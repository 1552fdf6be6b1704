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
	"testing"
)

func TestOrderStatistics(t *testing.T) {
	t.Parallel() // this test is stateless and can be run in parallel with other tests

	// GIVEN (set up)
	input := []float64{14, 15, 14, 13}

	// WHEN (operation under test)
	actual := OrderStatistics(input)

	// THEN (assertions)
	if expected := []float64{15, 14, 14, 13}; !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}
	if expected := []float64{14, 15, 14, 13}; !slices.Equal(input, expected) {
		t.Errorf("input was modified: %v", input)
	}
}

func TestEmpiricalCDF(t *testing.T) {
	t.Parallel() // this test is stateless and can be run in parallel with other tests

	type TestCase struct {
		Name     string
		Input    []float64
		Expected []DistributionPoint
	}

	testCases := []TestCase{
		{
			Name:  "duplicates keep the lowest rank",
			Input: []float64{15, 14, 14, 13},
			Expected: []DistributionPoint{
				{Value: 13, Probability: 0.2},
				{Value: 14, Probability: 0.4},
				{Value: 15, Probability: 0.8},
			},
		},
		{
			Name:     "single value",
			Input:    []float64{7},
			Expected: []DistributionPoint{{Value: 7, Probability: 0.5}},
		},
		{
			Name:     "empty",
			Input:    []float64{},
			Expected: []DistributionPoint{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			actual := EmpiricalCDF(tc.Input)

			if len(actual) != len(tc.Expected) {
				t.Fatalf("expected %d points, got %d", len(tc.Expected), len(actual))
			}
			for i := range actual {
				if actual[i].Value != tc.Expected[i].Value ||
					!almostEqual(actual[i].Probability, tc.Expected[i].Probability, floatToleranceForEVTTest) {
					t.Errorf("point %d: expected %+v, got %+v", i, tc.Expected[i], actual[i])
				}
			}
		})
	}
}

func TestEmpiricalCDF_Properties(t *testing.T) {
	t.Parallel() // this test is stateless and can be run in parallel with other tests

	prng := newPRNG()
	for _, n := range []int{1, 2, 3, 10, 100, 1000} {
		data := make([]float64, n)
		for i := range data {
			data[i] = math.Round(prng.NormFloat64() * 10) // rounding creates ties
		}

		cdf := EmpiricalCDF(data)
		survival := EmpiricalSurvival(data)
		if len(cdf) != len(survival) {
			t.Fatalf("n=%d: CDF and survival function differ in length", n)
		}

		for i, p := range cdf {
			if !(p.Probability > 0 && p.Probability < 1) {
				t.Errorf("n=%d: probability %v outside (0, 1)", n, p.Probability)
			}
			if i > 0 && !(p.Value > cdf[i-1].Value && p.Probability > cdf[i-1].Probability) {
				t.Errorf("n=%d: CDF not strictly increasing at %d", n, i)
			}
			if survival[i].Value != p.Value || !almostEqual(survival[i].Probability, 1-p.Probability, floatToleranceForEVTTest) {
				t.Errorf("n=%d: survival function is not 1-CDF at %d", n, i)
			}
		}
	}
}

func TestConfidenceIntervalToStd(t *testing.T) {
	t.Parallel() // this test is stateless and can be run in parallel with other tests

	type TestCase struct {
		Confidence float64
		Expected   float64
	}

	testCases := []TestCase{
		{Confidence: 0.95, Expected: 1.959963984540054},
		{Confidence: 0.99, Expected: 2.5758293035489004},
		{Confidence: 0, Expected: 0},
	}

	for _, tc := range testCases {
		if actual := ConfidenceIntervalToStd(tc.Confidence); !almostEqual(actual, tc.Expected, floatToleranceForEVTTest) {
			t.Errorf("confidence %v: expected %v, got %v", tc.Confidence, tc.Expected, actual)
		}
	}

	if actual := ConfidenceIntervalToStd(0); actual != 0 {
		t.Errorf("expected exactly 0 for zero confidence, got %v", actual)
	}
	if actual := ConfidenceIntervalToStd(1.5); !math.IsNaN(actual) {
		t.Errorf("expected NaN for confidence outside [0, 1], got %v", actual)
	}
}
