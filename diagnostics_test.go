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
	"errors"
	"math"
	"testing"
)

func TestMeanExcess(t *testing.T) {
	t.Parallel() // this test is stateless and can be run in parallel with other tests

	type TestCase struct {
		Name     string
		Input    []float64
		Expected []MeanExcessPoint
	}

	testCases := []TestCase{
		{
			Name:  "repeated threshold uses the values strictly above it",
			Input: []float64{1, 2, 3, 3, 4},
			Expected: []MeanExcessPoint{
				{Threshold: 1, MeanExcess: 2},
				{Threshold: 2, MeanExcess: 4.0 / 3},
				{Threshold: 3, MeanExcess: 1},
			},
		},
		{
			Name:  "repeated maximum is dropped",
			Input: []float64{4, 3, 4},
			Expected: []MeanExcessPoint{
				{Threshold: 3, MeanExcess: 1},
			},
		},
		{
			Name:     "single value has no excess",
			Input:    []float64{1},
			Expected: []MeanExcessPoint{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			actual := MeanExcess(tc.Input)

			if len(actual) != len(tc.Expected) {
				t.Fatalf("expected %d points, got %d: %+v", len(tc.Expected), len(actual), actual)
			}
			for i := range actual {
				if actual[i].Threshold != tc.Expected[i].Threshold ||
					!almostEqual(actual[i].MeanExcess, tc.Expected[i].MeanExcess, floatToleranceForEVTTest) {
					t.Errorf("point %d: expected %+v, got %+v", i, tc.Expected[i], actual[i])
				}
			}
		})
	}
}

func TestMaximumToSum(t *testing.T) {
	t.Parallel() // this test is stateless and can be run in parallel with other tests

	// GIVEN (set up)
	input := []float64{0, -2, 1, 3}

	// WHEN (operation under test)
	first, err := MaximumToSum(input, 1)
	if err != nil {
		t.Fatalf("MaximumToSum failed: %v", err)
	}
	second, err := MaximumToSum(input, 2)
	if err != nil {
		t.Fatalf("MaximumToSum failed: %v", err)
	}

	// THEN (assertions)
	if !math.IsNaN(first[0]) {
		t.Errorf("expected NaN for an all-zero prefix, got %v", first[0])
	}
	expectedFirst := []float64{1, 2.0 / 3, 0.5}
	expectedSecond := []float64{1, 4.0 / 5, 9.0 / 14}
	for i := range expectedFirst {
		if !almostEqual(first[i+1], expectedFirst[i], floatToleranceForEVTTest) {
			t.Errorf("moment 1, index %d: expected %v, got %v", i+1, expectedFirst[i], first[i+1])
		}
		if !almostEqual(second[i+1], expectedSecond[i], floatToleranceForEVTTest) {
			t.Errorf("moment 2, index %d: expected %v, got %v", i+1, expectedSecond[i], second[i+1])
		}
	}

	if _, err := MaximumToSum(input, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for moment 0, got %v", err)
	}
}
