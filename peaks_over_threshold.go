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

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PeaksOverThreshold keeps the points of a sample whose value is strictly
// greater than a threshold. The kept points form the tail of the sample.
type PeaksOverThreshold struct {
	dataset   *Sample
	threshold float64
	tail      *Sample
}

// NewPeaksOverThreshold selects the points of sample above threshold,
// preserving their keys and order. The tail may be empty.
//
// An error wrapping ErrInvalidArgument is returned when the threshold is
// negative or NaN; shift the data when a negative threshold is needed.
func NewPeaksOverThreshold(sample *Sample, threshold float64) (*PeaksOverThreshold, error) {
	// Guard statements
	if !(threshold >= 0) {
		return nil, fmt.Errorf("%w: threshold %v must be >= 0", ErrInvalidArgument, threshold)
	}

	var keys, values []float64
	for i, v := range sample.values {
		if v > threshold {
			keys = append(keys, sample.keys[i])
			values = append(values, v)
		}
	}

	return &PeaksOverThreshold{
		dataset:   sample,
		threshold: threshold,
		tail:      newSample(keys, values),
	}, nil
}

// Threshold returns the threshold the tail was selected with.
func (pot *PeaksOverThreshold) Threshold() float64 {
	return pot.threshold
}

// Tail returns the peaks over the threshold.
func (pot *PeaksOverThreshold) Tail() *Sample {
	return pot.tail
}

// Dataset returns the sample the peaks were selected from.
func (pot *PeaksOverThreshold) Dataset() *Sample {
	return pot.dataset
}

// ZipfPoints returns the empirical survival function of the tail, the data
// of a Zipf (log-log survival) plot.
func (pot *PeaksOverThreshold) ZipfPoints() []DistributionPoint {
	return EmpiricalSurvival(pot.tail.values)
}

// QQExponential compares the empirical survival function of the tail with
// the survival function of an exponential distribution fitted to the tail by
// maximum likelihood (location at the smallest peak, scale equal to the mean
// distance to it). Points that fall on the diagonal indicate an
// exponential-type tail.
//
// An error wrapping ErrInvalidArgument is returned when the tail holds fewer
// than two distinct values.
func (pot *PeaksOverThreshold) QQExponential() ([]QQPoint, error) {
	tail := pot.tail.values
	if len(tail) == 0 {
		return nil, fmt.Errorf("%w: no peaks over threshold %v", ErrEmptySample, pot.threshold)
	}

	loc := tail[0]
	for _, v := range tail {
		loc = min(loc, v)
	}
	scale := stat.Mean(tail, nil) - loc
	if !(scale > 0) {
		return nil, fmt.Errorf("%w: tail needs at least two distinct values", ErrInvalidArgument)
	}

	exponential := distuv.Exponential{Rate: 1 / scale}
	return qqPoints(tail, func(x float64) float64 {
		return exponential.Survival(x - loc)
	}), nil
}
