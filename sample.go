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
)

// Sample is a validated univariate series: every value is finite and every
// point carries a unique key (an index or a timestamp). A Sample is
// immutable; accessors return copies.
type Sample struct {
	keys   []float64
	values []float64
}

// NewSample validates keys and values and returns them as a Sample. The
// order of the points is kept as given. An error wrapping ErrInvalidArgument
// is returned when the lengths differ, a value is NaN or infinite, or a key
// is NaN or occurs more than once.
func NewSample(keys, values []float64) (*Sample, error) {
	// Guard statements
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}

	nonFinite := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			nonFinite++
		}
	}
	if nonFinite > 0 {
		return nil, fmt.Errorf("%w: %d of %d values", ErrNonFiniteValue, nonFinite, len(values))
	}

	seen := make(map[float64]struct{}, len(keys))
	duplicates := 0
	for _, k := range keys {
		if math.IsNaN(k) {
			return nil, fmt.Errorf("%w: NaN key", ErrInvalidArgument)
		}
		if _, ok := seen[k]; ok {
			duplicates++
			continue
		}
		seen[k] = struct{}{}
	}
	if duplicates > 0 {
		return nil, fmt.Errorf("%w: %d duplicates", ErrDuplicateKey, duplicates)
	}

	return newSample(keys, values), nil
}

// NewSampleFromValues returns a Sample keyed by position: the i-th value has
// key i.
func NewSampleFromValues(values []float64) (*Sample, error) {
	keys := make([]float64, len(values))
	for i := range keys {
		keys[i] = float64(i)
	}
	return NewSample(keys, values)
}

// newSample copies keys and values without validation. It is used for
// samples derived from an already validated Sample.
func newSample(keys, values []float64) *Sample {
	s := &Sample{
		keys:   make([]float64, len(keys)),
		values: make([]float64, len(values)),
	}
	copy(s.keys, keys)
	copy(s.values, values)
	return s
}

// Len returns the number of points in the sample.
func (s *Sample) Len() int {
	return len(s.values)
}

// Keys returns a copy of the keys of the sample.
func (s *Sample) Keys() []float64 {
	out := make([]float64, len(s.keys))
	copy(out, s.keys)
	return out
}

// Values returns a copy of the values of the sample.
func (s *Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// At returns the key and value of the i-th point. At panics when i is out of
// range.
func (s *Sample) At(i int) (key, value float64) {
	return s.keys[i], s.values[i]
}
