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

	"github.com/rs/zerolog"
)

const defaultMaxIterations = 10_000

type options struct {
	confidenceLevel float64
	logger          zerolog.Logger
	maxIterations   int
}

// Option configures an estimator.
type Option func(*options)

// WithConfidenceLevel sets the confidence level of the confidence intervals
// reported by an estimator. The level must lie strictly between 0 and 1; the
// default is DefaultConfidenceLevel.
func WithConfidenceLevel(level float64) Option {
	return func(o *options) {
		o.confidenceLevel = level
	}
}

// WithLogger sets the logger used for optimizer and confidence interval
// diagnostics. Estimators are silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxIterations caps the number of Nelder-Mead iterations of the maximum
// likelihood estimators. It has no effect on Hill and Moment.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

func newOptions(opts []Option) (options, error) {
	o := options{
		confidenceLevel: DefaultConfidenceLevel,
		logger:          zerolog.Nop(),
		maxIterations:   defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Guard statements
	if !(o.confidenceLevel > 0 && o.confidenceLevel < 1) {
		return options{}, fmt.Errorf("%w: confidence level %v must be in (0, 1)", ErrInvalidArgument, o.confidenceLevel)
	} else if o.maxIterations < 1 {
		return options{}, fmt.Errorf("%w: max iterations %d must be >= 1", ErrInvalidArgument, o.maxIterations)
	}

	return o, nil
}
