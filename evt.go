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

// Package evt implements the core estimators of extreme value theory (EVT)
// for a univariate series of observations. Two classical approaches are
// supported:
//
//   - Block maxima: the series is divided into blocks of equal size, and a
//     generalized extreme value (GEV) distribution is fitted to the maximum
//     of every block by maximum likelihood (see GEVMLE).
//   - Peaks over threshold: only observations strictly greater than a
//     threshold are kept. A generalized Pareto distribution (GPD) is fitted
//     to the exceedances by maximum likelihood (see GPDMLE), or the tail
//     index is estimated semi-parametrically from the order statistics of
//     the exceedances (see Hill and Moment).
//
// Every estimator returns Estimate values: a point estimate and the bounds
// of an asymptotic confidence interval. Numerical trouble while computing
// a confidence interval is not an error; the affected bounds are NaN and
// callers must check for them.
//
// The tail index γ follows the convention of the peaks-over-threshold
// literature throughout: γ > 0 for heavy (Pareto-type) tails, γ = 0 for
// exponential-type tails and γ < 0 for bounded tails.
//
// Citation: Laurens de Haan and Ana Ferreira (2006), Extreme Value Theory:
// An Introduction, Springer Series in Operations Research and Financial
// Engineering.
package evt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for arguments outside of their domain,
	// such as a block size below one or a negative threshold.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFitted is returned when the fitted distribution of a maximum
	// likelihood estimator is requested before Estimate has been called.
	ErrNotFitted = errors.New("estimate must be called before the fitted distribution is available")

	// ErrNumericalFailure is returned when the likelihood optimizer does not
	// produce any finite parameter estimate.
	ErrNumericalFailure = errors.New("numerical failure")

	ErrLengthMismatch = fmt.Errorf("%w: keys and values differ in length", ErrInvalidArgument)
	ErrNonFiniteValue = fmt.Errorf("%w: sample contains NaN or infinite values", ErrInvalidArgument)
	ErrDuplicateKey   = fmt.Errorf("%w: sample contains duplicate keys", ErrInvalidArgument)
	ErrEmptySample    = fmt.Errorf("%w: sample is empty", ErrInvalidArgument)
)
