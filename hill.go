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

// Hill is the Hill estimator of a positive tail index γ > 0 from the
// largest order statistics of the peaks over a threshold. Confidence
// intervals use the asymptotic variance γ²/k of the estimate; bias is not
// taken into account.
//
// Citation: Bruce M. Hill (1975), A Simple General Approach to Inference
// About the Tail of a Distribution, The Annals of Statistics 3(5),
// 1163-1174.
type Hill struct {
	orderStatisticTail
	opts options
}

// NewHill returns a Hill estimator for the peaks of pot. Only the confidence
// level and logger options apply.
func NewHill(pot *PeaksOverThreshold, opts ...Option) (*Hill, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Hill{orderStatisticTail: newOrderStatisticTail(pot), opts: o}, nil
}

// Estimate returns the Hill estimate of the tail index computed from the k
// largest order statistics:
//
//	γ = (1/k) Σ_{i<k} [log X_(i) - log X_(k)]
//
// where X_(i) is the (i+1)-th largest peak. An error wrapping
// ErrInvalidArgument is returned unless 1 <= k < n, with n the number of
// peaks.
func (h *Hill) Estimate(k int) ([]Estimate, error) {
	if err := h.checkOrderStatistics(k); err != nil {
		return nil, err
	}

	tailIndex, _ := h.logExcessMoments(k)
	stdErr := tailIndex / math.Sqrt(float64(k))
	return []Estimate{newEstimate(tailIndex, stdErr, h.opts.confidenceLevel)}, nil
}

// EstimatePath returns the Hill estimates for k = 1..maxK, the data of a
// Hill plot. A maxK of 0 uses every admissible k, up to n-1.
func (h *Hill) EstimatePath(maxK int) ([]PathPoint, error) {
	return h.estimatePath(maxK, h.Estimate)
}
