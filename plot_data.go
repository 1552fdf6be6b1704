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

// QQPoint pairs the survival function of a fitted model with the empirical
// survival function, both evaluated at Value. Plotting Model against
// Empirical on log-log axes gives a quantile-quantile plot; a good fit lies
// on the diagonal.
type QQPoint struct {
	Value     float64
	Model     float64
	Empirical float64
}

// PathPoint is the estimate of an order statistic estimator computed with
// OrderStatistics order statistics.
type PathPoint struct {
	OrderStatistics int
	Estimate        Estimate
}

// qqPoints evaluates survival at every distinct value of values.
func qqPoints(values []float64, survival func(float64) float64) []QQPoint {
	empirical := EmpiricalSurvival(values)
	points := make([]QQPoint, len(empirical))
	for i, e := range empirical {
		points[i] = QQPoint{
			Value:     e.Value,
			Model:     survival(e.Value),
			Empirical: e.Probability,
		}
	}
	return points
}
