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
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const eulerMascheroni = 0.5772156649015329

// GEVMLE is the maximum likelihood estimator of the generalized extreme
// value distribution
//
//	G(x) = exp[-(1 + γ(x-μ)/σ)^(-1/γ)]
//
// fitted to block maxima, with tail index γ, location μ and scale σ.
// Confidence intervals are derived from the observed Fisher information.
//
// Estimate stores the fitted parameters in the GEVMLE; concurrent calls to
// Estimate are not safe.
type GEVMLE struct {
	blockMaxima *BlockMaxima
	opts        options
	fitted      *FittedParams
}

// NewGEVMLE returns a GEV maximum likelihood estimator for the maxima of bm.
// An error wrapping ErrInvalidArgument is returned when an option is invalid.
func NewGEVMLE(bm *BlockMaxima, opts ...Option) (*GEVMLE, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &GEVMLE{blockMaxima: bm, opts: o}, nil
}

// BlockMaxima returns the block maxima the estimator fits.
func (g *GEVMLE) BlockMaxima() *BlockMaxima {
	return g.blockMaxima
}

// Estimate fits the GEV distribution to the block maxima and returns the
// estimates of the tail index, the location and the scale, in that order.
//
// There is no closed-form solution; the likelihood is maximized with the
// Nelder-Mead method starting from method-of-moments estimates, so the
// result can be a local optimum only. An error wrapping ErrNumericalFailure
// is returned only when no finite estimate is found. When the Fisher
// information cannot be inverted, the confidence bounds are NaN.
func (g *GEVMLE) Estimate() ([]Estimate, error) {
	maxima := g.blockMaxima.maxima.values
	n := len(maxima)
	if n == 0 {
		return nil, fmt.Errorf("%w: no block maxima", ErrEmptySample)
	}

	mean, spread := stat.PopMeanStdDev(maxima, nil)
	if !(spread > 0) {
		spread = 1
	}

	init := gevInitialParams(maxima)
	theta := []float64{
		init.TailIndex,
		(init.Location - mean) / spread,
		math.Log(init.Scale / spread),
	}
	fromTheta := func(theta []float64) FittedParams {
		return FittedParams{
			TailIndex: theta[0],
			Location:  mean + spread*theta[1],
			Scale:     spread * math.Exp(theta[2]),
		}
	}

	result, err := minimizeNegLogLikelihood(func(theta []float64) float64 {
		p := fromTheta(theta)
		return gevNegLogLikelihood(maxima, p.TailIndex, p.Location, p.Scale)
	}, theta, g.opts.maxIterations)
	if !usableResult(g.opts.logger, "gev", result, err) {
		return nil, fmt.Errorf("%w: GEV likelihood optimization: %v", ErrNumericalFailure, err)
	}

	params := fromTheta(result.X)
	g.fitted = &params

	stdErrs := gevStandardErrors(g.opts.logger, maxima, params)
	return []Estimate{
		newEstimate(params.TailIndex, stdErrs[0], g.opts.confidenceLevel),
		newEstimate(params.Location, stdErrs[1], g.opts.confidenceLevel),
		newEstimate(params.Scale, stdErrs[2], g.opts.confidenceLevel),
	}, nil
}

// Fitted returns the parameters found by the last call to Estimate, or
// ErrNotFitted when Estimate has not been called.
func (g *GEVMLE) Fitted() (FittedParams, error) {
	if g.fitted == nil {
		return FittedParams{}, ErrNotFitted
	}
	return *g.fitted, nil
}

// IsFitted reports whether Estimate has produced fitted parameters.
func (g *GEVMLE) IsFitted() bool {
	return g.fitted != nil
}

// SurvivalQQ compares the empirical survival function of the block maxima
// with the survival function of the fitted GEV distribution. It returns
// ErrNotFitted when Estimate has not been called.
func (g *GEVMLE) SurvivalQQ() ([]QQPoint, error) {
	params, err := g.Fitted()
	if err != nil {
		return nil, err
	}
	return qqPoints(g.blockMaxima.maxima.values, func(x float64) float64 {
		return GEVSurvival(x, params)
	}), nil
}

// GEVSurvival returns 1 - G(x) for the GEV distribution with the given
// parameters.
func GEVSurvival(x float64, p FittedParams) float64 {
	if math.Abs(p.TailIndex) < shapeTolerance {
		return distuv.GumbelRight{Mu: p.Location, Beta: p.Scale}.Survival(x)
	}

	t := 1 + p.TailIndex*(x-p.Location)/p.Scale
	if t <= 0 {
		if p.TailIndex > 0 {
			return 1 // below the lower endpoint
		}
		return 0 // above the upper endpoint
	}
	return -math.Expm1(-math.Pow(t, -1/p.TailIndex))
}

// gevInitialParams returns method-of-moments estimates of the Gumbel
// location and scale, together with a tail index of ±0.5 depending on the
// sign of the skewness. The scale is widened until every value lies inside
// the support.
func gevInitialParams(values []float64) FittedParams {
	mean, std := stat.PopMeanStdDev(values, nil)

	tailIndex := 0.5
	if stat.Skew(values, nil) < 0 {
		tailIndex = -0.5
	}
	scale := std * math.Sqrt(6) / math.Pi
	if !(scale > 0) {
		scale = 1
	}
	loc := mean - eulerMascheroni*scale

	for !gevSupports(values, tailIndex, loc, scale) {
		scale *= 2
	}

	return FittedParams{TailIndex: tailIndex, Location: loc, Scale: scale}
}

func gevSupports(values []float64, tailIndex, loc, scale float64) bool {
	for _, x := range values {
		if 1+tailIndex*(x-loc)/scale <= 0 {
			return false
		}
	}
	return true
}

// gevNegLogLikelihood returns the negative log-likelihood of values under the
// GEV distribution. Values outside the support add outOfSupportPenalty each.
func gevNegLogLikelihood(values []float64, tailIndex, loc, scale float64) float64 {
	if !(scale > 0) {
		return maxNegLogLikelihood
	}

	logScale := math.Log(scale)
	var nll float64
	outside := 0
	for _, x := range values {
		y := (x - loc) / scale
		if math.Abs(tailIndex) < shapeTolerance {
			nll += logScale + y + math.Exp(-y)
			continue
		}

		t := 1 + tailIndex*y
		if t <= 0 {
			outside++
			continue
		}
		logT := math.Log(t)
		nll += logScale + (1+1/tailIndex)*logT + math.Exp(-logT/tailIndex)
	}

	return nll + float64(outside)*outOfSupportPenalty
}

// GEVFisherInformation returns the observed Fisher information of the GEV
// distribution at the given parameters: the Hessian of the negative
// log-density, averaged over values. Rows and columns are ordered as tail
// index, location, scale. The second derivatives are closed-form and
// require tailIndex != 0.
func GEVFisherInformation(values []float64, tailIndex, loc, scale float64) *mat.SymDense {
	var h [3][3]float64

	g, s := tailIndex, scale
	for _, x := range values {
		y := x - loc
		t := 1 + g*y/s
		logT := math.Log(t)
		pow := math.Exp(-logT / g) // t^(-1/γ)

		// First and second partial derivatives of t with respect to
		// (γ, μ, σ); ∂²t/∂γ² and ∂²t/∂μ² vanish.
		dt := [3]float64{y / s, -g / s, -g * y / (s * s)}
		dtGammaMu := -1 / s
		dtGammaSigma := -y / (s * s)
		dtMuSigma := g / (s * s)
		dtSigmaSigma := 2 * g * y / (s * s * s)

		// The negative log-density is log σ + q(γ, t) with
		// q = (1 + 1/γ) log t + t^(-1/γ); partial derivatives of q follow.
		qT := (1+1/g)/t - pow/(g*t)
		qTT := -(1+1/g)/(t*t) + (1/g)*(1/g+1)*pow/(t*t)
		qGG := -2*logT*(pow-1)/(g*g*g) + pow*logT*logT/(g*g*g*g)
		qGT := (pow-1)/(t*g*g) - pow*logT/(g*g*g*t)

		h[0][0] += qGG + 2*qGT*dt[0] + qTT*dt[0]*dt[0]
		h[0][1] += qGT*dt[1] + qTT*dt[0]*dt[1] + qT*dtGammaMu
		h[0][2] += qGT*dt[2] + qTT*dt[0]*dt[2] + qT*dtGammaSigma
		h[1][1] += qTT * dt[1] * dt[1]
		h[1][2] += qTT*dt[1]*dt[2] + qT*dtMuSigma
		h[2][2] += qTT*dt[2]*dt[2] + qT*dtSigmaSigma - 1/(s*s)
	}

	n := float64(len(values))
	info := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			info.SetSym(i, j, h[i][j]/n)
		}
	}
	return info
}

// gevStandardErrors returns the asymptotic standard errors of the tail
// index, location and scale. An entry is NaN when the Fisher information is
// not finite, is exactly singular, or its inverse has a negative diagonal.
//
// The information is inverted in units of the fitted scale, where its
// entries no longer depend on the magnitude of the data, and the variances
// are rescaled afterwards.
func gevStandardErrors(logger zerolog.Logger, values []float64, p FittedParams) [3]float64 {
	stdErrs := [3]float64{math.NaN(), math.NaN(), math.NaN()}

	info := GEVFisherInformation(values, p.TailIndex, p.Location, p.Scale)
	units := [3]float64{1, p.Scale, p.Scale}
	standardized := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := info.At(i, j) * units[i] * units[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				logger.Warn().Msg("GEV Fisher information is not finite; confidence intervals unavailable")
				return stdErrs
			}
			standardized.SetSym(i, j, v)
		}
	}

	var inverse mat.Dense
	if err := inverse.Inverse(standardized); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			logger.Warn().Err(err).Msg("GEV Fisher information is singular; confidence intervals unavailable")
			return stdErrs
		}
		// Ill-conditioned, but the inverse was computed.
		logger.Debug().Err(err).Msg("GEV Fisher information is ill-conditioned")
	}

	sqrtN := math.Sqrt(float64(len(values)))
	for i := range stdErrs {
		variance := inverse.At(i, i)
		if variance < 0 || math.IsNaN(variance) {
			logger.Warn().Int("parameter", i).Float64("variance", variance).
				Msg("negative GEV variance; confidence interval unavailable")
			continue
		}
		stdErrs[i] = units[i] * math.Sqrt(variance) / sqrtN
	}
	return stdErrs
}
