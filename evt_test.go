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
	"math/rand/v2"
	"testing"
)

const floatToleranceForEVTTest = 1e-9

var (
	defaultSeed0 uint64 = 0x7fa2_2276_889c_4782
	defaultSeed1 uint64 = 0xaf4f_33b8_2757_b871
)

func almostEqual(a, b, tolerance float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return math.Abs(a-b) <= tolerance
}

func newPRNG(seed ...uint64) *rand.Rand {
	seed0 := defaultSeed0
	seed1 := defaultSeed1
	if len(seed) > 0 {
		seed0 = seed[0]
		if len(seed) > 1 {
			seed1 = seed[1]
		}
	}

	src := rand.NewPCG(seed0, seed1)
	return rand.New(src)
}

// generateParetoData draws n values from the standard Pareto distribution
// with tail index tailIndex (support x >= 1) by inverse transform sampling.
func generateParetoData(n int, tailIndex float64, seed ...uint64) []float64 {
	prng := newPRNG(seed...)
	data := make([]float64, n)
	for i := range data {
		u := 1 - prng.Float64() // (0, 1]
		data[i] = math.Pow(u, -tailIndex)
	}
	return data
}

// generateGPDData draws n excesses from the GPD with location 0.
func generateGPDData(n int, tailIndex, scale float64, seed ...uint64) []float64 {
	prng := newPRNG(seed...)
	data := make([]float64, n)
	for i := range data {
		u := 1 - prng.Float64()
		data[i] = scale / tailIndex * (math.Pow(u, -tailIndex) - 1)
	}
	return data
}

// generateGEVData draws n values from the GEV distribution.
func generateGEVData(n int, tailIndex, loc, scale float64, seed ...uint64) []float64 {
	prng := newPRNG(seed...)
	data := make([]float64, n)
	for i := range data {
		u := 1 - prng.Float64()
		data[i] = loc + scale/tailIndex*(math.Pow(-math.Log(u), -tailIndex)-1)
	}
	return data
}

// exponentialTailPOT returns the peaks over threshold 0 of the sample
// [e^0, e^1, e^2, e^3, e^4].
func exponentialTailPOT(t *testing.T) *PeaksOverThreshold {
	t.Helper()

	values := make([]float64, 5)
	for i := range values {
		values[i] = math.Exp(float64(i))
	}
	return mustPOT(t, values, 0)
}

func mustSample(t testing.TB, values []float64) *Sample {
	t.Helper()

	sample, err := NewSampleFromValues(values)
	if err != nil {
		t.Fatalf("NewSampleFromValues failed: %v", err)
	}
	return sample
}

func mustPOT(t testing.TB, values []float64, threshold float64) *PeaksOverThreshold {
	t.Helper()

	pot, err := NewPeaksOverThreshold(mustSample(t, values), threshold)
	if err != nil {
		t.Fatalf("NewPeaksOverThreshold failed: %v", err)
	}
	return pot
}

func mustBlockMaxima(t testing.TB, values []float64, blockSize int) *BlockMaxima {
	t.Helper()

	bm, err := NewBlockMaxima(mustSample(t, values), blockSize)
	if err != nil {
		t.Fatalf("NewBlockMaxima failed: %v", err)
	}
	return bm
}

func assertEstimate(t *testing.T, name string, actual Estimate, expected [3]float64, tolerance float64) {
	t.Helper()

	for i, label := range []string{"estimate", "CI lower", "CI upper"} {
		if !almostEqual(actual.Array()[i], expected[i], tolerance) {
			t.Errorf("%s %s: expected %.10f, got %.10f", name, label, expected[i], actual.Array()[i])
		}
	}
}
