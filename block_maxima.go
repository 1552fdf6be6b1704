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
)

// BlockMaxima divides a sample into consecutive blocks of BlockSize points
// and keeps the maximum of every block. The last block is shorter when the
// sample length is not a multiple of the block size.
type BlockMaxima struct {
	dataset   *Sample
	blockSize int
	maxima    *Sample
}

// NewBlockMaxima computes the block maxima of sample. Every maximum keeps the
// key of the point it was taken from; when a block holds the maximum more
// than once, the first occurrence wins. The number of maxima is
// ceil(sample.Len() / blockSize).
//
// An error wrapping ErrInvalidArgument is returned when blockSize < 1.
func NewBlockMaxima(sample *Sample, blockSize int) (*BlockMaxima, error) {
	// Guard statements
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: block size %d must be >= 1", ErrInvalidArgument, blockSize)
	}

	n := sample.Len()
	numBlocks := (n + blockSize - 1) / blockSize
	keys := make([]float64, 0, numBlocks)
	values := make([]float64, 0, numBlocks)

	for start := 0; start < n; start += blockSize {
		end := min(start+blockSize, n)

		argmax := start
		for i := start + 1; i < end; i++ {
			if sample.values[i] > sample.values[argmax] {
				argmax = i
			}
		}

		keys = append(keys, sample.keys[argmax])
		values = append(values, sample.values[argmax])
	}

	return &BlockMaxima{
		dataset:   sample,
		blockSize: blockSize,
		maxima:    newSample(keys, values),
	}, nil
}

// Maxima returns the block maxima keyed by the keys of the original points.
func (bm *BlockMaxima) Maxima() *Sample {
	return bm.maxima
}

// BlockSize returns the number of points per block.
func (bm *BlockMaxima) BlockSize() int {
	return bm.blockSize
}

// Dataset returns the sample the block maxima were taken from.
func (bm *BlockMaxima) Dataset() *Sample {
	return bm.dataset
}

// BlockSeparators returns the key of the first point of every block.
func (bm *BlockMaxima) BlockSeparators() []float64 {
	separators := make([]float64, 0, bm.maxima.Len())
	for i := 0; i < bm.dataset.Len(); i += bm.blockSize {
		separators = append(separators, bm.dataset.keys[i])
	}
	return separators
}
