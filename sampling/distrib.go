// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYNLANG.
//
//  SYNLANG is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYNLANG is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYNLANG.  If not, see <https://www.gnu.org/licenses/>.

package sampling

import (
	"math"
	"sort"

	"synlang/merror"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

// RandSource is a source of uniformly distributed
// values from the [0, 1) interval (e.g. *rand.Rand).
type RandSource interface {
	Float64() float64
}

// Distribution is a normalized categorical distribution
// over a finite vocabulary. Weights sum to 1.0.
//
// Sampling maps a single uniform draw through a cumulative
// weight array using binary search.
type Distribution[T ~string] struct {
	items      []T
	weights    []float64
	cumulative []float64
}

// NewUniform creates a distribution where all vocabulary items
// have the same weight.
func NewUniform[T ~string](vocabulary []T) (*Distribution[T], error) {
	return NewDistribution(vocabulary, nil)
}

// NewDistribution creates a normalized distribution over vocabulary
// from (not necessarily normalized) weights.
// A nil or empty `freqs` produces a uniform distribution. Otherwise each
// key must be a vocabulary item and items missing in `freqs` get zero weight.
// The `freqs` map is never modified.
func NewDistribution[T ~string](vocabulary []T, freqs map[T]float64) (*Distribution[T], error) {
	if len(vocabulary) == 0 {
		return nil, merror.NewConfigError("cannot create distribution over an empty vocabulary")
	}
	ans := &Distribution[T]{
		items:      make([]T, len(vocabulary)),
		weights:    make([]float64, len(vocabulary)),
		cumulative: make([]float64, len(vocabulary)),
	}
	copy(ans.items, vocabulary)
	if len(freqs) == 0 {
		for i := range ans.weights {
			ans.weights[i] = 1
		}

	} else {
		for k, w := range freqs {
			if !collections.SliceContains(vocabulary, k) {
				return nil, merror.NewConfigError("unknown vocabulary item '%s'", k)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, merror.NewConfigError("invalid weight %v for item '%s'", w, k)
			}
		}
		for i, item := range ans.items {
			ans.weights[i] = freqs[item]
		}
	}
	if err := ans.normalize(len(freqs) > 0); err != nil {
		return nil, err
	}
	return ans, nil
}

func (d *Distribution[T]) normalize(userWeights bool) error {
	var total float64
	for _, w := range d.weights {
		total += w
	}
	if total == 0 {
		return merror.NewConfigError("weights sum to zero")
	}
	if math.IsInf(total, 0) {
		return merror.NewConfigError("weights sum overflows")
	}
	if userWeights && total != 1 {
		log.Debug().Float64("sum", total).Int("numItems", len(d.items)).Msg("normalizing weights")
	}
	lastPositive := 0
	var acc float64
	for i := range d.weights {
		d.weights[i] /= total
		acc += d.weights[i]
		d.cumulative[i] = acc
		if d.weights[i] > 0 {
			lastPositive = i
		}
	}
	// rounding must not leave a gap at the top of the [0, 1) interval
	// which would be mapped to trailing zero-weight items
	for i := lastPositive; i < len(d.cumulative); i++ {
		d.cumulative[i] = 1
	}
	return nil
}

// Draw samples one item with probability equal to its weight.
func (d *Distribution[T]) Draw(rnd RandSource) T {
	u := rnd.Float64()
	idx := sort.Search(len(d.cumulative), func(i int) bool {
		return d.cumulative[i] > u
	})
	if idx == len(d.items) { // only for a misbehaving source returning u >= 1
		idx = len(d.items) - 1
	}
	return d.items[idx]
}

// Weight returns a normalized weight of an item. For items
// outside of the vocabulary, 0 is returned.
func (d *Distribution[T]) Weight(item T) float64 {
	for i, v := range d.items {
		if v == item {
			return d.weights[i]
		}
	}
	return 0
}

// Items returns vocabulary items in their original order
func (d *Distribution[T]) Items() []T {
	ans := make([]T, len(d.items))
	copy(ans, d.items)
	return ans
}

// Weights returns item -> normalized weight mapping
func (d *Distribution[T]) Weights() map[T]float64 {
	ans := make(map[T]float64, len(d.items))
	for i, v := range d.items {
		ans[v] = d.weights[i]
	}
	return ans
}

func (d *Distribution[T]) Sum() float64 {
	var ans float64
	for _, w := range d.weights {
		ans += w
	}
	return ans
}
