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

package results

import (
	"cmp"
	"slices"
)

type FreqDistribItemList []*FreqDistribItem

func (flist FreqDistribItemList) Cut(maxItems int) FreqDistribItemList {
	if len(flist) > maxItems {
		return flist[:maxItems]
	}
	return flist
}

// FreqDistribItem is an observed frequency of a single value
type FreqDistribItem struct {
	Word string `json:"word"`
	Freq int64  `json:"freq"`

	// Rel is a relative frequency (Freq / SampleSize)
	Rel float64 `json:"rel"`
}

// FreqDistrib describes how often individual values
// occur in a dataset.
type FreqDistrib struct {

	// SampleSize is the number of records the distribution
	// has been calculated from
	SampleSize int64 `json:"sampleSize"`

	// Freqs are sorted by frequency (descending), ties
	// are sorted alphabetically
	Freqs FreqDistribItemList `json:"freqs"`
}

func (res *FreqDistrib) FindItem(w string) *FreqDistribItem {
	for _, v := range res.Freqs {
		if v.Word == w {
			return v
		}
	}
	return nil
}

// RelFreq returns relative frequency of w or 0
// if w has not been observed.
func (res *FreqDistrib) RelFreq(w string) float64 {
	item := res.FindItem(w)
	if item == nil {
		return 0
	}
	return item.Rel
}

func (res *FreqDistrib) MergeWith(other *FreqDistrib) {
	res.SampleSize += other.SampleSize
	for _, v2 := range other.Freqs {
		v1 := res.FindItem(v2.Word)
		if v1 != nil {
			v1.Freq += v2.Freq

		} else {
			res.Freqs = append(res.Freqs, &FreqDistribItem{Word: v2.Word, Freq: v2.Freq})
		}
	}
	res.finalize()
}

func (res *FreqDistrib) finalize() {
	for _, v := range res.Freqs {
		if res.SampleSize > 0 {
			v.Rel = float64(v.Freq) / float64(res.SampleSize)

		} else {
			v.Rel = 0
		}
	}
	slices.SortFunc(res.Freqs, func(a, b *FreqDistribItem) int {
		if a.Freq != b.Freq {
			return cmp.Compare(b.Freq, a.Freq)
		}
		return cmp.Compare(a.Word, b.Word)
	})
}

func newFreqDistrib(ds Dataset, attr func(rec Record) string) *FreqDistrib {
	counts := make(map[string]int64)
	for _, rec := range ds {
		counts[attr(rec)]++
	}
	ans := &FreqDistrib{
		SampleSize: int64(len(ds)),
		Freqs:      make(FreqDistribItemList, 0, len(counts)),
	}
	for w, f := range counts {
		ans.Freqs = append(ans.Freqs, &FreqDistribItem{Word: w, Freq: f})
	}
	ans.finalize()
	return ans
}
