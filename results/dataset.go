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
	"synlang/vocab"
)

// Record is a single generated "sentence"
type Record struct {
	Lemma         vocab.Lemma        `json:"lemma"`
	NumberMarker  vocab.NumberMarker `json:"number_marker"`
	InflectedForm string             `json:"inflected_form"`
}

func (rec Record) IsUnknown() bool {
	return rec.InflectedForm == vocab.UnknownForm
}

// Dataset is an ordered list of records where
// the order matches the order of generation.
type Dataset []Record

func (ds Dataset) Len() int {
	return len(ds)
}

// Head returns up to n first records
func (ds Dataset) Head(n int) Dataset {
	if n < 0 {
		return Dataset{}
	}
	if len(ds) > n {
		return ds[:n]
	}
	return ds
}

// UnknownCount returns number of records with
// no matching inflection rule.
func (ds Dataset) UnknownCount() int {
	var ans int
	for _, rec := range ds {
		if rec.IsUnknown() {
			ans++
		}
	}
	return ans
}

func (ds Dataset) LemmaFreqs() *FreqDistrib {
	return newFreqDistrib(ds, func(rec Record) string { return string(rec.Lemma) })
}

func (ds Dataset) NumberMarkerFreqs() *FreqDistrib {
	return newFreqDistrib(ds, func(rec Record) string { return string(rec.NumberMarker) })
}

func (ds Dataset) InflectedFormFreqs() *FreqDistrib {
	return newFreqDistrib(ds, func(rec Record) string { return rec.InflectedForm })
}
