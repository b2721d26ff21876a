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

package vocab

// UnknownForm is returned for any (lemma, marker) pair
// not present in a rule table.
const UnknownForm = "UNKNOWN"

// Lemma is a base (dictionary) form of a verb, e.g. "to be"
type Lemma string

func (l Lemma) String() string {
	return string(l)
}

// NumberMarker specifies a grammatical person/number category
// controlling verb agreement (e.g. "he", "they").
type NumberMarker string

func (m NumberMarker) String() string {
	return string(m)
}

// RuleKey is a composite key of the inflection table
type RuleKey struct {
	Lemma        Lemma
	NumberMarker NumberMarker
}

// RuleTable maps (lemma, marker) pairs to inflected forms.
// A table is expected to be read-only once created.
type RuleTable map[RuleKey]string

// InflectedForm returns a form matching the exact pair or UnknownForm
// in case there is no such rule.
func (rt RuleTable) InflectedForm(lemma Lemma, marker NumberMarker) string {
	form, ok := rt[RuleKey{Lemma: lemma, NumberMarker: marker}]
	if !ok {
		return UnknownForm
	}
	return form
}

func (rt RuleTable) Size() int {
	return len(rt)
}

// ----

const (
	LemmaToBe   Lemma = "to be"
	LemmaToHave Lemma = "to have"
	LemmaToGo   Lemma = "to go"
	LemmaToEat  Lemma = "to eat"

	MarkerHe   NumberMarker = "he"
	MarkerShe  NumberMarker = "she"
	MarkerIt   NumberMarker = "it"
	MarkerThey NumberMarker = "they"
	MarkerWe   NumberMarker = "we"
)

// DefaultLemmas returns a fresh copy of the built-in lemma vocabulary.
// The order is stable and it also defines the order of
// items in derived distributions.
func DefaultLemmas() []Lemma {
	return []Lemma{LemmaToBe, LemmaToHave, LemmaToGo, LemmaToEat}
}

// DefaultNumberMarkers returns a fresh copy of the built-in marker vocabulary.
func DefaultNumberMarkers() []NumberMarker {
	return []NumberMarker{MarkerHe, MarkerShe, MarkerIt, MarkerThey, MarkerWe}
}

// DefaultRules creates the built-in inflection table. Third person
// singular markers take the "-s" form, plural ones the bare form.
func DefaultRules() RuleTable {
	singular := []NumberMarker{MarkerHe, MarkerShe, MarkerIt}
	plural := []NumberMarker{MarkerThey, MarkerWe}
	forms := []struct {
		lemma    Lemma
		singular string
		plural   string
	}{
		{LemmaToBe, "is", "are"},
		{LemmaToHave, "has", "have"},
		{LemmaToGo, "goes", "go"},
		{LemmaToEat, "eats", "eat"},
	}
	ans := make(RuleTable, len(forms)*(len(singular)+len(plural)))
	for _, f := range forms {
		for _, m := range singular {
			ans[RuleKey{Lemma: f.lemma, NumberMarker: m}] = f.singular
		}
		for _, m := range plural {
			ans[RuleKey{Lemma: f.lemma, NumberMarker: m}] = f.plural
		}
	}
	return ans
}
