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

package generator

import (
	"fmt"
	"math/rand/v2"

	"synlang/merror"
	"synlang/results"
	"synlang/sampling"
	"synlang/vocab"
)

// MaxDatasetSize is the largest number of records a single
// GenerateDataset call accepts.
const MaxDatasetSize = 100_000_000

// Generator produces synthetic (lemma, number marker, inflected form)
// records by independent sampling of a lemma and a number marker.
//
// A Generator is not safe for concurrent use as it owns a single
// random source.
type Generator struct {
	rules      vocab.RuleTable
	lemmaDist  *sampling.Distribution[vocab.Lemma]
	markerDist *sampling.Distribution[vocab.NumberMarker]
	rnd        sampling.RandSource
}

// NewGenerator creates a generator over the built-in vocabularies
// and inflection table. Both `lemmaFreq` and `markerFreq` are optional
// (nil = uniform distribution). The maps are not modified.
// For `rnd` == nil, a randomly seeded source is used.
func NewGenerator(
	lemmaFreq map[string]float64,
	markerFreq map[string]float64,
	rnd sampling.RandSource,
) (*Generator, error) {
	lemmaDist, err := sampling.NewDistribution(vocab.DefaultLemmas(), toVocabKeys[vocab.Lemma](lemmaFreq))
	if err != nil {
		return nil, fmt.Errorf("invalid lemma distribution: %w", err)
	}
	markerDist, err := sampling.NewDistribution(
		vocab.DefaultNumberMarkers(), toVocabKeys[vocab.NumberMarker](markerFreq))
	if err != nil {
		return nil, fmt.Errorf("invalid number marker distribution: %w", err)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		rules:      vocab.DefaultRules(),
		lemmaDist:  lemmaDist,
		markerDist: markerDist,
		rnd:        rnd,
	}, nil
}

// NewSeededSource creates a deterministic random source
// usable with NewGenerator.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func toVocabKeys[T ~string](freqs map[string]float64) map[T]float64 {
	if freqs == nil {
		return nil
	}
	ans := make(map[T]float64, len(freqs))
	for k, v := range freqs {
		ans[T(k)] = v
	}
	return ans
}

func (g *Generator) LemmaDistrib() *sampling.Distribution[vocab.Lemma] {
	return g.lemmaDist
}

func (g *Generator) NumberMarkerDistrib() *sampling.Distribution[vocab.NumberMarker] {
	return g.markerDist
}

func (g *Generator) SampleLemma() vocab.Lemma {
	return g.lemmaDist.Draw(g.rnd)
}

func (g *Generator) SampleNumberMarker() vocab.NumberMarker {
	return g.markerDist.Draw(g.rnd)
}

// InflectedForm looks up the form for the exact pair. Values outside
// of the vocabularies are accepted and produce vocab.UnknownForm.
func (g *Generator) InflectedForm(lemma vocab.Lemma, marker vocab.NumberMarker) string {
	return g.rules.InflectedForm(lemma, marker)
}

// GenerateRecord draws a lemma, then a number marker and
// resolves the matching inflected form.
func (g *Generator) GenerateRecord() results.Record {
	lemma := g.SampleLemma()
	marker := g.SampleNumberMarker()
	return results.Record{
		Lemma:         lemma,
		NumberMarker:  marker,
		InflectedForm: g.InflectedForm(lemma, marker),
	}
}

// GenerateDataset creates exactly n records in order of generation.
func (g *Generator) GenerateDataset(n int) (results.Dataset, error) {
	if n < 0 || n > MaxDatasetSize {
		return nil, merror.NewConfigError(
			"invalid dataset size %d (allowed range is 0..%d)", n, MaxDatasetSize)
	}
	ans := make(results.Dataset, 0, n)
	for i := 0; i < n; i++ {
		ans = append(ans, g.GenerateRecord())
	}
	return ans, nil
}
