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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() Dataset {
	return Dataset{
		{Lemma: "to be", NumberMarker: "he", InflectedForm: "is"},
		{Lemma: "to be", NumberMarker: "we", InflectedForm: "are"},
		{Lemma: "to go", NumberMarker: "they", InflectedForm: "go"},
		{Lemma: "to be", NumberMarker: "xyz", InflectedForm: "UNKNOWN"},
	}
}

func TestHead(t *testing.T) {
	ds := testDataset()
	assert.Len(t, ds.Head(2), 2)
	assert.Equal(t, ds[0], ds.Head(2)[0])
	assert.Len(t, ds.Head(10), 4)
	assert.Len(t, ds.Head(-1), 0)
	assert.Len(t, Dataset{}.Head(5), 0)
}

func TestUnknownCount(t *testing.T) {
	assert.Equal(t, 1, testDataset().UnknownCount())
	assert.Equal(t, 0, Dataset{}.UnknownCount())
}

func TestLemmaFreqs(t *testing.T) {
	fd := testDataset().LemmaFreqs()
	assert.Equal(t, int64(4), fd.SampleSize)
	require.Len(t, fd.Freqs, 2)
	assert.Equal(t, "to be", fd.Freqs[0].Word)
	assert.Equal(t, int64(3), fd.Freqs[0].Freq)
	assert.InDelta(t, 0.75, fd.Freqs[0].Rel, 1e-12)
	assert.InDelta(t, 0.25, fd.RelFreq("to go"), 1e-12)
	assert.Equal(t, 0.0, fd.RelFreq("to eat"))
}

func TestNumberMarkerFreqsTieOrder(t *testing.T) {
	fd := testDataset().NumberMarkerFreqs()
	require.Len(t, fd.Freqs, 4)
	assert.Equal(t, []string{"he", "they", "we", "xyz"}, []string{
		fd.Freqs[0].Word, fd.Freqs[1].Word, fd.Freqs[2].Word, fd.Freqs[3].Word})
}

func TestFreqsOfEmptyDataset(t *testing.T) {
	fd := Dataset{}.InflectedFormFreqs()
	assert.Equal(t, int64(0), fd.SampleSize)
	assert.Len(t, fd.Freqs, 0)
}

func TestMergeWith(t *testing.T) {
	fd1 := testDataset().LemmaFreqs()
	fd2 := Dataset{
		{Lemma: "to eat", NumberMarker: "he", InflectedForm: "eats"},
		{Lemma: "to go", NumberMarker: "he", InflectedForm: "goes"},
		{Lemma: "to go", NumberMarker: "it", InflectedForm: "goes"},
		{Lemma: "to go", NumberMarker: "we", InflectedForm: "go"},
	}.LemmaFreqs()
	fd1.MergeWith(fd2)
	assert.Equal(t, int64(8), fd1.SampleSize)
	assert.Equal(t, "to go", fd1.Freqs[0].Word)
	assert.Equal(t, int64(4), fd1.Freqs[0].Freq)
	assert.InDelta(t, 0.5, fd1.Freqs[0].Rel, 1e-12)
	assert.InDelta(t, 0.125, fd1.RelFreq("to eat"), 1e-12)
}

func TestCut(t *testing.T) {
	fd := testDataset().NumberMarkerFreqs()
	assert.Len(t, fd.Freqs.Cut(2), 2)
	assert.Len(t, fd.Freqs.Cut(100), 4)
}
