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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"synlang/merror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	ds := testDataset()
	require.NoError(t, Persist(ds, path))
	loaded, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, ds, loaded)
}

func TestPersistFieldNamesAndOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, Persist(testDataset().Head(1), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	src := string(data)
	assert.True(t, strings.HasPrefix(src, "["))
	iLemma := strings.Index(src, `"lemma"`)
	iMarker := strings.Index(src, `"number_marker"`)
	iForm := strings.Index(src, `"inflected_form"`)
	assert.True(t, iLemma >= 0 && iLemma < iMarker && iMarker < iForm)
}

func TestPersistEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Persist(nil, path))
	loaded, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 0)
	assert.NotNil(t, loaded)
}

func TestPersistOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, Persist(testDataset(), path))
	require.NoError(t, Persist(testDataset().Head(1), path))
	loaded, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestPersistMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dataset.json")
	err := Persist(testDataset(), path)
	var ioErr merror.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nothing.json"))
	var ioErr merror.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestLoadInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{foo"), 0644))
	_, err := LoadDataset(path)
	assert.Error(t, err)
}
