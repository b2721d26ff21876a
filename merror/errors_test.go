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

package merror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError("weights of %s sum to zero", "lemmaFreq")
	assert.Equal(t, "weights of lemmaFreq sum to zero", err.Error())
}

func TestConfigErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("failed to create generator: %w", NewConfigError("foo"))
	var cErr ConfigError
	assert.True(t, errors.As(wrapped, &cErr))
	assert.Equal(t, "foo", cErr.Msg)
}

func TestIOErrorUnwrap(t *testing.T) {
	err := IOError{Msg: "failed to write dataset", Path: "/x/y.json", Err: fs.ErrPermission}
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "/x/y.json")
}

func TestMarshalEmptyError(t *testing.T) {
	data, err := json.Marshal(ConfigError{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestMarshalConfigError(t *testing.T) {
	data, err := json.Marshal(ConfigError{Msg: "bad weight"})
	assert.NoError(t, err)
	assert.Equal(t, `"bad weight"`, string(data))
}
