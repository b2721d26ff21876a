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
	"fmt"
)

// ConfigError signals an invalid or degenerate setup
// (e.g. weights summing to zero). It is always fatal
// for the operation which produced it.
type ConfigError struct {
	Msg string
}

func (err ConfigError) Error() string {
	return err.Msg
}

func (err ConfigError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

func NewConfigError(format string, args ...any) ConfigError {
	return ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// ---------------------------

// IOError wraps a failed read/write of a dataset artifact
type IOError struct {
	Msg  string
	Path string
	Err  error
}

func (err IOError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%s (%s): %s", err.Msg, err.Path, err.Err)
	}
	return fmt.Sprintf("%s (%s)", err.Msg, err.Path)
}

func (err IOError) Unwrap() error {
	return err.Err
}

func (err IOError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Error())
	}
	return json.Marshal(nil)
}
