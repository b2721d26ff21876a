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
	"os"
	"path/filepath"

	"synlang/merror"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	artifactFilePerm = 0644
	artifactIndent   = "  "
)

// Persist writes the whole dataset to a JSON file (an array of records),
// replacing any existing content. The target directory must exist.
func Persist(ds Dataset, path string) error {
	dirPath := filepath.Dir(path)
	isDir, err := fs.IsDir(dirPath)
	if err != nil {
		return merror.IOError{Msg: "failed to test output directory", Path: dirPath, Err: err}
	}
	if !isDir {
		return merror.IOError{Msg: "output directory does not exist", Path: dirPath}
	}
	if ds == nil {
		ds = Dataset{}
	}
	data, err := sonic.ConfigStd.MarshalIndent(ds, "", artifactIndent)
	if err != nil {
		return merror.IOError{Msg: "failed to encode dataset", Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, artifactFilePerm); err != nil {
		return merror.IOError{Msg: "failed to write dataset", Path: path, Err: err}
	}
	log.Info().
		Str("path", path).
		Int("numRecords", len(ds)).
		Msg("dataset saved")
	return nil
}

// LoadDataset reads back a dataset previously written by Persist
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, merror.IOError{Msg: "failed to read dataset", Path: path, Err: err}
	}
	var ans Dataset
	if err := sonic.ConfigStd.Unmarshal(data, &ans); err != nil {
		return nil, merror.IOError{Msg: "failed to decode dataset", Path: path, Err: err}
	}
	if ans == nil {
		ans = Dataset{}
	}
	return ans, nil
}
