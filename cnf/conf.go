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

package cnf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"synlang/merror"
	"synlang/vocab"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltNumSamples  = 100
	dfltOutputPath  = "synthetic_dataset.json"
	dfltPreviewSize = 5
	dfltLogLevel    = "info"
)

// Conf is a global configuration of the app
type Conf struct {
	LemmaFreq        map[string]float64 `json:"lemmaFreq"`
	NumberMarkerFreq map[string]float64 `json:"numberMarkerFreq"`
	OutputPath       string             `json:"outputPath"`

	// NumSamples and PreviewSize are pointers so an explicit
	// zero can be told apart from a missing value
	NumSamples  *int `json:"numSamples"`
	PreviewSize *int `json:"previewSize"`

	// Seed initializes the random source. Zero means
	// a random seed (i.e. non-reproducible runs).
	Seed     uint64           `json:"seed"`
	LogFile  string           `json:"logFile"`
	LogLevel logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) LoggingConf() logging.LoggingConf {
	return logging.LoggingConf{
		Path:  conf.LogFile,
		Level: conf.LogLevel,
	}
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from. For a built-in config,
// an empty string is returned.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" || filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// Validate checks values which cannot be fixed by applying
// defaults.
func (conf *Conf) Validate() error {
	if conf.NumSamples == nil {
		return merror.NewConfigError("numSamples not specified")
	}
	if *conf.NumSamples < 0 {
		return merror.NewConfigError("numSamples must be >= 0, got %d", *conf.NumSamples)
	}
	if conf.PreviewSize == nil {
		return merror.NewConfigError("previewSize not specified")
	}
	if *conf.PreviewSize < 0 {
		return merror.NewConfigError("previewSize must be >= 0, got %d", *conf.PreviewSize)
	}
	if !conf.LogLevel.IsValid() {
		return merror.NewConfigError("invalid logLevel '%s'", conf.LogLevel)
	}
	if conf.OutputPath == "" {
		return merror.NewConfigError("outputPath not specified")
	}
	outDir := filepath.Dir(conf.OutputPath)
	isDir, err := fs.IsDir(outDir)
	if err != nil {
		return fmt.Errorf("failed to test output directory %s: %w", outDir, err)
	}
	if !isDir {
		return merror.NewConfigError("output directory %s does not exist", outDir)
	}
	lemmas := vocab.DefaultLemmas()
	for k := range conf.LemmaFreq {
		if !collections.SliceContains(lemmas, vocab.Lemma(k)) {
			return merror.NewConfigError("lemmaFreq: unknown lemma '%s'", k)
		}
	}
	markers := vocab.DefaultNumberMarkers()
	for k := range conf.NumberMarkerFreq {
		if !collections.SliceContains(markers, vocab.NumberMarker(k)) {
			return merror.NewConfigError("numberMarkerFreq: unknown number marker '%s'", k)
		}
	}
	return nil
}

// ExampleConf returns a configuration with illustrative
// non-uniform weights used when no config file is provided.
func ExampleConf() *Conf {
	return &Conf{
		LemmaFreq: map[string]float64{
			"to be":   0.4,
			"to have": 0.3,
			"to go":   0.2,
			"to eat":  0.1,
		},
		NumberMarkerFreq: map[string]float64{
			"he":   0.25,
			"she":  0.25,
			"it":   0.1,
			"they": 0.3,
			"we":   0.1,
		},
		NumSamples:  intPtr(dfltNumSamples),
		OutputPath:  dfltOutputPath,
		PreviewSize: intPtr(dfltPreviewSize),
		LogLevel:    dfltLogLevel,
	}
}

func intPtr(v int) *int {
	return &v
}

// LoadConfig reads a JSON configuration. An empty path
// produces ExampleConf.
func LoadConfig(path string) *Conf {
	if path == "" {
		return ExampleConf()
	}
	isFile, err := fs.IsFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	if !isFile {
		log.Fatal().Str("path", path).Msg("Cannot load config - file not found")
	}
	conf, err := ParseConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return conf
}

func ParseConfig(path string) (*Conf, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Conf
	conf.srcPath = path
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &conf, nil
}

// ApplyDefaults sets default values for unspecified items.
// It must be called before the logging is set up as it
// also provides a default log level.
func ApplyDefaults(conf *Conf) {
	if conf.NumSamples == nil {
		conf.NumSamples = intPtr(dfltNumSamples)
		log.Warn().Msgf("numSamples not specified, using default: %d", dfltNumSamples)
	}
	if conf.OutputPath == "" {
		conf.OutputPath = dfltOutputPath
		log.Warn().Msgf("outputPath not specified, using default: %s", dfltOutputPath)
	}
	if conf.PreviewSize == nil {
		conf.PreviewSize = intPtr(dfltPreviewSize)
		log.Warn().Msgf("previewSize not specified, using default: %d", dfltPreviewSize)
	}
	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}
	if len(conf.LemmaFreq) == 0 {
		log.Warn().Msg("lemmaFreq not specified, using uniform distribution")
	}
	if len(conf.NumberMarkerFreq) == 0 {
		log.Warn().Msg("numberMarkerFreq not specified, using uniform distribution")
	}
}
