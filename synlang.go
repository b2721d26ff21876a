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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"synlang/cnf"
	"synlang/generator"
	"synlang/results"
	"synlang/sampling"
	"synlang/vocab"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	summaryMaxItems = 10
)

var (
	version   string
	buildDate string
	gitCommit string
)

type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

// cmdOptions holds command line overrides; nil means
// "not specified"
type cmdOptions struct {
	NumSamples *int
	Seed       *uint64
}

func overrideConfWithCmd(conf *cnf.Conf, opts cmdOptions) error {
	if opts.NumSamples != nil {
		if *opts.NumSamples < 0 {
			return fmt.Errorf("invalid number of records %d", *opts.NumSamples)
		}
		conf.NumSamples = opts.NumSamples
	}
	if opts.Seed != nil {
		conf.Seed = *opts.Seed
	}
	return nil
}

func runGenerate(conf *cnf.Conf, out io.Writer) (results.Dataset, error) {
	logger := log.Logger.With().Str("runId", uuid.New().String()).Logger()

	var rnd sampling.RandSource
	if conf.Seed != 0 {
		rnd = generator.NewSeededSource(conf.Seed)
	}
	gen, err := generator.NewGenerator(conf.LemmaFreq, conf.NumberMarkerFreq, rnd)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	logger.Info().
		Int("numSamples", *conf.NumSamples).
		Uint64("seed", conf.Seed).
		Msg("generating dataset")

	dataset, err := gen.GenerateDataset(*conf.NumSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}
	if err := results.Persist(dataset, conf.OutputPath); err != nil {
		return nil, err
	}

	lemmaFreqs := dataset.LemmaFreqs()
	for _, item := range lemmaFreqs.Freqs.Cut(summaryMaxItems) {
		logger.Debug().
			Str("lemma", item.Word).
			Int64("freq", item.Freq).
			Float64("observed", item.Rel).
			Float64("expected", gen.LemmaDistrib().Weight(vocab.Lemma(item.Word))).
			Msg("lemma frequency")
	}
	logger.Info().
		Int("numRecords", dataset.Len()).
		Int("numUnknown", dataset.UnknownCount()).
		Str("outputPath", conf.OutputPath).
		Msg("dataset generated")

	for _, rec := range dataset.Head(*conf.PreviewSize) {
		fmt.Fprintf(
			out,
			"Lemma: %s, Number Marker: %s, Inflected Form: %s\n",
			rec.Lemma, rec.NumberMarker, rec.InflectedForm,
		)
	}
	return dataset, nil
}

func main() {
	version := VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	numSamples := flag.Int("n", 0, "number of records to generate (overrides config)")
	seed := flag.Uint64("seed", 0, "random seed (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "SYNLANG - a synthetic inflected verb forms generator\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] generate [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("synlang %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	var cmdOpts cmdOptions
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cmdOpts.NumSamples = numSamples
		case "seed":
			cmdOpts.Seed = seed
		}
	})

	conf := cnf.LoadConfig(flag.Arg(1))
	cnf.ApplyDefaults(conf)
	if err := overrideConfWithCmd(conf, cmdOpts); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize configuration")
	}
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.SetupLogging(conf.LoggingConf())
	if src := conf.GetSourcePath(); src != "" {
		log.Info().Str("path", src).Msg("loaded configuration")

	} else {
		log.Info().Msg("no configuration file specified, using built-in example weights")
	}

	switch action {
	case "test":
		log.Info().Msg("config OK")
	case "generate", "":
		if _, err := runGenerate(conf, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("failed to generate dataset")
		}
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
