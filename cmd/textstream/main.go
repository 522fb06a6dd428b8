// Copyright 2025 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command textstream streams a file (or stdin) through a charset
// decoder and writes UTF-8 to a file (or stdout).
package main

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pingcap/textstream/pkg/charset"
	"github.com/pingcap/textstream/pkg/textstream"
)

type config struct {
	Charset  string `toml:"charset"`
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	LogLevel string `toml:"log-level"`
	LogFile  string `toml:"log-file"`
}

func defaultConfig() *config {
	return &config{
		Charset:  "utf-8",
		Input:    "-",
		Output:   "-",
		LogLevel: "warn",
	}
}

func main() {
	cfg := defaultConfig()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "textstream",
		Short:         "textstream converts text from a source charset to UTF-8.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				fileCfg := defaultConfig()
				if _, err := toml.DecodeFile(configFile, fileCfg); err != nil {
					return errors.Annotatef(err, "load config %s", configFile)
				}
				// Flags set on the command line win over the file.
				applyUnlessChanged(cmd, "charset", &cfg.Charset, fileCfg.Charset)
				applyUnlessChanged(cmd, "input", &cfg.Input, fileCfg.Input)
				applyUnlessChanged(cmd, "output", &cfg.Output, fileCfg.Output)
				applyUnlessChanged(cmd, "log-level", &cfg.LogLevel, fileCfg.LogLevel)
				applyUnlessChanged(cmd, "log-file", &cfg.LogFile, fileCfg.LogFile)
			}
			return run(cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.Charset, "charset", "c", cfg.Charset, "source charset label, e.g. windows-1252")
	flags.StringVarP(&cfg.Input, "input", "i", cfg.Input, "input file, - for stdin")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file, - for stdout")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file, empty for stderr")
	flags.StringVar(&configFile, "config", "", "TOML config file; flags override its values")

	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		log.Error("textstream failed", zap.Error(err))
		os.Exit(1)
	}
}

func applyUnlessChanged(cmd *cobra.Command, name string, dst *string, v string) {
	if !cmd.Flags().Changed(name) {
		*dst = v
	}
}

func run(cfg *config) (err error) {
	logger, props, err := log.InitLogger(&log.Config{
		Level: cfg.LogLevel,
		File:  log.FileLogConfig{Filename: cfg.LogFile},
	})
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(logger, props)

	cs, err := charset.Lookup(cfg.Charset)
	if err != nil {
		return errors.Trace(err)
	}

	in := io.Reader(os.Stdin)
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Trace(err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Trace(err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Trace(cerr)
			}
		}()
		out = f
	}

	tr, err := textstream.NewReader(in, cs)
	if err != nil {
		return errors.Trace(err)
	}
	written, err := io.Copy(out, tr)
	if err != nil {
		return errors.Annotatef(err, "transcode %s", cfg.Input)
	}
	log.Info("transcode finished",
		zap.String("charset", string(cs)),
		zap.Int64("writtenBytes", written))
	return nil
}
