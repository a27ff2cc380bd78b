// Command scex extracts Supercell asset packages. Given a package file or a
// directory of packages it writes the decoded sprites (PNG) and tables (CSV)
// to an output directory, optionally processing files in parallel.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/remeh/sizedwaitgroup"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/scforge/scex"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		outDir    string
		parallel  bool
		deleteSrc bool
		verbose   bool
	)
	pflag.StringVarP(&outDir, "out", "o", "", "output directory (default: \"extracted\" next to the input)")
	pflag.BoolVarP(&parallel, "parallel", "p", false, "process files concurrently")
	pflag.BoolVar(&deleteSrc, "delete", false, "delete source files after successful extraction")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: scex [flags] <file-or-directory>\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if pflag.NArg() != 1 {
		pflag.Usage()
		return 2
	}
	input := pflag.Arg(0)

	info, err := os.Stat(input)
	if err != nil {
		logger.Error().Err(err).Str("path", input).Msg("cannot stat input")
		return 2
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(input)
		if err != nil {
			logger.Error().Err(err).Str("path", input).Msg("cannot read directory")
			return 2
		}
		for _, entry := range entries {
			if entry.IsDir() || !eligible(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(input, entry.Name()))
		}
		if outDir == "" {
			outDir = filepath.Join(input, "extracted")
		}
	} else {
		files = []string{input}
		if outDir == "" {
			outDir = filepath.Join(filepath.Dir(input), "extracted")
		}
	}

	if len(files) == 0 {
		logger.Warn().Str("path", input).Msg("no extractable files found")
		return 0
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", outDir).Msg("cannot create output directory")
		return 2
	}

	var failures atomic.Int64
	process := func(path string) {
		if err := extractFile(logger, path, outDir, deleteSrc); err != nil {
			logger.Error().Err(err).Str("file", filepath.Base(path)).Msg("extraction failed")
			failures.Add(1)
		}
	}

	if parallel {
		swg := sizedwaitgroup.New(runtime.NumCPU())
		for _, file := range files {
			swg.Add()
			go func(file string) {
				defer swg.Done()
				process(file)
			}(file)
		}
		swg.Wait()
	} else {
		for _, file := range files {
			process(file)
		}
	}

	if failures.Load() > 0 {
		return 1
	}
	return 0
}

// eligible reports whether a file name looks like an extractable package.
func eligible(name string) bool {
	return strings.HasSuffix(name, "_tex.sc") || strings.HasSuffix(name, ".csv")
}

// extractFile routes one package to the matching extractor by suffix and
// logs what came out of it.
func extractFile(logger zerolog.Logger, path, outDir string, deleteSrc bool) error {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch {
	case strings.HasSuffix(name, "_tex.sc"):
		result, err := scex.ExtractTex(data, name, outDir)
		if result != nil {
			for _, skipErr := range result.Skipped {
				logger.Warn().Err(skipErr).Str("file", name).Msg("sprite skipped")
			}
		}
		if err != nil {
			return err
		}
		logger.Info().Str("file", name).Int("sprites", len(result.Sprites)).Msg("extracted")

	case strings.HasSuffix(name, ".csv"):
		out, err := scex.ExtractCSV(data, name, outDir)
		if err != nil {
			return err
		}
		logger.Info().Str("file", name).Str("out", out).Msg("extracted")

	default:
		logger.Debug().Str("file", name).Msg("not a package, skipping")
		return nil
	}

	if deleteSrc {
		if err := os.Remove(path); err != nil {
			return err
		}
		logger.Debug().Str("file", name).Msg("source deleted")
	}

	return nil
}
