package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/extract"
)

// defaultAnalysisRate is the nominal rate used to build prototype
// extractors for header rows. Headers never depend on the rate.
const defaultAnalysisRate = 44100

var extractCmd = &cobra.Command{
	Use:   "extract <path>...",
	Short: "Extract audio features from files or directories",
	Long: `Extract runs the configured extractor set over the given audio files.
Directory arguments are walked recursively for supported extensions
(.wav, .aif, .aiff, .mp3, .ogg, .oga); file arguments are taken as-is.

Each file becomes one row: the file path followed by every feature the
selected extractors produce, in a fixed column order.

Examples:
  # All extractors, CSV on stdout
  audiofeat extract album/

  # Pin the analysis rate and write to a file
  audiofeat extract --sample-rate 44100 -o features.csv album/ bonus.wav

  # Loudness and stereo features only, as JSON
  audiofeat extract --extractors loudness,stereo --format json mix.wav

  # Let two-channel extractors run on mono material
  audiofeat extract --mono-duplicate voice.wav`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()
	flags.StringP("output", "o", "", "write results to this file instead of stdout")
	flags.String("format", "csv", "output format (csv, json)")
	flags.Float64("sample-rate", 0, "resample input to this rate in Hz before analysis (0 keeps the source rate)")
	flags.Bool("mono-duplicate", false, "duplicate mono input to stereo so two-channel extractors run")
	flags.StringSlice("extractors", nil, "extractor subset to run (default all; see \"audiofeat list\")")
	flags.StringSlice("stats", nil, "pooled statistics for framed extractors (mean, stdev, var, median, min, max, skew, kurt)")

	bindFlags(extractCmd, "extract")
}

type fileResult struct {
	file string
	row  []float64
}

func runExtract(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(viper.GetString("extract.format"))
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported audio files under %s", strings.Join(args, ", "))
	}

	infos, err := selectExtractors(viper.GetStringSlice("extract.extractors"))
	if err != nil {
		return err
	}

	var opts []extract.Option
	if stats := viper.GetStringSlice("extract.stats"); len(stats) > 0 {
		opts = append(opts, extract.WithStats(stats...))
	}

	// Building the header first surfaces bad statistic names before any
	// file is decoded.
	header, err := headerRow(infos, opts)
	if err != nil {
		return err
	}

	sampleRate := viper.GetFloat64("extract.sample_rate")
	monoDuplicate := viper.GetBool("extract.mono_duplicate")

	logger.Info("extracting features",
		zap.Int("files", len(files)),
		zap.Int("extractors", len(infos)),
		zap.Int("columns", len(header)-1),
		zap.String("format", format))

	results := make([]fileResult, 0, len(files))
	failures := 0

	for _, path := range files {
		start := time.Now()

		row, err := extractFile(path, infos, opts, sampleRate, monoDuplicate)
		if err != nil {
			logger.Error("skipping file", zap.String("file", path), zap.Error(err))
			failures++
			continue
		}

		logger.Debug("extracted",
			zap.String("file", path),
			zap.Duration("elapsed", time.Since(start)))

		results = append(results, fileResult{file: path, row: row})
	}

	if len(results) > 0 {
		out := io.Writer(os.Stdout)
		if path := viper.GetString("extract.output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer f.Close()
			out = f

			logger.Info("writing results", zap.String("output", path))
		}

		switch format {
		case "csv":
			err = writeCSV(out, header, results)
		case "json":
			err = writeJSON(out, header, results)
		}
		if err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	if failures > 0 {
		return fmt.Errorf("failed to process %d of %d files", failures, len(files))
	}

	return nil
}

// collectFiles expands the command arguments into concrete file paths.
// Directories are walked for supported extensions; explicitly named
// files are kept regardless, so an unsupported one fails loudly later.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !audio.IsSupported(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// selectExtractors resolves a name subset against the catalog, keeping
// catalog order so column layout does not depend on flag spelling.
func selectExtractors(names []string) ([]extract.Info, error) {
	catalog := extract.Catalog()
	if len(names) == 0 {
		return catalog, nil
	}

	known := make(map[string]bool, len(catalog))
	for _, info := range catalog {
		known[info.Name] = true
	}

	want := make(map[string]bool, len(names))
	for _, name := range names {
		if !known[name] {
			return nil, fmt.Errorf("unknown extractor %q (available: %s)",
				name, strings.Join(catalogNames(catalog), ", "))
		}
		want[name] = true
	}

	var selected []extract.Info
	for _, info := range catalog {
		if want[info.Name] {
			selected = append(selected, info)
		}
	}

	return selected, nil
}

func catalogNames(infos []extract.Info) []string {
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

func headerRow(infos []extract.Info, opts []extract.Option) ([]string, error) {
	header := []string{"file"}

	for _, info := range infos {
		ext, err := info.New(defaultAnalysisRate, opts...)
		if err != nil {
			return nil, err
		}
		header = append(header, ext.Headers()...)
	}

	return header, nil
}

// extractFile decodes one file and runs every selected extractor over
// it. A channel-shape mismatch fills that extractor's columns with NaN
// instead of failing the file, so the table stays rectangular.
func extractFile(path string, infos []extract.Info, opts []extract.Option, targetRate float64, monoDuplicate bool) ([]float64, error) {
	var loadOpts []audio.LoadOption
	if targetRate > 0 {
		loadOpts = append(loadOpts, audio.WithTargetRate(targetRate))
	}

	buf, err := audio.Load(path, loadOpts...)
	if err != nil {
		return nil, err
	}

	if monoDuplicate && buf.Channels() == 1 {
		buf, err = audio.Stereo(buf.Channel(0), buf.Channel(0), buf.SampleRate())
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("decoded",
		zap.String("file", path),
		zap.Int("channels", buf.Channels()),
		zap.Float64("rate", buf.SampleRate()),
		zap.Duration("duration", buf.Duration()))

	var row []float64

	for _, info := range infos {
		ext, err := info.New(buf.SampleRate(), opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", info.Name, err)
		}

		vec, err := ext.Compute(buf)
		if err != nil {
			var shapeErr *extract.ShapeError
			if !errors.As(err, &shapeErr) {
				return nil, fmt.Errorf("%s: %w", info.Name, err)
			}

			logger.Warn("extractor skipped",
				zap.String("file", path),
				zap.String("extractor", info.Name),
				zap.Error(err))

			vec = nanVector(len(ext.Headers()))
		}

		row = append(row, vec...)
	}

	return row, nil
}

func nanVector(n int) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		vec[i] = math.NaN()
	}
	return vec
}

func writeCSV(out io.Writer, header []string, results []fileResult) error {
	w := csv.NewWriter(out)

	if err := w.Write(header); err != nil {
		return err
	}

	for _, res := range results {
		record := make([]string, 1, len(res.row)+1)
		record[0] = res.file
		for _, v := range res.row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeJSON(out io.Writer, header []string, results []fileResult) error {
	type record struct {
		File     string         `json:"file"`
		Features map[string]any `json:"features"`
	}

	records := make([]record, 0, len(results))
	for _, res := range results {
		features := make(map[string]any, len(res.row))
		for i, v := range res.row {
			features[header[i+1]] = jsonNumber(v)
		}
		records = append(records, record{File: res.file, Features: features})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// jsonNumber maps the non-finite values JSON cannot carry to null.
func jsonNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
