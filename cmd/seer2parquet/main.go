package main

// seer2parquet converts an ASCII formatted fixed-width SEER extract
// into a parquet file, using the same attribute table and record
// selection as seer2arff.  Missing values are written as parquet
// nulls.

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jbdatko/seer2arff"
)

func main() {

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seer2parquet [options] seerfile outputfile\n\n")
		fmt.Fprintf(os.Stderr, "seer2parquet converts an ASCII formatted SEER data set to a parquet file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	timeFlag := pflag.IntP("time", "t", seer2arff.DefaultSurvivalSplitMonths,
		"Number of months on which the survival time recode is split")
	encodingFlag := pflag.String("encoding", "",
		"Input text encoding (latin1, windows-1250, windows-1252)")
	noFilterFlag := pflag.Bool("no-filter", false,
		"Convert every record instead of the stage IV deceased subset")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Enable debug logging")
	pflag.Parse()

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(2)
	}

	logConfig := zap.NewProductionConfig()
	if *verboseFlag {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	err = run(logger, *timeFlag, pflag.Lookup("time").Changed, *encodingFlag,
		*noFilterFlag, pflag.Arg(0), pflag.Arg(1))
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, splitMonths int, splitSet bool, encoding string,
	noFilter bool, infile, outfile string) error {

	cfg, err := seer2arff.LoadConfig()
	if err != nil {
		return err
	}
	if splitSet {
		cfg.SurvivalSplitMonths = splitMonths
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("using survival time recode split", zap.Int("months", cfg.SurvivalSplitMonths))

	attrs := seer2arff.BreastCancerAttributes(cfg)

	in, err := os.Open(infile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", infile, err)
	}
	defer in.Close()

	r, err := seer2arff.DecodeReader(in, encoding)
	if err != nil {
		return err
	}

	pipeline := &seer2arff.Pipeline{Attrs: attrs.AttributeSet, Log: logger}
	if !noFilter {
		pipeline.Filter = attrs.StageIVDeceased()
	}

	if _, err := pipeline.ToParquet(r, outfile); err != nil {
		return fmt.Errorf("converting %s: %w", infile, err)
	}

	return nil
}
