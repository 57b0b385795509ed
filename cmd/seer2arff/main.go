package main

// seer2arff converts an ASCII formatted fixed-width SEER extract into
// an ARFF file.  By default only the stage IV, deceased,
// died-of-cancer subset of records is emitted; --no-filter converts
// every record.

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jbdatko/seer2arff"
)

type options struct {
	splitMonths int
	splitSet    bool
	relation    string
	encoding    string
	noFilter    bool
}

func main() {

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seer2arff [options] seerfile outputfile\n\n")
		fmt.Fprintf(os.Stderr, "seer2arff converts an ASCII formatted SEER data set to ARFF format.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	timeFlag := pflag.IntP("time", "t", seer2arff.DefaultSurvivalSplitMonths,
		"Number of months on which the survival time recode is split")
	relationFlag := pflag.String("relation", "", "ARFF relation name")
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

	opts := options{
		splitMonths: *timeFlag,
		splitSet:    pflag.Lookup("time").Changed,
		relation:    *relationFlag,
		encoding:    *encodingFlag,
		noFilter:    *noFilterFlag,
	}

	if err := run(logger, opts, pflag.Arg(0), pflag.Arg(1)); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, opts options, infile, outfile string) error {

	cfg, err := seer2arff.LoadConfig()
	if err != nil {
		return err
	}
	if opts.splitSet {
		cfg.SurvivalSplitMonths = opts.splitMonths
	}
	if opts.relation != "" {
		cfg.Relation = opts.relation
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("using survival time recode split", zap.Int("months", cfg.SurvivalSplitMonths))

	attrs := seer2arff.BreastCancerAttributes(cfg)

	matches, err := countStageIVDead(attrs, infile, opts.encoding)
	if err != nil {
		return err
	}
	logger.Info("stage IV and deceased", zap.Int("records", matches))

	in, err := os.Open(infile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", infile, err)
	}
	defer in.Close()

	r, err := seer2arff.DecodeReader(in, opts.encoding)
	if err != nil {
		return err
	}

	out, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outfile, err)
	}

	pipeline := &seer2arff.Pipeline{Attrs: attrs.AttributeSet, Log: logger}
	if !opts.noFilter {
		pipeline.Filter = attrs.StageIVDeceased()
	}

	if _, err := pipeline.ToARFF(r, out); err != nil {
		out.Close()
		return fmt.Errorf("converting %s: %w", infile, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outfile, err)
	}

	return nil
}

// countStageIVDead makes a separate pass over the input to report how
// many records are stage IV and deceased, before any filtering on the
// cause of death.
func countStageIVDead(attrs *seer2arff.BreastCancerSet, path, encoding string) (int, error) {

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r, err := seer2arff.DecodeReader(f, encoding)
	if err != nil {
		return 0, err
	}

	return seer2arff.CountMatches(r, seer2arff.AllOf(attrs.Stage.IsStageIV, attrs.Vital.IsDead))
}
