package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-cwtpeaks/measure/peak"
)

func newDetectCmd() *cobra.Command {
	var (
		configPath string
		flags      = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "detect [flags] FILE...",
		Short: "Detect peaks in one or more trace files",
		Example: `cwtpeaks detect tic.txt
cwtpeaks detect --min-scale 2 --max-scale 10 --score response --rank response:desc eic-*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			applyFlagOverrides(&cfg, flags, cmd.Flags())

			opts, err := cfg.DetectorOptions()
			if err != nil {
				return err
			}
			d, err := peak.NewDetector(append(opts, peak.WithLogger(log.StandardLogger()))...)
			if err != nil {
				return err
			}

			channels := make([]peak.Channel, len(args))
			for i, path := range args {
				tr, err := LoadTrace(path)
				if err != nil {
					return err
				}
				log.WithField("file", path).Debugf("loaded %d samples", len(tr.Intensity))
				channels[i] = peak.Channel{Identity: cfg.Channel, Signal: tr.Intensity, Time: tr.Time}
			}

			results, err := d.DetectChannels(cmd.Context(), channels, cfg.Workers)
			if err != nil {
				return err
			}

			return writePeaks(cmd.OutOrStdout(), args, results, cfg.Scorers)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.IntVar(&flags.MinScale, "min-scale", flags.MinScale, "minimum ridge length in scales")
	f.IntVar(&flags.MaxScale, "max-scale", flags.MaxScale, "number of scales in the scaleogram")
	f.Float64Var(&flags.Percentile, "percentile", flags.Percentile, "seed threshold percentile of the normalized signal")
	f.IntVar(&flags.ScaleDiff, "scale-diff", flags.ScaleDiff, "ridge search radius in samples")
	f.StringVar(&flags.Kernel, "kernel", flags.Kernel, "mother wavelet (mexican-hat, ricker)")
	f.Float64Var(&flags.Sigma, "sigma", flags.Sigma, "kernel shape parameter")
	f.StringVar(&flags.Method, "method", flags.Method, "transform evaluation: direct or fft")
	f.Float64Var(&flags.Channel, "channel", flags.Channel, "channel identity copied into every peak, e.g. m/z")
	f.StringArrayVar(&flags.Scorers, "score", nil, "ridge scorer to evaluate (repeatable)")
	f.StringArrayVar(&flags.Ranking, "rank", nil, "ranking criterion name[:asc|desc] (repeatable)")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "concurrent files (0 = unlimited)")

	return cmd
}

// applyFlagOverrides copies explicitly set flags from src into cfg.
func applyFlagOverrides(cfg *Config, src Config, fs *pflag.FlagSet) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}

	set("min-scale", func() { cfg.MinScale = src.MinScale })
	set("max-scale", func() { cfg.MaxScale = src.MaxScale })
	set("percentile", func() { cfg.Percentile = src.Percentile })
	set("scale-diff", func() { cfg.ScaleDiff = src.ScaleDiff })
	set("kernel", func() { cfg.Kernel = src.Kernel })
	set("sigma", func() { cfg.Sigma = src.Sigma })
	set("method", func() { cfg.Method = src.Method })
	set("channel", func() { cfg.Channel = src.Channel })
	set("score", func() { cfg.Scorers = src.Scorers })
	set("rank", func() { cfg.Ranking = src.Ranking })
	set("workers", func() { cfg.Workers = src.Workers })
}

func writePeaks(w io.Writer, files []string, results []peak.Result, scorers []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprint(tw, "File\tChannel\tApex\tTime\tIntensity"); err != nil {
		return err
	}
	for _, name := range scorers {
		if _, err := fmt.Fprintf(tw, "\t%s", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}

	for i, res := range results {
		for j, p := range res.Peaks {
			if _, err := fmt.Fprintf(tw, "%s\t%g\t%d\t%.4f\t%.4f",
				files[i], p.Channel, p.ApexIndex, p.ApexTime, p.ApexIntensity); err != nil {
				return err
			}
			for _, name := range scorers {
				cell := "-"
				if v, ok := res.Scores[j].Value(name); ok {
					cell = strconv.FormatFloat(v, 'f', 4, 64)
				}
				if _, err := fmt.Fprintf(tw, "\t%s", cell); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}
