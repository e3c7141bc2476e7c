package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "cwtpeaks",
		Short: "CWT ridge peak detection for chromatographic traces",
		Long: `cwtpeaks locates peaks in total-ion or extracted-ion chromatograms by
building a continuous wavelet transform scaleogram and tracking ridges of
local maxima from fine to coarse scales.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log ridge diagnostics at debug level")
	cmd.AddCommand(newDetectCmd(), newKernelCmd())

	return cmd
}
