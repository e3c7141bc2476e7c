package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-cwtpeaks/dsp/cwt"
	"github.com/cwbudde/algo-cwtpeaks/dsp/wavelet"
)

func newKernelCmd() *cobra.Command {
	var (
		scale float64
		name  string
		sigma float64
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print a wavelet kernel's lookup table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if list {
				return writeKernelNames(out)
			}

			k, err := wavelet.Lookup(name)
			if err != nil {
				return err
			}
			tf, err := cwt.New(k, cwt.WithParams(sigma))
			if err != nil {
				return err
			}
			lut, err := tf.LookupTable(scale)
			if err != nil {
				return err
			}

			return writeKernel(out, k, scale, lut)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&scale, "scale", 5, "scale (>= 1)")
	f.StringVar(&name, "kernel", wavelet.MexicanHat{}.Name(), "mother wavelet")
	f.Float64Var(&sigma, "sigma", 1, "kernel shape parameter")
	f.BoolVar(&list, "list", false, "list available kernels")

	return cmd
}

func writeKernelNames(w io.Writer) error {
	for _, n := range wavelet.Names() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}

	return nil
}

func writeKernel(w io.Writer, k wavelet.Kernel, scale float64, lut []float64) error {
	if _, err := fmt.Fprintf(w, "kernel: %s\nadmissibility: %.6f\nscale: %g\n\n",
		k.Name(), k.Admissibility(), scale); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Offset\tx\tpsi"); err != nil {
		return err
	}

	h := len(lut) / 2
	for i, v := range lut {
		off := i - h
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%.6f\n", off, float64(off)/scale, v); err != nil {
			return err
		}
	}

	return tw.Flush()
}
