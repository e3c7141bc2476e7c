// Command cwtpeaks detects peaks in chromatographic intensity traces.
//
// Usage:
//
//	cwtpeaks detect [flags] FILE...
//	cwtpeaks kernel [flags]
//
// Each trace file holds one "time intensity" pair per line, separated by
// whitespace or a comma. Lines starting with # are ignored.
//
// Examples:
//
//	cwtpeaks detect run01.txt
//	cwtpeaks detect --min-scale 3 --max-scale 12 --score response --rank response:desc tic.txt
//	cwtpeaks detect --config peaks.yaml --workers 4 eic-*.txt
//	cwtpeaks kernel --scale 4 --sigma 1.5
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
