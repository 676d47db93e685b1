// Command wavexform generates sine and triangle waveforms and applies
// affine time-domain transforms to them.
//
// Usage:
//
//	wavexform <command> [flags]
//
// Examples:
//
//	wavexform gen sine --freq 5 --fs 200 --t1 2
//	wavexform gen triangle --summary
//	wavexform transform sine --op combined --tau 0.3 --scale 1.5 --plot out.png
//	wavexform demo --out-dir plots
//	wavexform info
//
// Flag defaults can be overridden with WAVEXFORM_* environment variables,
// optionally read from a .env file.
package main

import "github.com/cwbudde/algo-wavexform/cmd/wavexform/commands"

func main() {
	commands.Execute()
}
