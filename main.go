// Copyright
// SPDX-License-Identifier: MIT
// scrollcue: declarative scroll-position cues for scrollable regions, with a TUI demo
package main

import (
	"flag"
	"fmt"
	"os"

	"scrollcue/internal/config"
	"scrollcue/internal/tui"
)

const Version = "0.3.0"

func main() {
	fs := flag.NewFlagSet("scrollcue", flag.ExitOnError)
	fs.Usage = usage
	cfgPath := fs.String("config", "", "Path to a scrollcue options JSON file")
	writeCfg := fs.Bool("write-config", false, "Write the effective options to --config and exit")
	animation := fs.String("animation", "", "Animation mode: instant|eased|smooth")
	threshold := fs.Float64("threshold", -1, "Boundary threshold in cells (>= 0)")
	targetMode := fs.String("target-mode", "", "Click target model: indicator|separate")
	debug := fs.Bool("debug", false, "Verbose engine diagnostics")
	version := fs.Bool("version", false, "Print version and exit")
	_ = fs.Parse(os.Args[1:])

	if *version {
		fmt.Println("scrollcue", Version)
		return
	}

	opts := config.Default()
	if *cfgPath != "" && !*writeCfg {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "scrollcue:", err)
			os.Exit(1)
		}
		opts = loaded
	}

	// Flags override the file.
	if *animation != "" {
		opts.Animation = *animation
	}
	if *threshold >= 0 {
		opts.Threshold = *threshold
	}
	if *targetMode != "" {
		opts.TargetMode = *targetMode
	}
	if *debug {
		opts.Debug = true
	}

	if *writeCfg {
		if *cfgPath == "" {
			fmt.Fprintln(os.Stderr, "scrollcue: --write-config requires --config PATH")
			os.Exit(1)
		}
		if err := config.Save(*cfgPath, opts); err != nil {
			fmt.Fprintln(os.Stderr, "scrollcue:", err)
			os.Exit(1)
		}
		fmt.Println("wrote", *cfgPath)
		return
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "scrollcue:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Print(`scrollcue ` + Version + `
Marker-driven scroll cues: indicators that show when a region can scroll
further, and click targets that jump by pixels, percent, or items.
USAGE
  scrollcue [options]
OPTIONS
  --config PATH        Load options from a JSON file
  --write-config       Write the effective options to --config and exit
  --animation MODE     instant | eased | smooth (default: smooth)
  --threshold N        Boundary tolerance in cells (default: 1)
  --target-mode MODE   indicator | separate (default: indicator)
  --debug              Stream engine diagnostics into the footer
  --version            Print version
DEMO KEYS
  h/l  page the card strip by item     j/k  scroll the log
  g/G  jump log to top/bottom          c    collapse/expand the strip
  a    cycle animation mode            d    toggle state-diff overlay
  y    copy engine state to clipboard  q    quit

`)
}
