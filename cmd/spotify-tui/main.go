package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/spotify-analysis/internal/config"
	"github.com/handiism/spotify-analysis/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	inputFlag := flag.String("input", "", "Dataset CSV (overrides config)")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *inputFlag != "" {
		settings.InputPath = *inputFlag
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
