package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"floatmenu/config"
	"floatmenu/log"
	"floatmenu/term"
)

func main() {
	config.AddFlags(pflag.CommandLine)
	pflag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	path, _ := pflag.CommandLine.GetString("config")
	cfg, err := config.Load(path, pflag.CommandLine)
	if err != nil {
		return err
	}

	// the screen belongs to bubbletea; keep routine logs off it
	log.SetLevel(log.LevelWarn)
	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	style, err := cfg.MenuStyle()
	if err != nil {
		return err
	}
	highlight, err := cfg.Highlight()
	if err != nil {
		return err
	}
	active, err := cfg.Active()
	if err != nil {
		return err
	}

	return term.Run(term.Options{
		Style:       style,
		Highlight:   highlight,
		Active:      active,
		ActiveLabel: cfg.Style.ActiveLabel,
		TouchSlop:   cfg.Input.TouchSlop,
	})
}
