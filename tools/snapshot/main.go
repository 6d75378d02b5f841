package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"floatmenu/config"
	"floatmenu/log"
	"floatmenu/menu"
	"floatmenu/raster"
)

func main() {
	config.AddFlags(pflag.CommandLine)
	out := pflag.StringP("out", "o", "menu.png", "output PNG file")
	size := pflag.Int("size", menu.PreferredSize(2), "image edge in pixels")
	background := pflag.String("background", "", "background color, transparent when empty")
	highlight := pflag.IntSlice("highlight", nil, "sectors drawn in the highlight color")
	active := pflag.Bool("active", false, "draw the hub in its active state")
	pflag.Parse()

	if err := run(*out, *size, *background, *highlight, *active); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(out string, size int, background string, highlight []int, active bool) error {
	path, _ := pflag.CommandLine.GetString("config")
	cfg, err := config.Load(path, pflag.CommandLine)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	style, err := cfg.MenuStyle()
	if err != nil {
		return err
	}
	m := menu.New(style)
	m.Recompute(float64(size), float64(size))

	if len(highlight) > 0 {
		clr, err := cfg.Highlight()
		if err != nil {
			return err
		}
		for _, i := range highlight {
			m.SetSectorColor(i, clr)
		}
	}
	if active {
		clr, err := cfg.Active()
		if err != nil {
			return err
		}
		m.SetCenterLabelAndColor(cfg.Style.ActiveLabel, clr)
	}

	canvas := raster.New(size, size)
	defer canvas.Close()
	if background != "" {
		clr, err := config.ParseColor(background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		canvas.Fill(clr)
	}
	m.Render(canvas)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	log.Info("[snapshot] wrote %s (%dx%d)", out, size, size)
	return nil
}
