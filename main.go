package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"floatmenu/config"
	"floatmenu/game"
	"floatmenu/log"
	"floatmenu/menu"
)

func main() {
	config.AddFlags(pflag.CommandLine)
	pflag.Parse()

	path, _ := pflag.CommandLine.GetString("config")
	cfg, err := config.Load(path, pflag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	if cfg.Path == "" {
		target := path
		if target == "" {
			target = config.DEFAULT_FILE
		}
		if err := config.Save(target, cfg); err != nil {
			log.Warn("[config] could not write %s: %v", target, err)
		} else {
			log.Info("[config] config not found, wrote defaults to %s", target)
		}
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		side := menu.PreferredSize(ebiten.DeviceScaleFactor())
		cfg.Window.Width, cfg.Window.Height = side, side+config.PANEL_HEIGHT
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	ebiten.SetVsyncEnabled(true)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Error("[game] %v", err)
		os.Exit(1)
	}
}
