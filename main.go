package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "reload prefabs/ from disk when they change")
	mute := flag.Bool("mute", false, "start without an audio device")
	scale := flag.Float64("scale", 1.5, "window size as a multiple of the 320x480 canvas")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{Debug: *debug, Watch: *watch, Mute: *mute})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	s := *scale
	ebiten.SetWindowSize(int(game.width*s), int(game.height*s))
	ebiten.SetWindowTitle("blackcat")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
