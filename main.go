// Package main provides the entry point for the goTang puzzle.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"gotang/internal/app"
	"gotang/internal/tangram"
	"gotang/ui/canvas"
	"gotang/ui/prefs"
)

const (
	appTitle   = "goTang"
	appVersion = "0.1.0"
)

func main() {
	draft := flag.Bool("draft", false, "draw shapes in draft mode (outlines, inner circle, center cross)")
	printOut := flag.Bool("print", false, "print shape locations on exit")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, appVersion)

	appPrefs := prefs.Load()

	cfg := app.DefaultConfig()
	cfg.Docking.AngularCos = math.Cos(appPrefs.FloatWithFallback(prefs.KeyAngularDeg, 20) * math.Pi / 180)
	cfg.Docking.Distance = appPrefs.FloatWithFallback(prefs.KeyDistance, 10)
	cfg.Draft = *draft || appPrefs.Bool(prefs.KeyDraft, false)

	pieces, err := tangram.Pieces()
	if err != nil {
		log.Fatalf("Building tangram set: %v", err)
	}
	tangram.Layout(pieces, tangram.FieldWidth, tangram.FieldHeight)

	state := app.NewState(cfg, pieces)

	a := fyneapp.New()
	win := a.NewWindow(appTitle)
	win.SetContent(canvas.NewField(state, fyne.NewSize(tangram.FieldWidth, tangram.FieldHeight)))
	win.Resize(fyne.NewSize(tangram.FieldWidth, tangram.FieldHeight))
	win.SetFixedSize(true)
	win.ShowAndRun()

	if *printOut {
		state.DumpLayout(os.Stdout)
	}
	if err := appPrefs.Save(); err != nil {
		log.Printf("Saving preferences: %v", err)
	}
}
