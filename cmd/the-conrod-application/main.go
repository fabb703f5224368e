// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"log"
	"log/slog"
	"os"

	conrodapp "github.com/daboross/simpler-conrod-example"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	conrodapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := conrodapp.LoadConfig(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	font, err := conrodapp.LoadFont()
	if err != nil {
		log.Fatalf("font: %v", err)
	}

	surface := conrodapp.OpenWindow(cfg)

	app, err := conrodapp.NewApp(surface, cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	app.SetFont(font)

	if err := conrodapp.Run(surface, app.HandleLoopEvent, app.Renderer); err != nil {
		log.Fatalf("run: %v", err)
	}
}
