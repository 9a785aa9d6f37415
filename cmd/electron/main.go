package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"electron/internal/game"
)

var (
	termFlag = flag.Bool("term", false, "Run in the terminal instead of a window")
	seedFlag = flag.Uint64("seed", 0, "Random seed (0 = ELECTRON_SEED or clock)")
	logFlag  = flag.String("log", "", "Write the log to this file")
)

func main() {
	flag.Parse()

	log.SetPrefix("[electron] ")
	log.SetFlags(log.Ltime)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else if *termFlag {
		// stderr shares the tty with the game screen
		log.SetOutput(io.Discard)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	if *termFlag {
		err = game.RunTerminal(cfg)
	} else {
		err = game.RunDesktop(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "electron: %v\n", err)
		os.Exit(1)
	}
}
