package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"

	"tacboard"
	"tacboard/util"
)

func main() {

	cfgPath := flag.String("config", "", "path to yaml config")
	sample := flag.Bool("sample", false, "write a sample config and exit")
	flag.Parse()

	if *sample {
		path := *cfgPath
		if path == "" {
			path = "tacboard.yml"
		}
		if err := tacboard.SaveSample(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("sample config written to %s\n", path)
		return
	}

	cfg, err := tacboard.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile := util.OpenLog(cfg.LogPath, 0644)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile, MaxLen: 200}
	ctx := context.Background()

	model, err := tacboard.NewModel(ctx, cfg, lgr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lgr.Info(ctx, "starting tacboard", "config", *cfgPath)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
