package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/clarktrimble/sabot"

	"tacboard/analyze"
	"tacboard/enrich"
	"tacboard/metriclib"
	"tacboard/store/duck"
)

func main() {

	defsPath := flag.String("definitions", "", "metric definitions yaml (built-ins when empty)")
	eventsPath := flag.String("events", "", "match events jsonl (required)")
	outPath := flag.String("out", "enriched_match_data.csv", "enriched csv output")
	flag.Parse()

	if *eventsPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: enrich -events <match.jsonl> [-definitions <defs.yaml>] [-out <out.csv>]")
		os.Exit(1)
	}

	lgr := &sabot.Sabot{Writer: os.Stderr, MaxLen: 200}
	ctx := context.Background()

	defs := enrich.DefaultDefinitions()
	if *defsPath != "" {
		var err error
		defs, err = enrich.LoadDefinitions(*defsPath)
		fatal(err)
	}

	dk, err := duck.New(lgr)
	fatal(err)
	defer dk.Close()

	fatal(dk.Load(*eventsPath))

	count, err := dk.CountEvents()
	fatal(err)
	rounds, err := dk.Rounds()
	fatal(err)
	lgr.Info(ctx, "loaded events", "count", count, "rounds", rounds, "store", dk.Name())

	events, err := dk.Events()
	fatal(err)

	en := enrich.New(defs, lgr)
	columns, err := en.Enrich(events)
	fatal(err)

	for _, col := range columns {
		fatal(dk.AddDerived(col.Name, col.SQLType, col.Values))
		if col.SQLType == "BOOLEAN" {
			hits, err := dk.CountTrue(col.Name)
			fatal(err)
			lgr.Info(ctx, "derived column", "name", col.Name, "true", hits)
		}
	}
	lgr.Info(ctx, "enrichment complete", "dimensions", len(columns))

	fatal(dk.ExportCSV(*outPath))

	fmt.Println(en.Summary(events, columns))

	var ids []string
	for _, metric := range metriclib.Predefined() {
		ids = append(ids, metric.ID)
	}
	fmt.Println(analyze.Agenda(analyze.MatchLabel, analyze.Findings(ids)))

	fmt.Printf("enriched data exported to %s\n", *outPath)
}

func fatal(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
