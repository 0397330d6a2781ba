package main

import (
	"flag"
	"fmt"

	"pdbeval/internal/cdi"
)

// recordSummary is one container record, body elided to its size.
type recordSummary struct {
	Kind     string `json:"kind"`
	Version  uint8  `json:"version"`
	BodySize int    `json:"body_size"`
}

func cmdRecords(args []string) error {
	fs := flag.NewFlagSet("records", flag.ExitOnError)
	fixturePath := fs.String("fixture", "", "method fixture file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *fixturePath == "" {
		return fmt.Errorf("--fixture is required")
	}

	f, err := loadFixture(*fixturePath)
	if err != nil {
		return err
	}
	recs, err := cdi.Records(f.CustomDebugInfo)
	if err != nil {
		return fmt.Errorf("parse container: %w", err)
	}

	out := make([]recordSummary, 0, len(recs))
	for _, r := range recs {
		out = append(out, recordSummary{
			Kind:     r.Kind.String(),
			Version:  r.Version,
			BodySize: len(r.Body),
		})
	}
	return printJSON(out)
}
