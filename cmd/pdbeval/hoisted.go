package main

import (
	"flag"
	"fmt"
	"os"

	"pdbeval/internal/cdi"
)

func cmdHoisted(args []string) error {
	fs := flag.NewFlagSet("hoisted", flag.ExitOnError)
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

	out := []cdi.HoistedLocalScopeRecord{}
	if body, ok := cdi.Find(recs, cdi.KindHoistedLocalScopes); ok {
		var diags cdi.Diags
		out = cdi.DecodeHoistedScopes(body, &diags)
		for _, d := range diags.Items() {
			fmt.Fprintln(os.Stderr, d)
		}
	}
	return printJSON(out)
}
