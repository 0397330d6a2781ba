package main

import (
	"flag"
	"fmt"
	"os"

	"pdbeval/internal/cdi"
	"pdbeval/internal/debuginfo"
)

func cmdDynamics(args []string) error {
	fs := flag.NewFlagSet("dynamics", flag.ExitOnError)
	fixturePath := fs.String("fixture", "", "method fixture file")
	offset := fs.Uint("offset", 0, "IL offset for scope lookup")
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

	// The full decode resolves slot-0 ambiguity against the scopes, which
	// is the interesting part; print both maps.
	info, diags := debuginfo.Read(fixtureReader{f: f}, textProvider{}, f.methodID(), uint32(*offset), debuginfo.DialectCSharp)
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
	return printJSON(struct {
		BySlot map[int]cdi.DynamicLocalInfo    `json:"by_slot"`
		ByName map[string]cdi.DynamicLocalInfo `json:"by_name"`
	}{info.DynamicBySlot, info.DynamicByName})
}
