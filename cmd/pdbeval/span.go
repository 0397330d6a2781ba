package main

import (
	"flag"
	"fmt"

	"pdbeval/internal/debuginfo"
	"pdbeval/internal/scopes"
)

func cmdSpan(args []string) error {
	fs := flag.NewFlagSet("span", flag.ExitOnError)
	fixturePath := fs.String("fixture", "", "method fixture file")
	offset := fs.Uint("offset", 0, "IL offset of the instruction pointer")
	dialect := fs.String("dialect", "csharp", "import string dialect (csharp|vb)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *fixturePath == "" {
		return fmt.Errorf("--fixture is required")
	}
	csharp, err := parseDialectFlag(*dialect)
	if err != nil {
		return err
	}

	f, err := loadFixture(*fixturePath)
	if err != nil {
		return err
	}
	all, _ := fixtureReader{f: f}.Scopes(debuginfo.MethodID{}, uint32(*offset))
	span := scopes.ReuseSpan(all, uint32(*offset), !csharp)

	return printJSON(struct {
		Offset    uint32        `json:"offset"`
		ReuseSpan scopes.ILSpan `json:"reuse_span"`
		Unbounded bool          `json:"unbounded"`
	}{uint32(*offset), span, span == scopes.MaxSpan})
}
