package main

import (
	"flag"
	"fmt"
	"os"

	"pdbeval/internal/cdi"
	"pdbeval/internal/debuginfo"
)

func cmdMethod(args []string) error {
	fs := flag.NewFlagSet("method", flag.ExitOnError)
	fixturePath := fs.String("fixture", "", "method fixture file")
	offset := fs.Uint("offset", 0, "IL offset of the instruction pointer")
	dialect := fs.String("dialect", "csharp", "import string dialect (csharp|vb)")
	withLocals := fs.Bool("locals", false, "also materialize local variable symbols")
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
	d := debuginfo.DialectVisualBasic
	if csharp {
		d = debuginfo.DialectCSharp
	}

	f, err := loadFixture(*fixturePath)
	if err != nil {
		return err
	}
	reader := fixtureReader{f: f}
	provider := textProvider{}

	info, diags := debuginfo.Read(reader, provider, f.methodID(), uint32(*offset), d)
	for _, diag := range diags {
		fmt.Fprintln(os.Stderr, diag)
	}

	out := struct {
		Method string `json:"method"`
		*debuginfo.MethodDebugInfo
		Locals []debuginfo.Symbol `json:"locals,omitempty"`
	}{Method: f.methodID().String(), MethodDebugInfo: info}

	if *withLocals {
		sigs, err := reader.LocalSignatures(f.methodID())
		if err != nil {
			return err
		}
		var localDiags cdi.Diags
		out.Locals = info.LocalSymbols(provider, sigs, &localDiags)
		for _, diag := range localDiags.Items() {
			fmt.Fprintln(os.Stderr, diag)
		}
	}
	return printJSON(out)
}
