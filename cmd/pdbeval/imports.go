package main

import (
	"flag"
	"fmt"
	"os"

	"pdbeval/internal/importstr"
)

func parseDialectFlag(s string) (csharp bool, err error) {
	switch s {
	case "", "csharp", "cs":
		return true, nil
	case "vb", "visualbasic":
		return false, nil
	default:
		return false, fmt.Errorf("unknown dialect %q", s)
	}
}

// importsOutput groups decoded directives the way consumers walk them.
type importsOutput struct {
	DefaultNamespace string            `json:"default_namespace,omitempty"`
	Groups           []importstr.Group `json:"groups"`
}

func cmdImports(args []string) error {
	fs := flag.NewFlagSet("imports", flag.ExitOnError)
	fixturePath := fs.String("fixture", "", "method fixture file")
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

	var out importsOutput
	if csharp {
		for _, raw := range f.ImportGroups {
			var group importstr.Group
			for _, s := range raw {
				rec, err := importstr.ParseCSharp(s)
				if err != nil {
					fmt.Fprintf(os.Stderr, "skip %q: %v\n", s, err)
					continue
				}
				group = append(group, rec)
			}
			out.Groups = append(out.Groups, group)
		}
	} else {
		var file, project importstr.Group
		for _, raw := range f.ImportGroups {
			for _, s := range raw {
				d, err := importstr.ParseVB(s)
				if err != nil {
					fmt.Fprintf(os.Stderr, "skip %q: %v\n", s, err)
					continue
				}
				switch d.Kind {
				case importstr.VBDefaultNamespace:
					out.DefaultNamespace = d.DefaultNamespace
				case importstr.VBDefunct:
				default:
					if d.Scope == importstr.ScopeProject {
						project = append(project, d.Record)
					} else {
						file = append(file, d.Record)
					}
				}
			}
		}
		out.Groups = []importstr.Group{file, project}
	}
	return printJSON(out)
}

func cmdExterns(args []string) error {
	fs := flag.NewFlagSet("externs", flag.ExitOnError)
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

	out := []importstr.ExternAliasRecord{}
	for _, s := range f.ExternAliases {
		rec, err := importstr.ParseExternAlias(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %q: %v\n", s, err)
			continue
		}
		out = append(out, rec)
	}
	return printJSON(out)
}
