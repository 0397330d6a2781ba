package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "records":
		err = cmdRecords(os.Args[2:])
	case "imports":
		err = cmdImports(os.Args[2:])
	case "externs":
		err = cmdExterns(os.Args[2:])
	case "dynamics":
		err = cmdDynamics(os.Args[2:])
	case "hoisted":
		err = cmdHoisted(os.Args[2:])
	case "span":
		err = cmdSpan(os.Args[2:])
	case "method":
		err = cmdMethod(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `pdbeval — native PDB custom-debug-info decoder

Usage:
  pdbeval records  --fixture <file>              List sub-records in the blob
  pdbeval imports  --fixture <file> [--dialect]  Decode import directive groups
  pdbeval externs  --fixture <file>              Decode extern-alias bindings
  pdbeval dynamics --fixture <file>              Decode + resolve dynamic-local flags
  pdbeval hoisted  --fixture <file>              Decode hoisted local scope records
  pdbeval span     --fixture <file> --offset <n> Compute the debug-info reuse span
  pdbeval method   --fixture <file> --offset <n> Full per-method decode

Flags:
  --fixture <file>   JSON method fixture (blob, scopes, import strings)
  --dialect <id>     csharp (default) or vb
  --offset <n>       IL byte offset of the instruction pointer
`)
}
