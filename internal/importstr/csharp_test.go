package importstr

import (
	"testing"

	"pdbeval/internal/asmid"
)

func TestParseCSharp(t *testing.T) {
	tests := []struct {
		in   string
		want ImportRecord
	}{
		{"USystem", ImportRecord{TargetKind: TargetNamespace, Target: "System"}},
		{"USystem.Collections.Generic", ImportRecord{TargetKind: TargetNamespace, Target: "System.Collections.Generic"}},
		{"TSystem.Math", ImportRecord{TargetKind: TargetType, Target: "System.Math"}},
		{"ECorp.Util lib", ImportRecord{TargetKind: TargetNamespace, Target: "Corp.Util", TargetAssemblyAlias: "lib"}},
		{"AS USystem", ImportRecord{TargetKind: TargetNamespace, Alias: "S", Target: "System"}},
		{"AM TSystem.Math", ImportRecord{TargetKind: TargetType, Alias: "M", Target: "System.Math"}},
		{"AU ECorp.Util lib", ImportRecord{TargetKind: TargetNamespace, Alias: "U", Target: "Corp.Util", TargetAssemblyAlias: "lib"}},
		{"Xlib", ImportRecord{TargetKind: TargetAssembly, Alias: "lib"}},
		// Escaped delimiter inside an identifier.
		{`AOdd\ Name USystem`, ImportRecord{TargetKind: TargetNamespace, Alias: "Odd Name", Target: "System"}},
	}
	for _, tt := range tests {
		got, err := ParseCSharp(tt.in)
		if err != nil {
			t.Errorf("ParseCSharp(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCSharp(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseCSharp_Errors(t *testing.T) {
	for _, in := range []string{
		"",
		"QSystem",       // unknown tag
		"A USystem",     // missing alias
		"AS",            // alias without target
		"AS Xlib",       // unaliasable target
		"ECorp.Util",    // missing extern alias
		"X",             // missing alias
		"Za",             // missing assembly name
		"Za , Version=1", // identity parse failure (empty assembly name)
	} {
		if _, err := ParseCSharp(in); err == nil {
			t.Errorf("ParseCSharp(%q): expected error", in)
		}
	}
}

// Parse → encode → parse must be stable on the decoded tuple.
func TestCSharp_RoundTrip(t *testing.T) {
	directives := []string{
		"USystem",
		"TSystem.Math",
		"ECorp.Util lib",
		"AS USystem",
		"AM TSystem.Math",
		"AU ECorp.Util lib",
		"Xlib",
		`AOdd\ Name USystem`,
		"Zlib mscorlib, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089",
	}
	for _, in := range directives {
		first, err := ParseCSharp(in)
		if err != nil {
			t.Errorf("ParseCSharp(%q): %v", in, err)
			continue
		}
		encoded, err := EncodeCSharp(first)
		if err != nil {
			t.Errorf("EncodeCSharp(%+v): %v", first, err)
			continue
		}
		second, err := ParseCSharp(encoded)
		if err != nil {
			t.Errorf("reparse %q (from %q): %v", encoded, in, err)
			continue
		}
		if first.TargetKind != second.TargetKind || first.Alias != second.Alias ||
			first.Target != second.Target || first.TargetAssemblyAlias != second.TargetAssemblyAlias {
			t.Errorf("round trip of %q: %+v != %+v", in, first, second)
		}
	}
}

func TestParseExternAlias(t *testing.T) {
	got, err := ParseExternAlias("Zcorlib mscorlib, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089")
	if err != nil {
		t.Fatalf("ParseExternAlias: %v", err)
	}
	want := ExternAliasRecord{
		Alias: "corlib",
		Identity: asmid.Identity{
			Name:           "mscorlib",
			Version:        asmid.Version{Major: 4},
			PublicKeyToken: "b77a5c561934e089",
		},
	}
	if got != want {
		t.Errorf("ParseExternAlias = %+v, want %+v", got, want)
	}

	for _, in := range []string{"", "USystem", "Z", "Zalias", "Zalias ,bad"} {
		if _, err := ParseExternAlias(in); err == nil {
			t.Errorf("ParseExternAlias(%q): expected error", in)
		}
	}
}
