package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"pdbeval/internal/debuginfo"
	"pdbeval/internal/scopes"
)

// fixture is the JSON description of one method: everything a PDB reader
// would supply, captured to a file.
type fixture struct {
	Token           uint32         `json:"token"`
	Version         int            `json:"version"`
	CustomDebugInfo hexBytes       `json:"custom_debug_info,omitempty"`
	Scopes          []fixtureScope `json:"scopes,omitempty"`
	ImportGroups    [][]string     `json:"import_groups,omitempty"`
	ExternAliases   []string       `json:"extern_aliases,omitempty"`
	LocalSignatures []string       `json:"local_signatures,omitempty"`
}

type fixtureScope struct {
	Start     uint32            `json:"start"`
	End       uint32            `json:"end"`
	Locals    []fixtureLocal    `json:"locals,omitempty"`
	Constants []fixtureConstant `json:"constants,omitempty"`
}

type fixtureLocal struct {
	Name string `json:"name"`
	Slot int    `json:"slot"`
}

// Constant values and signatures are plain strings in fixtures; the text
// provider below interprets them directly.
type fixtureConstant struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature"`
}

// hexBytes decodes a JSON hex string into bytes.
type hexBytes []byte

func (h *hexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return fmt.Errorf("fixture: bad hex: %w", err)
	}
	*h = b
	return nil
}

func loadFixture(path string) (*fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

func (f *fixture) methodID() debuginfo.MethodID {
	return debuginfo.MethodID{Token: f.Token, Version: f.Version}
}

// fixtureReader serves the fixture's data through the reader interface.
type fixtureReader struct {
	f *fixture
}

func (r fixtureReader) CustomDebugInfo(debuginfo.MethodID) ([]byte, error) {
	return r.f.CustomDebugInfo, nil
}

func (r fixtureReader) Scopes(_ debuginfo.MethodID, ilOffset uint32) ([]scopes.Scope, error) {
	var out []scopes.Scope
	for _, fs := range r.f.Scopes {
		sc := scopes.Scope{Start: fs.Start, End: fs.End}
		for _, l := range fs.Locals {
			sc.Locals = append(sc.Locals, scopes.Local{Name: l.Name, Slot: l.Slot})
		}
		for _, c := range fs.Constants {
			sc.Constants = append(sc.Constants, scopes.Constant{
				Name:      c.Name,
				Value:     []byte(c.Value),
				Signature: []byte(c.Signature),
			})
		}
		out = append(out, sc)
	}
	return out, nil
}

func (r fixtureReader) ImportStringGroups(debuginfo.MethodID) ([][]string, error) {
	return r.f.ImportGroups, nil
}

func (r fixtureReader) ExternAliasStrings(debuginfo.MethodID) ([]string, error) {
	return r.f.ExternAliases, nil
}

func (r fixtureReader) LocalSignatures(debuginfo.MethodID) ([][]byte, error) {
	var out [][]byte
	for _, s := range r.f.LocalSignatures {
		out = append(out, []byte(s))
	}
	return out, nil
}

// textType interprets a fixture signature as a type name. "<error>" stands
// in for an unresolvable type.
type textType struct {
	TypeName string `json:"type"`
}

func (t textType) IsError() bool { return t.TypeName == "<error>" }

// textSymbol is the JSON-friendly symbol the text provider materializes.
type textSymbol struct {
	SymName string `json:"name"`
	Type    string `json:"type"`
	Value   any    `json:"value,omitempty"`
	Slot    *int   `json:"slot,omitempty"`
	Flags   []bool `json:"dynamic_flags,omitempty"`
}

func (s textSymbol) Name() string { return s.SymName }

// textProvider is a stand-in symbol provider for fixtures: signatures are
// type names and stored values are their own representation. Real hosts
// plug in a language-aware provider instead.
type textProvider struct{}

func (textProvider) DecodeTypeSignature(sig []byte) (debuginfo.TypeSymbol, error) {
	if len(sig) == 0 {
		return nil, fmt.Errorf("empty type signature")
	}
	return textType{TypeName: string(sig)}, nil
}

func (textProvider) TypeFromSerializedName(name string) (debuginfo.TypeSymbol, error) {
	if name == "" {
		return nil, fmt.Errorf("empty type name")
	}
	return textType{TypeName: name}, nil
}

func (textProvider) DecodeConstantValue(typ debuginfo.TypeSymbol, raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty stored value")
	}
	return string(raw), nil
}

func (textProvider) LocalConstant(name string, typ debuginfo.TypeSymbol, value any, flags []bool) (debuginfo.Symbol, error) {
	return textSymbol{
		SymName: name,
		Type:    typ.(textType).TypeName,
		Value:   value,
		Flags:   flags,
	}, nil
}

func (textProvider) LocalVariable(name string, slot int, sig []byte, flags []bool) (debuginfo.Symbol, error) {
	if len(sig) == 0 {
		return nil, fmt.Errorf("empty local signature")
	}
	return textSymbol{
		SymName: name,
		Type:    string(sig),
		Slot:    &slot,
		Flags:   flags,
	}, nil
}

// printJSON writes v to stdout, indented.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
