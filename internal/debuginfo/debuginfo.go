// Package debuginfo assembles per-method debug metadata for an expression
// evaluator: it pulls raw scopes and the custom-debug-info blob from a
// supplied PDB reader, decodes the dialect-specific records, resolves
// dynamic-flag ambiguity against the lexical scopes, and materializes
// constant symbols through a supplied symbol provider.
package debuginfo

import (
	"fmt"

	"pdbeval/internal/cdi"
	"pdbeval/internal/importstr"
	"pdbeval/internal/scopes"
)

// Dialect selects which import-string encoding a method was compiled with.
type Dialect uint8

const (
	DialectCSharp Dialect = iota
	DialectVisualBasic
)

func (d Dialect) String() string {
	if d == DialectVisualBasic {
		return "vb"
	}
	return "csharp"
}

// MethodID identifies one method body: the metadata token plus the
// edit-and-continue version.
type MethodID struct {
	Token   uint32 `json:"token"`
	Version int    `json:"version"`
}

func (id MethodID) String() string {
	return fmt.Sprintf("0x%08x v%d", id.Token, id.Version)
}

// MethodDebugInfo is the decoded debug metadata for one (method, version,
// offset) query. It is immutable once built and holds no reference to the
// reader that produced it.
type MethodDebugInfo struct {
	HoistedLocalScopes []cdi.HoistedLocalScopeRecord   `json:"hoisted_local_scopes,omitempty"`
	ImportGroups       []importstr.Group               `json:"import_groups,omitempty"`
	ExternAliases      []importstr.ExternAliasRecord   `json:"extern_aliases,omitempty"`
	DynamicBySlot      map[int]cdi.DynamicLocalInfo    `json:"dynamic_by_slot,omitempty"`
	DynamicByName      map[string]cdi.DynamicLocalInfo `json:"dynamic_by_name,omitempty"`
	DefaultNamespace   string                          `json:"default_namespace,omitempty"`
	LocalNames         []string                        `json:"local_names,omitempty"`
	Constants          []Symbol                        `json:"constants,omitempty"`
	ReuseSpan          scopes.ILSpan                   `json:"reuse_span"`
}

// emptyInfo is the degraded result for a method whose debug info could not
// be decoded at all. The unbounded reuse span keeps callers from
// re-decoding a blob that will fail again at another offset.
func emptyInfo() *MethodDebugInfo {
	return &MethodDebugInfo{
		DynamicBySlot: map[int]cdi.DynamicLocalInfo{},
		DynamicByName: map[string]cdi.DynamicLocalInfo{},
		ReuseSpan:     scopes.MaxSpan,
	}
}

// Reader is the borrowed PDB symbol reader. Implementations signal absent
// data with empty results, not errors; errors are reserved for reader-level
// failures and degrade the affected sub-piece.
type Reader interface {
	// CustomDebugInfo returns the raw custom-debug-info blob, or nil when
	// the method carries none.
	CustomDebugInfo(id MethodID) ([]byte, error)
	// Scopes returns the lexical scopes containing ilOffset, outermost
	// first, with their declared locals and constants.
	Scopes(id MethodID, ilOffset uint32) ([]scopes.Scope, error)
	// ImportStringGroups returns the raw import strings, one sequence per
	// lexical nesting level (C#) or a single flat sequence (VB).
	ImportStringGroups(id MethodID) ([][]string, error)
	// ExternAliasStrings returns the raw extern-alias binding strings.
	ExternAliasStrings(id MethodID) ([]string, error)
	// LocalSignatures returns the serialized type signature of each local
	// slot, in slot order. Empty for stripped images.
	LocalSignatures(id MethodID) ([][]byte, error)
}

// TypeSymbol is an opaque language type produced by the provider.
type TypeSymbol interface {
	// IsError reports whether the decoded type is an error type; constants
	// of such types are skipped.
	IsError() bool
}

// Symbol is a materialized local or constant symbol.
type Symbol interface {
	Name() string
}

// SymbolProvider turns decoded records into language symbols. It is
// borrowed for the duration of one decode call.
type SymbolProvider interface {
	// DecodeTypeSignature decodes a serialized type signature.
	DecodeTypeSignature(sig []byte) (TypeSymbol, error)
	// TypeFromSerializedName resolves a serialized type name, as carried by
	// type-import records.
	TypeFromSerializedName(name string) (TypeSymbol, error)
	// DecodeConstantValue converts a constant's raw stored bytes into a
	// value of the given type.
	DecodeConstantValue(typ TypeSymbol, raw []byte) (any, error)
	// LocalConstant builds a constant symbol.
	LocalConstant(name string, typ TypeSymbol, value any, dynamicFlags []bool) (Symbol, error)
	// LocalVariable builds a local variable symbol for a slot.
	LocalVariable(name string, slot int, signature []byte, dynamicFlags []bool) (Symbol, error)
}

// PortableSource is an optional capability of a Reader: methods whose debug
// info lives in portable metadata are answered by the alternate decoder
// verbatim instead of the native path.
type PortableSource interface {
	IsPortable(id MethodID) bool
	MethodDebugInfo(id MethodID, ilOffset uint32, dialect Dialect) (*MethodDebugInfo, error)
}
