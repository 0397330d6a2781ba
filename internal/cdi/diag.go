// Package cdi decodes the compiler-emitted custom-debug-info blob attached
// to a method in a native PDB: the record container, the dynamic-locals
// record, and the state-machine hoisted-local-scopes record.
package cdi

import "fmt"

// DiagKind classifies a diagnostic message.
type DiagKind string

const (
	DiagTruncated  DiagKind = "truncated"
	DiagInvalid    DiagKind = "invalid"
	DiagContainer  DiagKind = "bad_container"
	DiagBadImport  DiagKind = "bad_import"
	DiagBadAlias   DiagKind = "bad_alias"
	DiagTypeDecode DiagKind = "type_decode"
	DiagBadValue   DiagKind = "bad_value"
	DiagReader     DiagKind = "reader"
)

// Diag records a non-fatal issue encountered during decoding. Offset is a
// byte offset for binary records and a directive index for textual ones.
type Diag struct {
	Offset uint64   `json:"offset"`
	Kind   DiagKind `json:"kind"`
	Msg    string   `json:"msg"`
}

func (d Diag) String() string {
	return fmt.Sprintf("[%s] 0x%x: %s", d.Kind, d.Offset, d.Msg)
}

// Diags accumulates diagnostics.
type Diags struct {
	items []Diag
}

func (d *Diags) Add(offset uint64, kind DiagKind, msg string) {
	d.items = append(d.items, Diag{Offset: offset, Kind: kind, Msg: msg})
}

func (d *Diags) Addf(offset uint64, kind DiagKind, format string, args ...any) {
	d.items = append(d.items, Diag{Offset: offset, Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

func (d *Diags) Items() []Diag { return d.items }
func (d *Diags) Len() int      { return len(d.items) }
