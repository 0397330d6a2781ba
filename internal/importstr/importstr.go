// Package importstr parses the textual import directives recorded per
// method in native PDBs. Two encodings exist: the C#-style tagged form
// ("U<ns>", "A<alias> U<ns>", ...) and the Visual Basic form with its
// default-namespace and file/project scope markers.
package importstr

import (
	"fmt"
	"strings"

	"pdbeval/internal/asmid"
)

// TargetKind classifies what an import directive brings into scope.
type TargetKind uint8

const (
	TargetNamespace TargetKind = iota
	TargetType
	TargetAssembly
	TargetXMLNamespace
	TargetDefaultNamespace
	TargetDefunct
)

func (k TargetKind) String() string {
	switch k {
	case TargetNamespace:
		return "namespace"
	case TargetType:
		return "type"
	case TargetAssembly:
		return "assembly"
	case TargetXMLNamespace:
		return "xmlns"
	case TargetDefaultNamespace:
		return "default_namespace"
	case TargetDefunct:
		return "defunct"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ImportRecord is one decoded import directive.
//
// Target holds the namespace, serialized type name, or XML namespace for
// kinds that carry one; it is empty for assembly kinds. Alias is set only
// for aliasable forms. TargetAssemblyAlias is the extern alias qualifying a
// namespace target; TargetAssemblyIdentity is set only for assembly-kind
// records decoded from the extern-alias list.
type ImportRecord struct {
	TargetKind             TargetKind      `json:"target_kind"`
	Alias                  string          `json:"alias,omitempty"`
	Target                 string          `json:"target,omitempty"`
	TargetAssemblyAlias    string          `json:"target_assembly_alias,omitempty"`
	TargetAssemblyIdentity *asmid.Identity `json:"target_assembly_identity,omitempty"`
}

// Group is one ordered sequence of import records: a lexical nesting level
// for C#, or one scope (file-level before project-level) for VB. Consumers
// walk groups outer-to-inner to resolve names.
type Group []ImportRecord

// ExternAliasRecord binds an extern alias to a referenced assembly.
type ExternAliasRecord struct {
	Alias    string         `json:"alias"`
	Identity asmid.Identity `json:"identity"`
}

// The field delimiter. A backslash escapes a delimiter or a backslash
// inside an identifier; unescaping is applied after splitting.
func unescape(s string, delim byte) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == delim || s[i+1] == '\\') {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func escape(s string, delim byte) string {
	if !strings.ContainsAny(s, string([]byte{delim, '\\'})) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == delim || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// splitField splits s at the first unescaped delimiter and unescapes the
// left side. The right side is returned raw (it may carry further fields).
func splitField(s string, delim byte) (left, right string, ok bool) {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == delim:
			return unescape(s[:i], delim), s[i+1:], true
		}
	}
	return "", "", false
}
