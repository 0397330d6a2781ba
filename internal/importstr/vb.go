package importstr

import (
	"strings"

	"github.com/pkg/errors"
)

// Scope distinguishes where a VB import applies. A directive without an
// explicit marker is file-level.
type Scope uint8

const (
	ScopeFile Scope = iota
	ScopeProject
)

func (s Scope) String() string {
	if s == ScopeProject {
		return "project"
	}
	return "file"
}

// VBKind tags the variants a VB directive can decode to.
type VBKind uint8

const (
	// VBImport carries an ImportRecord plus its scope.
	VBImport VBKind = iota
	// VBDefaultNamespace carries the method's default (root) namespace.
	VBDefaultNamespace
	// VBDefunct marks a retired directive; callers drop it silently.
	VBDefunct
)

// VBDirective is the tagged result of parsing one VB import string.
type VBDirective struct {
	Kind             VBKind
	Record           ImportRecord // valid when Kind == VBImport
	Scope            Scope        // valid when Kind == VBImport
	DefaultNamespace string       // valid when Kind == VBDefaultNamespace
}

// VB directives:
//
//	*<namespace>        default (root) namespace, always unaliased
//	*                   defunct marker, dropped silently
//	@F:<payload>        file-level import (also the default when unmarked)
//	@P:<payload>        project-level import
//
// Payload forms:
//
//	#<prefix>=<xmlns>   XML namespace import (prefix may be empty)
//	&<serialized-type>  type import
//	<alias>=<target>    aliased import; target is &<type> or a namespace
//	<namespace>         plain namespace import
//
// Backslash escapes '=' or '\' inside alias and target fields.
const vbDelim = '='

// ParseVB parses one VB-dialect import directive.
func ParseVB(directive string) (VBDirective, error) {
	if directive == "" {
		return VBDirective{}, errors.New("empty import directive")
	}

	if directive[0] == '*' {
		rest := directive[1:]
		if rest == "" {
			return VBDirective{Kind: VBDefunct}, nil
		}
		return VBDirective{Kind: VBDefaultNamespace, DefaultNamespace: rest}, nil
	}

	scope := ScopeFile
	payload := directive
	if strings.HasPrefix(directive, "@") {
		switch {
		case strings.HasPrefix(directive, "@F:"):
			payload = directive[3:]
		case strings.HasPrefix(directive, "@P:"):
			scope = ScopeProject
			payload = directive[3:]
		default:
			return VBDirective{}, errors.Errorf("unknown scope marker in %q", directive)
		}
	}
	if payload == "" {
		return VBDirective{}, errors.Errorf("empty import payload in %q", directive)
	}

	rec, err := parseVBPayload(payload)
	if err != nil {
		return VBDirective{}, err
	}
	return VBDirective{Kind: VBImport, Record: rec, Scope: scope}, nil
}

func parseVBPayload(payload string) (ImportRecord, error) {
	if payload[0] == '#' {
		prefix, xmlns, ok := splitField(payload[1:], vbDelim)
		if !ok || xmlns == "" {
			return ImportRecord{}, errors.Errorf("malformed XML namespace import %q", payload)
		}
		return ImportRecord{
			TargetKind: TargetXMLNamespace,
			Alias:      prefix,
			Target:     unescape(xmlns, vbDelim),
		}, nil
	}

	if payload[0] == '&' {
		return ImportRecord{TargetKind: TargetType, Target: unescape(payload[1:], vbDelim)}, nil
	}

	if alias, target, ok := splitField(payload, vbDelim); ok {
		if alias == "" || target == "" {
			return ImportRecord{}, errors.Errorf("malformed aliased import %q", payload)
		}
		rec := ImportRecord{TargetKind: TargetNamespace, Alias: alias}
		if target[0] == '&' {
			rec.TargetKind = TargetType
			target = target[1:]
			if target == "" {
				return ImportRecord{}, errors.Errorf("malformed aliased type import %q", payload)
			}
		}
		rec.Target = unescape(target, vbDelim)
		return rec, nil
	}

	return ImportRecord{TargetKind: TargetNamespace, Target: unescape(payload, vbDelim)}, nil
}
