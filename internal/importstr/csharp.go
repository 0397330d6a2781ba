package importstr

import (
	"github.com/pkg/errors"

	"pdbeval/internal/asmid"
)

// C# directives are tagged by their first byte:
//
//	U<namespace>                  namespace import
//	T<serialized-type>            type import
//	E<namespace> <extern-alias>   namespace inside an extern alias
//	A<alias> U<namespace>         aliased namespace
//	A<alias> T<serialized-type>   aliased type
//	A<alias> E<ns> <extern-alias> aliased namespace inside an extern alias
//	X<alias>                      extern-alias declaration
//	Z<alias> <assembly-name>      extern alias binding (extern-alias list only)
//
// Fields are separated by a single space; backslash escapes a space or
// backslash inside a field.
const csDelim = ' '

// ParseCSharp parses one C#-dialect import directive.
func ParseCSharp(directive string) (ImportRecord, error) {
	if directive == "" {
		return ImportRecord{}, errors.New("empty import directive")
	}
	rest := directive[1:]
	switch directive[0] {
	case 'U':
		return ImportRecord{TargetKind: TargetNamespace, Target: unescape(rest, csDelim)}, nil

	case 'T':
		return ImportRecord{TargetKind: TargetType, Target: unescape(rest, csDelim)}, nil

	case 'E':
		ns, externAlias, ok := splitField(rest, csDelim)
		if !ok || externAlias == "" {
			return ImportRecord{}, errors.Errorf("malformed extern-qualified namespace import %q", directive)
		}
		return ImportRecord{
			TargetKind:          TargetNamespace,
			Target:              ns,
			TargetAssemblyAlias: unescape(externAlias, csDelim),
		}, nil

	case 'A':
		alias, target, ok := splitField(rest, csDelim)
		if !ok || alias == "" || target == "" {
			return ImportRecord{}, errors.Errorf("malformed aliased import %q", directive)
		}
		rec, err := ParseCSharp(target)
		if err != nil {
			return ImportRecord{}, err
		}
		switch rec.TargetKind {
		case TargetNamespace, TargetType:
			rec.Alias = alias
			return rec, nil
		default:
			return ImportRecord{}, errors.Errorf("alias %q applied to unaliasable target %q", alias, target)
		}

	case 'X':
		if rest == "" {
			return ImportRecord{}, errors.Errorf("malformed extern-alias declaration %q", directive)
		}
		return ImportRecord{TargetKind: TargetAssembly, Alias: unescape(rest, csDelim)}, nil

	case 'Z':
		// Assembly bindings are only meaningful in the extern-alias list;
		// decode them uniformly so group parsers tolerate them.
		rec, err := ParseExternAlias(directive)
		if err != nil {
			return ImportRecord{}, err
		}
		return ImportRecord{
			TargetKind:             TargetAssembly,
			Alias:                  rec.Alias,
			TargetAssemblyIdentity: &rec.Identity,
		}, nil

	default:
		return ImportRecord{}, errors.Errorf("unknown import tag %q in %q", directive[0], directive)
	}
}

// ParseExternAlias parses a "Z<alias> <assembly-name>" directive from the
// extern-alias list. A failure drops the record at the caller.
func ParseExternAlias(directive string) (ExternAliasRecord, error) {
	if len(directive) < 2 || directive[0] != 'Z' {
		return ExternAliasRecord{}, errors.Errorf("not an extern-alias binding: %q", directive)
	}
	alias, name, ok := splitField(directive[1:], csDelim)
	if !ok || alias == "" || name == "" {
		return ExternAliasRecord{}, errors.Errorf("malformed extern-alias binding %q", directive)
	}
	id, err := asmid.Parse(name)
	if err != nil {
		return ExternAliasRecord{}, errors.Wrapf(err, "extern alias %q", alias)
	}
	return ExternAliasRecord{Alias: alias, Identity: id}, nil
}

// EncodeCSharp renders a record back into directive form. Inverse of
// ParseCSharp for records it can produce.
func EncodeCSharp(r ImportRecord) (string, error) {
	var core string
	switch r.TargetKind {
	case TargetNamespace:
		if r.TargetAssemblyAlias != "" {
			core = "E" + escape(r.Target, csDelim) + " " + escape(r.TargetAssemblyAlias, csDelim)
		} else {
			core = "U" + escape(r.Target, csDelim)
		}
	case TargetType:
		core = "T" + escape(r.Target, csDelim)
	case TargetAssembly:
		if r.TargetAssemblyIdentity != nil {
			return "Z" + escape(r.Alias, csDelim) + " " + r.TargetAssemblyIdentity.String(), nil
		}
		return "X" + escape(r.Alias, csDelim), nil
	default:
		return "", errors.Errorf("kind %s has no C# directive form", r.TargetKind)
	}
	if r.Alias != "" {
		return "A" + escape(r.Alias, csDelim) + " " + core, nil
	}
	return core, nil
}
