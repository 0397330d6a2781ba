package debuginfo

import (
	"pdbeval/internal/cdi"
	"pdbeval/internal/importstr"
	"pdbeval/internal/scopes"
)

// Read decodes the debug info for one method at one instruction offset.
// It never fails: every decoding problem degrades the affected sub-piece
// and is reported through the returned diagnostics, and a structurally
// invalid blob degrades the whole method to an empty result.
func Read(r Reader, p SymbolProvider, id MethodID, ilOffset uint32, dialect Dialect) (*MethodDebugInfo, []cdi.Diag) {
	var diags cdi.Diags

	if ps, ok := r.(PortableSource); ok && ps.IsPortable(id) {
		info, err := ps.MethodDebugInfo(id, ilOffset, dialect)
		if err == nil {
			return info, nil
		}
		// Fall through to the native path; a portable method has no native
		// records, so this degrades to the empty result anyway.
		diags.Addf(0, cdi.DiagReader, "portable source for %s: %v", id, err)
	}

	allScopes, err := r.Scopes(id, ilOffset)
	if err != nil {
		diags.Addf(0, cdi.DiagReader, "scopes for %s: %v", id, err)
		allScopes = nil
	}

	blob, err := r.CustomDebugInfo(id)
	if err != nil {
		diags.Addf(0, cdi.DiagReader, "custom debug info for %s: %v", id, err)
		blob = nil
	}
	records, err := cdi.Records(blob)
	if err != nil {
		diags.Addf(0, cdi.DiagContainer, "custom debug info for %s: %v", id, err)
		return emptyInfo(), diags.Items()
	}

	info := emptyInfo()

	if body, ok := cdi.Find(records, cdi.KindHoistedLocalScopes); ok {
		info.HoistedLocalScopes = cdi.DecodeHoistedScopes(body, &diags)
	}
	if body, ok := cdi.Find(records, cdi.KindDynamicLocals); ok {
		infos := cdi.DecodeDynamicLocals(body, &diags)
		info.DynamicBySlot, info.DynamicByName = resolveDynamic(infos, allScopes)
	}

	switch dialect {
	case DialectVisualBasic:
		readVBImports(r, id, info, &diags)
	default:
		readCSharpImports(r, id, info, &diags)
	}
	readExternAliases(r, id, info, &diags)

	info.LocalNames = localNames(allScopes)
	info.Constants = materializeConstants(p, allScopes, info.DynamicByName, &diags)
	info.ReuseSpan = scopes.ReuseSpan(allScopes, ilOffset, dialect == DialectVisualBasic)

	return info, diags.Items()
}

func readCSharpImports(r Reader, id MethodID, info *MethodDebugInfo, diags *cdi.Diags) {
	groups, err := r.ImportStringGroups(id)
	if err != nil {
		diags.Addf(0, cdi.DiagReader, "import strings for %s: %v", id, err)
		return
	}
	for _, raw := range groups {
		var group importstr.Group
		for i, s := range raw {
			rec, err := importstr.ParseCSharp(s)
			if err != nil {
				diags.Addf(uint64(i), cdi.DiagBadImport, "%v", err)
				continue
			}
			group = append(group, rec)
		}
		info.ImportGroups = append(info.ImportGroups, group)
	}
}

// readVBImports flattens the reader's sequences into the two VB groups,
// file-level before project-level. The default namespace is whichever
// default directive came last; defunct directives vanish.
func readVBImports(r Reader, id MethodID, info *MethodDebugInfo, diags *cdi.Diags) {
	groups, err := r.ImportStringGroups(id)
	if err != nil {
		diags.Addf(0, cdi.DiagReader, "import strings for %s: %v", id, err)
		return
	}
	var file, project importstr.Group
	seen := false
	idx := uint64(0)
	for _, raw := range groups {
		for _, s := range raw {
			idx++
			seen = true
			d, err := importstr.ParseVB(s)
			if err != nil {
				diags.Addf(idx, cdi.DiagBadImport, "%v", err)
				continue
			}
			switch d.Kind {
			case importstr.VBDefaultNamespace:
				info.DefaultNamespace = d.DefaultNamespace
			case importstr.VBDefunct:
				// Dropped silently.
			default:
				if d.Scope == importstr.ScopeProject {
					project = append(project, d.Record)
				} else {
					file = append(file, d.Record)
				}
			}
		}
	}
	if seen {
		info.ImportGroups = []importstr.Group{file, project}
	}
}

func readExternAliases(r Reader, id MethodID, info *MethodDebugInfo, diags *cdi.Diags) {
	raw, err := r.ExternAliasStrings(id)
	if err != nil {
		diags.Addf(0, cdi.DiagReader, "extern aliases for %s: %v", id, err)
		return
	}
	for i, s := range raw {
		rec, err := importstr.ParseExternAlias(s)
		if err != nil {
			diags.Addf(uint64(i), cdi.DiagBadAlias, "%v", err)
			continue
		}
		info.ExternAliases = append(info.ExternAliases, rec)
	}
}

// localNames flattens scope locals into a slot-indexed name table. Scopes
// arrive outermost first; an inner redeclaration of a slot wins, matching
// what is visible at the query offset.
func localNames(all []scopes.Scope) []string {
	var names []string
	for _, sc := range all {
		for _, l := range sc.Locals {
			if l.Slot < 0 {
				continue
			}
			for len(names) <= l.Slot {
				names = append(names, "")
			}
			names[l.Slot] = l.Name
		}
	}
	return names
}
