package debuginfo

import (
	"pdbeval/internal/cdi"
	"pdbeval/internal/scopes"
)

// The dynamic-locals encoding stores constants with slot id 0, the same
// value used by a genuine local in slot 0. Attribution needs the method's
// lexical scopes, and duplicate detection needs all of them, so names are
// classified in a first pass before any entry is resolved.

type nameKind uint8

const (
	kindVariable nameKind = iota
	kindConstant
	kindDuplicate
)

// classifyNames scans every scope and classifies each name that could own
// a slot-0 dynamic entry. The first slot-0 local (at most one is expected)
// classifies as Variable; constant names classify as Constant; a name seen
// again in any role becomes Duplicate.
func classifyNames(all []scopes.Scope) map[string]nameKind {
	kinds := make(map[string]nameKind)
	sawSlot0 := false
	for _, sc := range all {
		for _, l := range sc.Locals {
			if l.Slot != 0 || sawSlot0 {
				continue
			}
			sawSlot0 = true
			if _, seen := kinds[l.Name]; seen {
				kinds[l.Name] = kindDuplicate
			} else {
				kinds[l.Name] = kindVariable
			}
		}
		for _, c := range sc.Constants {
			if _, seen := kinds[c.Name]; seen {
				kinds[c.Name] = kindDuplicate
			} else {
				kinds[c.Name] = kindConstant
			}
		}
	}
	return kinds
}

// resolveDynamic reattributes slot-0 entries and splits the decoded infos
// into the by-slot and by-name maps. Entries whose name is genuinely
// ambiguous are dropped; reattributed constants move to the by-name map
// with the constant sentinel slot.
func resolveDynamic(infos []cdi.DynamicLocalInfo, all []scopes.Scope) (bySlot map[int]cdi.DynamicLocalInfo, byName map[string]cdi.DynamicLocalInfo) {
	bySlot = make(map[int]cdi.DynamicLocalInfo)
	byName = make(map[string]cdi.DynamicLocalInfo)
	if len(infos) == 0 {
		return bySlot, byName
	}

	kinds := classifyNames(all)
	for _, d := range infos {
		if d.SlotID != 0 {
			bySlot[d.SlotID] = d
			continue
		}
		switch kinds[d.Name] {
		case kindDuplicate:
			// No safe attribution.
		case kindConstant:
			d.SlotID = cdi.ConstantSlot
			byName[d.Name] = d
		default:
			bySlot[0] = d
		}
	}
	return bySlot, byName
}
