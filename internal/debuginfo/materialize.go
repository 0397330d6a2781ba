package debuginfo

import (
	"pdbeval/internal/cdi"
	"pdbeval/internal/scopes"
)

// materializeConstants builds a symbol for every constant declared in the
// method's scopes. Each failure skips only the constant at hand: a
// signature that will not decode, an error type, or a stored value that
// does not convert. Partial results are the contract.
func materializeConstants(p SymbolProvider, all []scopes.Scope, byName map[string]cdi.DynamicLocalInfo, diags *cdi.Diags) []Symbol {
	var out []Symbol
	idx := uint64(0)
	for _, sc := range all {
		for _, c := range sc.Constants {
			idx++
			typ, err := p.DecodeTypeSignature(c.Signature)
			if err != nil {
				diags.Addf(idx, cdi.DiagTypeDecode, "constant %q: %v", c.Name, err)
				continue
			}
			if typ.IsError() {
				continue
			}
			value, err := p.DecodeConstantValue(typ, c.Value)
			if err != nil {
				diags.Addf(idx, cdi.DiagBadValue, "constant %q: %v", c.Name, err)
				continue
			}
			var flags []bool
			if d, ok := byName[c.Name]; ok {
				flags = d.FlagSlice()
			}
			sym, err := p.LocalConstant(c.Name, typ, value, flags)
			if err != nil {
				diags.Addf(idx, cdi.DiagBadValue, "constant %q: %v", c.Name, err)
				continue
			}
			out = append(out, sym)
		}
	}
	return out
}

// LocalSymbols pairs each local slot with its signature entry, PDB name,
// and dynamic flags, in slot order. An empty signature sequence means the
// image was stripped of local data; no local symbols are produced and the
// caller treats the method as having none.
func (m *MethodDebugInfo) LocalSymbols(p SymbolProvider, signatures [][]byte, diags *cdi.Diags) []Symbol {
	if len(signatures) == 0 {
		return nil
	}
	var out []Symbol
	for slot, sig := range signatures {
		var name string
		if slot < len(m.LocalNames) {
			name = m.LocalNames[slot]
		}
		var flags []bool
		if d, ok := m.DynamicBySlot[slot]; ok {
			flags = d.FlagSlice()
		}
		sym, err := p.LocalVariable(name, slot, sig, flags)
		if err != nil {
			diags.Addf(uint64(slot), cdi.DiagTypeDecode, "local slot %d: %v", slot, err)
			continue
		}
		out = append(out, sym)
	}
	return out
}
