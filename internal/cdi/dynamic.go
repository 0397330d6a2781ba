package cdi

// Dynamic-locals record layout: u32 bucket count, then fixed 200-byte
// buckets: 64 one-byte flags, u32 flag count, i32 slot id, 64 UTF-16LE
// code units of name (NUL-padded).
const (
	dynamicFlagBytes = 64
	dynamicNameUnits = 64
)

// ConstantSlot is the sentinel slot id marking an entry as describing a
// constant rather than a local slot.
const ConstantSlot = -1

// DynamicLocalInfo describes the dynamic-typing flags recorded for one
// local or constant. SlotID 0 is ambiguous until resolved against the
// method's lexical scopes: it names either the slot-0 local or a constant.
type DynamicLocalInfo struct {
	Name      string `json:"name"`
	SlotID    int    `json:"slot_id"`
	FlagCount int    `json:"flag_count"`
	Flags     uint64 `json:"flags"`
}

// FlagSlice expands the packed flags into an ordered boolean sequence of
// length FlagCount; element i is bit i.
func (d DynamicLocalInfo) FlagSlice() []bool {
	out := make([]bool, d.FlagCount)
	for i := range out {
		out[i] = (d.Flags>>uint(i))&1 != 0
	}
	return out
}

// DecodeDynamicLocals decodes the body of a dynamic-locals record. Malformed
// buckets are dropped with a diagnostic; a truncated body stops decoding and
// keeps the buckets already read.
func DecodeDynamicLocals(body []byte, diags *Diags) []DynamicLocalInfo {
	s := NewStream(body)
	count, err := s.ReadUint32()
	if err != nil {
		diags.Add(0, DiagTruncated, "dynamic locals: missing bucket count")
		return nil
	}

	var out []DynamicLocalInfo
	for i := uint32(0); i < count; i++ {
		start := uint64(s.Position())
		flagBytes, err := s.ReadBytes(dynamicFlagBytes)
		if err != nil {
			diags.Addf(start, DiagTruncated, "dynamic locals: bucket %d truncated", i)
			break
		}
		flagCount, err := s.ReadUint32()
		if err != nil {
			diags.Addf(start, DiagTruncated, "dynamic locals: bucket %d truncated", i)
			break
		}
		slot, err := s.ReadInt32()
		if err != nil {
			diags.Addf(start, DiagTruncated, "dynamic locals: bucket %d truncated", i)
			break
		}
		name, err := s.ReadUTF16(dynamicNameUnits)
		if err != nil {
			diags.Addf(start, DiagTruncated, "dynamic locals: bucket %d truncated", i)
			break
		}

		if flagCount > dynamicFlagBytes {
			diags.Addf(start, DiagInvalid, "dynamic locals: bucket %d flag count %d exceeds %d", i, flagCount, dynamicFlagBytes)
			continue
		}
		if slot < 0 {
			diags.Addf(start, DiagInvalid, "dynamic locals: bucket %d has negative slot %d", i, slot)
			continue
		}

		var flags uint64
		for bit := uint32(0); bit < flagCount; bit++ {
			if flagBytes[bit] != 0 {
				flags |= 1 << bit
			}
		}
		out = append(out, DynamicLocalInfo{
			Name:      name,
			SlotID:    int(slot),
			FlagCount: int(flagCount),
			Flags:     flags,
		})
	}
	return out
}
