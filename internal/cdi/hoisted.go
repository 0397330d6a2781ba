package cdi

// HoistedLocalScopeRecord is the live range of one state-machine hoisted
// local within the rewritten method body.
type HoistedLocalScopeRecord struct {
	StartOffset uint32 `json:"start_offset"`
	Length      uint32 `json:"length"`
}

// EndOffset returns the exclusive end of the range.
func (h HoistedLocalScopeRecord) EndOffset() uint32 {
	return h.StartOffset + h.Length
}

// DecodeHoistedScopes decodes the body of a hoisted-local-scopes record.
// Each entry is a {start u32, end u32} pair with the end offset inclusive,
// so the decoded length is end-start+1. The all-zero pair is the default
// entry and decodes to a zero-length range.
func DecodeHoistedScopes(body []byte, diags *Diags) []HoistedLocalScopeRecord {
	s := NewStream(body)
	count, err := s.ReadUint32()
	if err != nil {
		diags.Add(0, DiagTruncated, "hoisted scopes: missing entry count")
		return nil
	}

	var out []HoistedLocalScopeRecord
	for i := uint32(0); i < count; i++ {
		at := uint64(s.Position())
		start, err := s.ReadUint32()
		if err != nil {
			diags.Addf(at, DiagTruncated, "hoisted scopes: entry %d truncated", i)
			break
		}
		end, err := s.ReadUint32()
		if err != nil {
			diags.Addf(at, DiagTruncated, "hoisted scopes: entry %d truncated", i)
			break
		}
		if start == 0 && end == 0 {
			out = append(out, HoistedLocalScopeRecord{})
			continue
		}
		if end < start {
			diags.Addf(at, DiagInvalid, "hoisted scopes: entry %d has end %d before start %d", i, end, start)
			continue
		}
		out = append(out, HoistedLocalScopeRecord{
			StartOffset: start,
			Length:      end - start + 1,
		})
	}
	return out
}
