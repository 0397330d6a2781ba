package cdi

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func hoistedBody(pairs ...[2]uint32) []byte {
	var buf bytes.Buffer
	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], uint32(len(pairs)))
	buf.Write(u32[:])
	for _, p := range pairs {
		binary.LittleEndian.PutUint32(u32[:], p[0])
		buf.Write(u32[:])
		binary.LittleEndian.PutUint32(u32[:], p[1])
		buf.Write(u32[:])
	}
	return buf.Bytes()
}

func TestDecodeHoistedScopes(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]uint32
		want  []HoistedLocalScopeRecord
		diags int
	}{
		{
			name:  "inclusive end",
			pairs: [][2]uint32{{10, 19}},
			want:  []HoistedLocalScopeRecord{{StartOffset: 10, Length: 10}},
		},
		{
			name:  "zero pair is default entry",
			pairs: [][2]uint32{{0, 0}},
			want:  []HoistedLocalScopeRecord{{}},
		},
		{
			name:  "single offset range",
			pairs: [][2]uint32{{5, 5}},
			want:  []HoistedLocalScopeRecord{{StartOffset: 5, Length: 1}},
		},
		{
			name:  "end before start dropped",
			pairs: [][2]uint32{{20, 10}, {30, 39}},
			want:  []HoistedLocalScopeRecord{{StartOffset: 30, Length: 10}},
			diags: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags Diags
			got := DecodeHoistedScopes(hoistedBody(tt.pairs...), &diags)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d (%+v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if diags.Len() != tt.diags {
				t.Errorf("diags = %v, want %d", diags.Items(), tt.diags)
			}
		})
	}
}

func TestDecodeHoistedScopes_Truncated(t *testing.T) {
	body := hoistedBody([2]uint32{10, 19})
	body = append(body, 1, 2) // partial second entry
	binary.LittleEndian.PutUint32(body[:4], 2)

	var diags Diags
	got := DecodeHoistedScopes(body, &diags)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if diags.Len() != 1 || diags.Items()[0].Kind != DiagTruncated {
		t.Errorf("diags = %v", diags.Items())
	}
}
