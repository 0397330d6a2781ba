package cdi

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

// RecordKind identifies a custom-debug-info sub-record.
type RecordKind uint8

const (
	KindUsingGroups                 RecordKind = 0
	KindForwardIterator             RecordKind = 1
	KindForwardModule               RecordKind = 2
	KindHoistedLocalScopes          RecordKind = 3
	KindStateMachineTypeName        RecordKind = 4
	KindDynamicLocals               RecordKind = 5
	KindEditAndContinueLocalSlotMap RecordKind = 6
	KindEditAndContinueLambdaMap    RecordKind = 7
	KindTupleElementNames           RecordKind = 8
)

func (k RecordKind) String() string {
	switch k {
	case KindUsingGroups:
		return "UsingGroups"
	case KindForwardIterator:
		return "ForwardIterator"
	case KindForwardModule:
		return "ForwardModule"
	case KindHoistedLocalScopes:
		return "HoistedLocalScopes"
	case KindStateMachineTypeName:
		return "StateMachineTypeName"
	case KindDynamicLocals:
		return "DynamicLocals"
	case KindEditAndContinueLocalSlotMap:
		return "EditAndContinueLocalSlotMap"
	case KindEditAndContinueLambdaMap:
		return "EditAndContinueLambdaMap"
	case KindTupleElementNames:
		return "TupleElementNames"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// BlobVersion is the only container version this decoder understands.
const BlobVersion = 4

// Record is one decoded sub-record. Body aliases the input blob.
type Record struct {
	Version uint8
	Kind    RecordKind
	Body    []byte
}

// Blob layout: a 4-byte global header {version u8, count u8, pad u16}
// followed by records, each with an 8-byte header {version u8, kind u8,
// pad u16, size u32}. Size includes the header and is 4-byte aligned.
const (
	globalHeaderSize = 4
	recordHeaderSize = 8
)

// Records parses the container and returns all sub-records. A nil or empty
// blob yields no records and no error. A structurally invalid container
// (bad version, impossible record size) returns an error; the caller is
// expected to abandon the whole per-method decode.
func Records(blob []byte) ([]Record, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	if len(blob) < globalHeaderSize {
		return nil, errors.Errorf("container truncated: %d bytes", len(blob))
	}
	if blob[0] != BlobVersion {
		return nil, errors.Errorf("unsupported container version %d", blob[0])
	}
	count := int(blob[1])

	var recs []Record
	off := globalHeaderSize
	for len(recs) < count && off+recordHeaderSize <= len(blob) {
		version := blob[off]
		kind := RecordKind(blob[off+1])
		size := int(binary.LittleEndian.Uint32(blob[off+4:]))
		if size < recordHeaderSize || off+size > len(blob) {
			return nil, errors.Errorf("record %d (%s) at offset %d: bad size %d", len(recs), kind, off, size)
		}
		recs = append(recs, Record{
			Version: version,
			Kind:    kind,
			Body:    blob[off+recordHeaderSize : off+size],
		})
		// Sizes are emitted 4-byte aligned; realign defensively in case a
		// producer stored the unpadded length.
		off += (size + 3) &^ 3
	}
	if len(recs) < count {
		return nil, errors.Errorf("container declares %d records, found %d", count, len(recs))
	}
	return recs, nil
}

// Find returns the body of the first record of the given kind. Absence is
// reported via ok, not as an error.
func Find(recs []Record, kind RecordKind) (body []byte, ok bool) {
	for _, r := range recs {
		if r.Kind == kind {
			return r.Body, true
		}
	}
	return nil, false
}
