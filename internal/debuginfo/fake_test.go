package debuginfo

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"github.com/pkg/errors"

	"pdbeval/internal/cdi"
	"pdbeval/internal/scopes"
)

// fakeReader serves canned per-method data.
type fakeReader struct {
	blob    []byte
	scopes  []scopes.Scope
	imports [][]string
	externs []string
	sigs    [][]byte

	scopesErr error
}

func (f *fakeReader) CustomDebugInfo(MethodID) ([]byte, error) { return f.blob, nil }

func (f *fakeReader) Scopes(MethodID, uint32) ([]scopes.Scope, error) {
	return f.scopes, f.scopesErr
}

func (f *fakeReader) ImportStringGroups(MethodID) ([][]string, error) { return f.imports, nil }

func (f *fakeReader) ExternAliasStrings(MethodID) ([]string, error) { return f.externs, nil }

func (f *fakeReader) LocalSignatures(MethodID) ([][]byte, error) { return f.sigs, nil }

// portableReader wraps a fakeReader with a portable-metadata answer.
type portableReader struct {
	fakeReader
	info *MethodDebugInfo
	err  error
}

func (p *portableReader) IsPortable(MethodID) bool { return true }

func (p *portableReader) MethodDebugInfo(MethodID, uint32, Dialect) (*MethodDebugInfo, error) {
	return p.info, p.err
}

// fakeType treats the signature bytes as the type name; "<error>" is the
// error type.
type fakeType struct {
	name string
}

func (t fakeType) IsError() bool { return t.name == "<error>" }

type fakeSymbol struct {
	name  string
	typ   string
	value any
	slot  int
	flags []bool
}

func (s fakeSymbol) Name() string { return s.name }

type fakeProvider struct{}

func (fakeProvider) DecodeTypeSignature(sig []byte) (TypeSymbol, error) {
	if len(sig) == 0 {
		return nil, errors.New("empty signature")
	}
	return fakeType{name: string(sig)}, nil
}

func (fakeProvider) TypeFromSerializedName(name string) (TypeSymbol, error) {
	return fakeType{name: name}, nil
}

func (fakeProvider) DecodeConstantValue(typ TypeSymbol, raw []byte) (any, error) {
	if string(raw) == "unconvertible" {
		return nil, errors.New("bad stored value")
	}
	return string(raw), nil
}

func (fakeProvider) LocalConstant(name string, typ TypeSymbol, value any, flags []bool) (Symbol, error) {
	return fakeSymbol{name: name, typ: typ.(fakeType).name, value: value, slot: cdi.ConstantSlot, flags: flags}, nil
}

func (fakeProvider) LocalVariable(name string, slot int, sig []byte, flags []bool) (Symbol, error) {
	if len(sig) == 0 {
		return nil, errors.New("empty local signature")
	}
	return fakeSymbol{name: name, typ: string(sig), slot: slot, flags: flags}, nil
}

// Blob builders mirroring the container layout.

func buildContainer(recs ...[2]any) []byte {
	var buf bytes.Buffer
	buf.WriteByte(cdi.BlobVersion)
	buf.WriteByte(byte(len(recs)))
	buf.Write([]byte{0, 0})
	for _, r := range recs {
		kind := r[0].(cdi.RecordKind)
		body := r[1].([]byte)
		padded := (len(body) + 3) &^ 3
		buf.WriteByte(cdi.BlobVersion)
		buf.WriteByte(byte(kind))
		buf.Write([]byte{0, 0})
		var size [4]byte
		binary.LittleEndian.PutUint32(size[:], uint32(8+padded))
		buf.Write(size[:])
		buf.Write(body)
		buf.Write(make([]byte, padded-len(body)))
	}
	return buf.Bytes()
}

func dynamicRecord(entries ...cdi.DynamicLocalInfo) []byte {
	var buf bytes.Buffer
	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], uint32(len(entries)))
	buf.Write(u32[:])
	for _, e := range entries {
		var flagBytes [64]byte
		for i := 0; i < e.FlagCount; i++ {
			if e.Flags>>uint(i)&1 != 0 {
				flagBytes[i] = 1
			}
		}
		buf.Write(flagBytes[:])
		binary.LittleEndian.PutUint32(u32[:], uint32(e.FlagCount))
		buf.Write(u32[:])
		binary.LittleEndian.PutUint32(u32[:], uint32(int32(e.SlotID)))
		buf.Write(u32[:])
		var nameField [128]byte
		for i, u := range utf16.Encode([]rune(e.Name)) {
			binary.LittleEndian.PutUint16(nameField[i*2:], u)
		}
		buf.Write(nameField[:])
	}
	return buf.Bytes()
}

func hoistedRecord(pairs ...[2]uint32) []byte {
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
