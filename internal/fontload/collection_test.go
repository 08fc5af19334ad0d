package fontload

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// makeCollection packs single fonts into a version 1 "ttcf" collection.
// Each member keeps its own bytes; only the table offsets are shifted to
// be relative to the collection start.
func makeCollection(t *testing.T, fonts ...[]byte) []byte {
	t.Helper()
	be := binary.BigEndian

	headerSize := 12 + 4*len(fonts)
	var body bytes.Buffer
	offsets := make([]uint32, len(fonts))

	for i, f := range fonts {
		base := headerSize + body.Len()
		offsets[i] = uint32(base)

		member := bytes.Clone(f)
		numTables := int(be.Uint16(member[4:]))
		for j := 0; j < numTables; j++ {
			rec := member[sfntHeaderSize+j*tableRecordSize:]
			be.PutUint32(rec[8:], be.Uint32(rec[8:])+uint32(base))
		}
		body.Write(member)
		for body.Len()%4 != 0 {
			body.WriteByte(0)
		}
	}

	out := make([]byte, headerSize, headerSize+body.Len())
	copy(out, collectionMagic)
	be.PutUint32(out[4:], 0x00010000)
	be.PutUint32(out[8:], uint32(len(fonts)))
	for i, off := range offsets {
		be.PutUint32(out[12+4*i:], off)
	}
	return append(out, body.Bytes()...)
}

func TestIsCollection(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"collection", []byte("ttcf\x00\x01\x00\x00"), true},
		{"truetype", goregular.TTF, false},
		{"short", []byte("ttc"), false},
		{"empty", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCollection(tc.data); got != tc.want {
				t.Errorf("IsCollection() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExtractCollectionMember(t *testing.T) {
	ttc := makeCollection(t, goregular.TTF, gobold.TTF)

	tests := []struct {
		name   string
		index  int
		source []byte
	}{
		{"regular", 0, goregular.TTF},
		{"bold", 1, gobold.TTF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := ExtractCollectionMember(ttc, tc.index)
			if err != nil {
				t.Fatalf("ExtractCollectionMember() error = %v", err)
			}
			if IsCollection(data) {
				t.Fatal("extracted member still has a collection header")
			}

			got, err := sfnt.Parse(data)
			if err != nil {
				t.Fatalf("sfnt.Parse(extracted) error = %v", err)
			}
			want, err := sfnt.Parse(tc.source)
			if err != nil {
				t.Fatalf("sfnt.Parse(source) error = %v", err)
			}
			if got.NumGlyphs() != want.NumGlyphs() {
				t.Errorf("NumGlyphs() = %d, want %d", got.NumGlyphs(), want.NumGlyphs())
			}

			var buf sfnt.Buffer
			gotName, _ := got.Name(&buf, sfnt.NameIDFull)
			wantName, _ := want.Name(&buf, sfnt.NameIDFull)
			if gotName != wantName {
				t.Errorf("full name = %q, want %q", gotName, wantName)
			}
		})
	}
}

func TestExtractCollectionMemberLayout(t *testing.T) {
	data, err := ExtractCollectionMember(makeCollection(t, goregular.TTF), 0)
	if err != nil {
		t.Fatalf("ExtractCollectionMember() error = %v", err)
	}
	be := binary.BigEndian

	if v := be.Uint32(data); v != versionTrueType {
		t.Errorf("sfnt version = %#x, want %#x", v, versionTrueType)
	}
	n := int(be.Uint16(data[4:]))
	if n == 0 {
		t.Fatal("numTables = 0")
	}

	var prev uint32
	for i := 0; i < n; i++ {
		rec := data[sfntHeaderSize+i*tableRecordSize:]
		tag, sum, off, length := be.Uint32(rec), be.Uint32(rec[4:]), be.Uint32(rec[8:]), be.Uint32(rec[12:])
		if i > 0 && tag <= prev {
			t.Errorf("table %d tag %#x not sorted after %#x", i, tag, prev)
		}
		prev = tag
		if off%4 != 0 {
			t.Errorf("table %#x offset %d not 4-byte aligned", tag, off)
		}
		if int(off)+int(length) > len(data) {
			t.Fatalf("table %#x overruns file: %d+%d > %d", tag, off, length, len(data))
		}
		if got := checksum(data[off : off+uint32(padded(int(length)))]); tag != uint32(tagHead) && got != sum {
			t.Errorf("table %#x checksum = %#x, recorded %#x", tag, got, sum)
		}
	}

	if got := checksum(data); got != checksumMagic {
		t.Errorf("whole-file checksum = %#x, want %#x", got, uint32(checksumMagic))
	}
}

func TestExtractCollectionMemberErrors(t *testing.T) {
	ttc := makeCollection(t, goregular.TTF)

	if _, err := ExtractCollectionMember(goregular.TTF, 0); !errors.Is(err, ErrNotCollection) {
		t.Errorf("single font: error = %v, want ErrNotCollection", err)
	}
	for _, index := range []int{-1, 1, 7} {
		if _, err := ExtractCollectionMember(ttc, index); !errors.Is(err, ErrMemberOutOfRange) {
			t.Errorf("index %d: error = %v, want ErrMemberOutOfRange", index, err)
		}
	}
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"empty", nil, 0},
		{"one word", []byte{0, 0, 0, 5}, 5},
		{"two words", []byte{0, 0, 1, 0, 0, 0, 0, 1}, 257},
		{"wraps", []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 2}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := checksum(tc.data); got != tc.want {
				t.Errorf("checksum() = %d, want %d", got, tc.want)
			}
		})
	}
}
