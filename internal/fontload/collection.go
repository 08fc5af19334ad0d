package fontload

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"

	"github.com/go-text/typesetting/font/opentype"
)

// sfnt header constants.
const (
	sfntHeaderSize  = 12
	tableRecordSize = 16

	// checksumMagic is the constant from which the whole-file checksum is
	// subtracted to give head.checkSumAdjustment.
	checksumMagic = 0xB1B0AFBA

	// headAdjustOffset is the offset of checkSumAdjustment in the head table.
	headAdjustOffset = 8

	versionTrueType = 0x00010000
	versionCFF      = 0x4F54544F // "OTTO"
)

var (
	collectionMagic = []byte("ttcf")

	tagHead = opentype.MustNewTag("head")
	tagCFF  = opentype.MustNewTag("CFF ")
	tagCFF2 = opentype.MustNewTag("CFF2")
)

// IsCollection reports whether data starts with a font collection header.
func IsCollection(data []byte) bool {
	return len(data) >= len(collectionMagic) && bytes.Equal(data[:len(collectionMagic)], collectionMagic)
}

// sfntTable is one table of a font being reassembled.
type sfntTable struct {
	tag  opentype.Tag
	data []byte
}

// ExtractCollectionMember rebuilds member index of a font collection as a
// standalone font file. Table offsets in a collection are relative to the
// collection start, so the member cannot simply be sliced out: its table
// directory is rewritten with sorted tags, 4-byte aligned tables and
// recomputed checksums.
func ExtractCollectionMember(data []byte, index int) ([]byte, error) {
	if !IsCollection(data) {
		return nil, ErrNotCollection
	}

	loaders, err := opentype.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontload: parse collection: %w", err)
	}
	if index < 0 || index >= len(loaders) {
		return nil, fmt.Errorf("%w: index %d, collection has %d", ErrMemberOutOfRange, index, len(loaders))
	}

	ld := loaders[index]
	tags := ld.Tables()
	if len(tags) == 0 {
		return nil, ErrNoTables
	}
	slices.Sort(tags)

	tables := make([]sfntTable, 0, len(tags))
	for _, tag := range tags {
		raw, err := ld.RawTable(tag)
		if err != nil {
			return nil, fmt.Errorf("fontload: read table %q: %w", tag.String(), err)
		}
		tables = append(tables, sfntTable{tag: tag, data: raw})
	}
	return assembleSFNT(flavor(tags), tables), nil
}

// flavor returns the sfnt version for a font with the given tables.
func flavor(tags []opentype.Tag) uint32 {
	if slices.Contains(tags, tagCFF) || slices.Contains(tags, tagCFF2) {
		return versionCFF
	}
	return versionTrueType
}

// assembleSFNT writes a single-font file. tables must be sorted by tag.
func assembleSFNT(version uint32, tables []sfntTable) []byte {
	n := len(tables)
	pow := 1 << (bits.Len(uint(n)) - 1)
	searchRange := pow * tableRecordSize
	entrySelector := bits.Len(uint(pow)) - 1
	rangeShift := n*tableRecordSize - searchRange

	size := sfntHeaderSize + n*tableRecordSize
	for _, t := range tables {
		size += padded(len(t.data))
	}
	out := make([]byte, size)

	be := binary.BigEndian
	be.PutUint32(out[0:], version)
	be.PutUint16(out[4:], uint16(n))
	be.PutUint16(out[6:], uint16(searchRange))
	be.PutUint16(out[8:], uint16(entrySelector))
	be.PutUint16(out[10:], uint16(rangeShift))

	headAt := -1
	offset := sfntHeaderSize + n*tableRecordSize
	for i, t := range tables {
		body := out[offset : offset+len(t.data)]
		copy(body, t.data)
		if t.tag == tagHead && len(body) >= headAdjustOffset+4 {
			be.PutUint32(body[headAdjustOffset:], 0)
			headAt = offset
		}

		rec := out[sfntHeaderSize+i*tableRecordSize:]
		be.PutUint32(rec[0:], uint32(t.tag))
		be.PutUint32(rec[4:], checksum(out[offset:offset+padded(len(t.data))]))
		be.PutUint32(rec[8:], uint32(offset))
		be.PutUint32(rec[12:], uint32(len(t.data)))

		offset += padded(len(t.data))
	}

	if headAt >= 0 {
		be.PutUint32(out[headAt+headAdjustOffset:], checksumMagic-checksum(out))
	}
	return out
}

// checksum sums b as big-endian uint32 words. len(b) must be a multiple of 4.
func checksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i+4 <= len(b); i += 4 {
		sum += binary.BigEndian.Uint32(b[i:])
	}
	return sum
}

func padded(n int) int {
	return (n + 3) &^ 3
}
