package tagfont

import "os"
import "encoding/binary"

import "github.com/pkg/errors"

// Fixed layout constants for the on-disk tag. All multi-byte integers are
// stored big-endian.
const (
	headerOffset    = 0x40 // tag header precedes the font header
	fontHeaderSize  = 0x9C
	charTableSize   = 0x0C // one auxiliary character table header
	glyphRecordSize = 0x14
)

// Field offsets within the 0x9C-byte font header.
const (
	offsetAscendingHeight  = 0x04
	offsetDescendingHeight = 0x06
	offsetLeadingHeight    = 0x08
	offsetLeadingWidth     = 0x0A
	offsetCharTablesCount  = 0x30
	offsetCharactersCount  = 0x7C
	offsetPixelsCount      = 0x88
)

var ErrTruncated = errors.New("font tag truncated")

// Parses a font tag located at the given filepath. Any failure, including
// a truncated or malformed resource, is an error: the engine requires a
// complete, correctly shaped resource and does not attempt partial
// recovery.
func ParseFromPath(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open font tag %s", path)
	}
	font, err := ParseFromBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse font tag %s", path)
	}
	return font, nil
}

// Parses a font tag from its raw bytes. The returned [Font] owns copies of
// everything it needs; the input slice may be reused afterwards.
func ParseFromBytes(data []byte) (*Font, error) {
	reader := tagReader{data: data, offset: headerOffset}
	header, err := reader.bytes(fontHeaderSize)
	if err != nil { return nil, err }

	font := &Font{
		AscendingHeight:  int16(binary.BigEndian.Uint16(header[offsetAscendingHeight:])),
		DescendingHeight: int16(binary.BigEndian.Uint16(header[offsetDescendingHeight:])),
		LeadingHeight:    int16(binary.BigEndian.Uint16(header[offsetLeadingHeight:])),
		LeadingWidth:     int16(binary.BigEndian.Uint16(header[offsetLeadingWidth:])),
	}

	// the auxiliary character tables only matter for their total size: each
	// table header is followed elsewhere in the stream by 2*count bytes
	tableCount := binary.BigEndian.Uint32(header[offsetCharTablesCount:])
	tables, err := reader.bytes(int(tableCount) * charTableSize)
	if err != nil { return nil, err }
	for i := uint32(0); i < tableCount; i++ {
		count := binary.BigEndian.Uint32(tables[int(i)*charTableSize:])
		err = reader.skip(2 * int(count))
		if err != nil { return nil, err }
	}

	// glyph records use a 1-based-or-0 character code; glyph 0 is reserved
	// and codes past the 8-bit table are discarded
	characterCount := binary.BigEndian.Uint32(header[offsetCharactersCount:])
	records, err := reader.bytes(int(characterCount) * glyphRecordSize)
	if err != nil { return nil, err }
	for i := uint32(0); i < characterCount; i++ {
		record := records[int(i)*glyphRecordSize:]
		code := int16(binary.BigEndian.Uint16(record))
		if code <= 0 || code >= 256 { continue }
		font.Glyphs[code] = Glyph{
			CharacterWidth: int16(binary.BigEndian.Uint16(record[0x02:])),
			BitmapWidth:    int16(binary.BigEndian.Uint16(record[0x04:])),
			BitmapHeight:   int16(binary.BigEndian.Uint16(record[0x06:])),
			BitmapOriginX:  int16(binary.BigEndian.Uint16(record[0x08:])),
			BitmapOriginY:  int16(binary.BigEndian.Uint16(record[0x0A:])),
			PixelsOffset:   binary.BigEndian.Uint32(record[0x10:]),
		}
	}

	pixelCount := binary.BigEndian.Uint32(header[offsetPixelsCount:])
	pool, err := reader.bytes(int(pixelCount))
	if err != nil { return nil, err }
	font.Pixels = append([]uint8(nil), pool...)

	// every referenced bitmap must fit in the pool
	for code := range font.Glyphs {
		glyph := &font.Glyphs[code]
		if glyph.BitmapWidth <= 0 || glyph.BitmapHeight <= 0 { continue }
		end := int(glyph.PixelsOffset) + int(glyph.BitmapWidth)*int(glyph.BitmapHeight)
		if end > len(font.Pixels) {
			return nil, errors.Errorf(
				"glyph %d bitmap exceeds pixel pool (%d > %d)",
				code, end, len(font.Pixels),
			)
		}
	}
	return font, nil
}

// ---- helpers ----

// A byte cursor over the raw tag. Reads that cannot be satisfied report
// [ErrTruncated] instead of slicing out of range.
type tagReader struct {
	data   []byte
	offset int
}

func (self *tagReader) bytes(n int) ([]byte, error) {
	if n < 0 || self.offset+n > len(self.data) { return nil, ErrTruncated }
	chunk := self.data[self.offset : self.offset+n]
	self.offset += n
	return chunk, nil
}

func (self *tagReader) skip(n int) error {
	if n < 0 || self.offset+n > len(self.data) { return ErrTruncated }
	self.offset += n
	return nil
}
