package extractor

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"
)

const (
	sectorSize    = 512
	secEndOfChain = 0xFFFFFFFE
	secFAT        = 0xFFFFFFFD
	secFree       = 0xFFFFFFFF
	streamSectors = 8 // 4096 bytes keeps the stream out of the mini stream
)

func utf16leBytes(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = append(b, byte(u), byte(u>>8))
	}
	return b
}

// writeCompoundFile builds a minimal version-3 compound binary file with a
// single stream: header, one FAT sector, one directory sector, then the
// stream data padded with NULs to eight sectors.
func writeCompoundFile(t *testing.T, streamName string, streamData []byte) string {
	t.Helper()

	streamSize := streamSectors * sectorSize
	if len(streamData) > streamSize {
		t.Fatalf("stream data too large: %d", len(streamData))
	}

	buf := make([]byte, sectorSize+(2+streamSectors)*sectorSize)
	le := binary.LittleEndian

	// Header.
	copy(buf, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	le.PutUint16(buf[24:], 0x003E) // minor version
	le.PutUint16(buf[26:], 0x0003) // major version 3
	le.PutUint16(buf[28:], 0xFFFE) // little-endian byte order
	le.PutUint16(buf[30:], 9)      // 512-byte sectors
	le.PutUint16(buf[32:], 6)      // 64-byte mini sectors
	le.PutUint32(buf[44:], 1)      // one FAT sector
	le.PutUint32(buf[48:], 1)      // directory starts at sector 1
	le.PutUint32(buf[56:], 4096)   // mini stream cutoff
	le.PutUint32(buf[60:], secEndOfChain)
	le.PutUint32(buf[68:], secEndOfChain)
	le.PutUint32(buf[76:], 0) // DIFAT[0]: FAT at sector 0
	for off := 80; off < sectorSize; off += 4 {
		le.PutUint32(buf[off:], secFree)
	}

	// FAT sector (sector 0).
	fat := buf[sectorSize:]
	le.PutUint32(fat[0:], secFAT)
	le.PutUint32(fat[4:], secEndOfChain) // directory chain: sector 1 only
	for i := 0; i < streamSectors-1; i++ {
		le.PutUint32(fat[(2+i)*4:], uint32(3+i)) // stream chain 2..9
	}
	le.PutUint32(fat[(2+streamSectors-1)*4:], secEndOfChain)
	for i := 2 + streamSectors; i < sectorSize/4; i++ {
		le.PutUint32(fat[i*4:], secFree)
	}

	// Directory sector (sector 1): root entry then the stream entry.
	dir := buf[2*sectorSize:]
	writeDirEntry(dir[0:128], "Root Entry", 5, secFree, secFree, 1, secEndOfChain, 0)
	writeDirEntry(dir[128:256], streamName, 2, secFree, secFree, secFree, 2, uint64(streamSize))

	// Stream data (sectors 2..9), NUL padded.
	copy(buf[3*sectorSize:], streamData)

	path := filepath.Join(t.TempDir(), "fixture.doc")
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeDirEntry(entry []byte, name string, objType byte, left, right, child, startSector uint32, size uint64) {
	le := binary.LittleEndian
	encoded := utf16leBytes(name)
	copy(entry[0:64], encoded)
	le.PutUint16(entry[64:], uint16(len(encoded)+2)) // includes UTF-16 NUL
	entry[66] = objType
	entry[67] = 1 // black
	le.PutUint32(entry[68:], left)
	le.PutUint32(entry[72:], right)
	le.PutUint32(entry[76:], child)
	le.PutUint32(entry[116:], startSector)
	le.PutUint64(entry[120:], size)
}

func TestExtractDoc(t *testing.T) {
	e := newTestExtractor()

	text := "Quarterly maintenance report for pumping station three"
	path := writeCompoundFile(t, "WordDocument", utf16leBytes(text))

	got, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got.Format != FormatDoc {
		t.Errorf("Format = %v, want %v", got.Format, FormatDoc)
	}
	if got.Content != text {
		t.Errorf("Content = %q, want %q", got.Content, text)
	}
}

func TestExtractDocMissingTextStream(t *testing.T) {
	e := newTestExtractor()

	path := writeCompoundFile(t, "ObjectPool", utf16leBytes("unrelated stream"))

	_, err := e.Extract(context.Background(), path)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("Extract() error = %v, want ErrInvalidDocument", err)
	}
}

func TestExtractDocNotACompoundFile(t *testing.T) {
	e := newTestExtractor()

	path := writeFile(t, "garbage.doc", []byte("plain bytes, no compound header"))

	_, err := e.Extract(context.Background(), path)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("Extract() error = %v, want ErrInvalidDocument", err)
	}
}

func TestDecodeDocStream(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "utf-16 with trailing nul padding",
			data: append(utf16leBytes("Hello  compound\tworld"), 0x00, 0x00, 0x00, 0x00),
			want: "Hello compound world",
		},
		{
			name: "whitespace runs collapsed",
			data: utf16leBytes("  spaced \n\n out  "),
			want: "spaced out",
		},
		{
			name: "empty stream",
			data: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeDocStream(tt.data); got != tt.want {
				t.Errorf("decodeDocStream() = %q, want %q", got, tt.want)
			}
		})
	}
}
