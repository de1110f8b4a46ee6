package flashstub

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestELF assembles a minimal ELF32 little-endian image with a single
// data-carrying section named .stub and a section name string table.
func buildTestELF(t *testing.T) []byte {
	t.Helper()

	const (
		headerSize  = 52
		sectionOff  = headerSize // .stub bytes
		sectionSize = 8
		strtabOff   = sectionOff + sectionSize
		shOff       = 80
		shEntSize   = 40
	)

	shstrtab := []byte("\x00.stub\x00.shstrtab\x00")
	buf := make([]byte, shOff+3*shEntSize)
	le := binary.LittleEndian

	// ELF header.
	copy(buf[0:4], "\x7fELF")
	buf[4] = 1 // 32-bit
	buf[5] = 1 // little-endian
	buf[6] = 1 // current version
	le.PutUint16(buf[16:], 2)  // ET_EXEC
	le.PutUint16(buf[18:], 40) // EM_ARM
	le.PutUint32(buf[20:], 1)
	le.PutUint32(buf[32:], shOff)
	le.PutUint16(buf[40:], headerSize)
	le.PutUint16(buf[42:], 32) // program header entry size
	le.PutUint16(buf[46:], shEntSize)
	le.PutUint16(buf[48:], 3) // section count
	le.PutUint16(buf[50:], 2) // string table index

	// Section contents.
	copy(buf[sectionOff:], []byte{1, 2, 3, 4, 5, 6, 7, 8})
	copy(buf[strtabOff:], shstrtab)

	shdr := func(index int, nameOff, typ, addr, offset, size uint32) {
		base := shOff + index*shEntSize
		le.PutUint32(buf[base+0:], nameOff)
		le.PutUint32(buf[base+4:], typ)
		le.PutUint32(buf[base+12:], addr)
		le.PutUint32(buf[base+16:], offset)
		le.PutUint32(buf[base+20:], size)
		le.PutUint32(buf[base+32:], 1) // alignment
	}

	// Index 0 stays the null section.
	shdr(1, 1, uint32(elf.SHT_PROGBITS), 0x20000000, sectionOff, sectionSize)
	shdr(2, 7, uint32(elf.SHT_STRTAB), 0, strtabOff, uint32(len(shstrtab)))

	return buf
}

func TestSectionData(t *testing.T) {
	f, err := elf.NewFile(bytes.NewReader(buildTestELF(t)))
	require.NoError(t, err)

	data, err := SectionData(f, ".stub")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, data)
}

func TestSectionDataMissing(t *testing.T) {
	f, err := elf.NewFile(bytes.NewReader(buildTestELF(t)))
	require.NoError(t, err)

	_, err = SectionData(f, ".missing")
	require.Error(t, err)

	var notFound *SectionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ".missing", notFound.Section)
	assert.Contains(t, err.Error(), ".missing")
}
