package flashdev

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/moffa90/go-flashalg/elfmem"
)

// Constants for the device record layout.
const (
	// InfoSize is the size of the fixed device record header in bytes
	InfoSize = 160

	// SectorEntrySize is the size of one sector table entry in bytes
	SectorEntrySize = 8

	// MaxNameLength is the maximum length of the name field in bytes
	MaxNameLength = 128

	// SectorSentinel is the field value marking the end of the sector table
	SectorSentinel = 0xFFFFFFFF

	// DefaultMaxSectors is the default cap on sector table entries
	DefaultMaxSectors = 1024
)

// New decodes the device record stored at address in the ELF described by
// segments and backed by buffer.
//
// The fixed 160-byte header must be fully contained in a single segment;
// otherwise New fails with a *ReadInfoError. The sector table following the
// header is read entry by entry until the sentinel, loss of segment
// coverage, or the configured sector cap. An empty sector table is not an
// error.
//
// Example:
//
//	segments := elfmem.SegmentsFromFile(f)
//	dev, err := flashdev.New(segments, buffer, 0x20000000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %d KiB flash at 0x%08X\n", dev.Name, dev.DeviceSize/1024, dev.StartAddress)
func New(segments []elfmem.Segment, buffer []byte, address uint32, opts ...Option) (*FlashDevice, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	data, ok := elfmem.Resolve(segments, buffer, address, InfoSize, elfmem.WithLogger(cfg.Logger))
	if !ok {
		cfg.Logger.Debug().
			Uint32("address", address).
			Int("size", InfoSize).
			Msg("device record header not covered by any segment")
		return nil, &ReadInfoError{Address: address, Size: InfoSize}
	}

	dev := &FlashDevice{
		DriverVersion:      binary.LittleEndian.Uint16(data[0:2]),
		Name:               decodeName(data[2 : 2+MaxNameLength]),
		Typ:                binary.LittleEndian.Uint16(data[130:132]),
		StartAddress:       binary.LittleEndian.Uint32(data[132:136]),
		DeviceSize:         binary.LittleEndian.Uint32(data[136:140]),
		PageSize:           binary.LittleEndian.Uint32(data[140:144]),
		Reserved:           binary.LittleEndian.Uint32(data[144:148]),
		ErasedDefaultValue: data[148],
		ProgramPageTimeout: binary.LittleEndian.Uint32(data[152:156]),
		EraseSectorTimeout: binary.LittleEndian.Uint32(data[156:160]),
	}
	dev.Sectors = readSectors(segments, buffer, address, cfg)

	cfg.Logger.Debug().
		Str("name", dev.Name).
		Uint32("start_address", dev.StartAddress).
		Uint32("device_size", dev.DeviceSize).
		Int("sectors", len(dev.Sectors)).
		Msg("decoded flash device record")

	return dev, nil
}

// readSectors reads the sector table that follows the fixed header.
//
// Each entry is 8 bytes: size then address, both little-endian u32. The
// table ends at an entry whose fields are both the sentinel, or as soon as
// an entry's window is no longer covered by a segment. Running out of
// coverage is the normal end of data for records with no sentinel, so it
// never produces an error.
func readSectors(segments []elfmem.Segment, buffer []byte, address uint32, cfg Config) []SectorInfo {
	var sectors []SectorInfo

	offset := uint64(InfoSize)
	for len(sectors) < cfg.MaxSectors {
		// Keep the arithmetic in 64 bits: an entry past the top of the
		// 32-bit address space must end the table, not wrap around to
		// low addresses.
		entryAddress := uint64(address) + offset
		if entryAddress > math.MaxUint32 {
			break
		}

		data, ok := elfmem.Resolve(segments, buffer, uint32(entryAddress), SectorEntrySize, elfmem.WithLogger(cfg.Logger))
		if !ok {
			break
		}

		size := binary.LittleEndian.Uint32(data[0:4])
		sectorAddress := binary.LittleEndian.Uint32(data[4:8])
		if size == SectorSentinel && sectorAddress == SectorSentinel {
			break
		}

		sectors = append(sectors, SectorInfo{Address: sectorAddress, Size: size})
		offset += SectorEntrySize
	}

	return sectors
}

// decodeName decodes the NUL-padded name field. The name ends at the first
// zero byte, or occupies the whole field if there is none. Each invalid
// UTF-8 sequence is replaced with its own replacement character rather than
// rejected.
func decodeName(field []byte) string {
	length := MaxNameLength
	for i, b := range field {
		if b == 0 {
			length = i
			break
		}
	}
	raw := field[:length]
	if utf8.Valid(raw) {
		return string(raw)
	}

	var name strings.Builder
	name.Grow(length)
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size == 1 {
			name.WriteRune(utf8.RuneError)
		} else {
			name.Write(raw[:size])
		}
		raw = raw[size:]
	}
	return name.String()
}
