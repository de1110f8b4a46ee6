package elfmem

import "debug/elf"

// Segment describes one loadable region of an ELF binary, reduced to the
// three values address resolution needs.
type Segment struct {
	// Address is the physical load address of the segment
	Address uint32

	// Offset is the position of the segment's bytes in the file
	Offset uint32

	// Size is the effective segment size: the smaller of the in-memory
	// size and the on-file size
	Size uint32
}

// SegmentsFromFile extracts the segment list from an ELF file, in program
// header order. Only PT_LOAD segments carry flash contents; all other
// segment types are skipped.
func SegmentsFromFile(f *elf.File) []Segment {
	segments := make([]Segment, 0, len(f.Progs))
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		size := prog.Memsz
		if prog.Filesz < size {
			size = prog.Filesz
		}
		segments = append(segments, Segment{
			Address: uint32(prog.Paddr),
			Offset:  uint32(prog.Off),
			Size:    uint32(size),
		})
	}
	return segments
}

// Resolve returns the buffer bytes backing the target address range
// [address, address+size). The range must be fully contained in a single
// segment; the first fully-containing segment in program header order wins.
//
// The second return value reports whether resolution succeeded. Failure is
// an expected outcome (the range may simply lie outside every segment), not
// an error.
//
// Example:
//
//	window, ok := elfmem.Resolve(segments, buffer, 0x20000000, 8)
//	if ok {
//	    size := binary.LittleEndian.Uint32(window[0:4])
//	}
func Resolve(segments []Segment, buffer []byte, address, size uint32, opts ...Option) ([]byte, bool) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if size == 0 {
		return nil, false
	}

	// Widen to 64 bits so ranges near the top of the address space
	// cannot wrap.
	start := uint64(address)
	end := start + uint64(size)

	for _, seg := range segments {
		cfg.Logger.Debug().
			Uint32("segment_address", seg.Address).
			Uint32("segment_size", seg.Size).
			Msg("candidate segment")

		segStart := uint64(seg.Address)
		segEnd := segStart + uint64(seg.Size)

		// Requested range starts entirely after this segment.
		if start > segEnd {
			continue
		}

		// Requested range ends entirely before this segment.
		if end <= segStart {
			continue
		}

		// Partial overlap is rejected, not clipped.
		if start < segStart || end > segEnd {
			continue
		}

		fileStart := uint64(seg.Offset) + (start - segStart)
		fileEnd := fileStart + uint64(size)
		if fileEnd > uint64(len(buffer)) {
			// Segment header points past the end of the file.
			return nil, false
		}
		return buffer[fileStart:fileEnd], true
	}

	return nil, false
}
