// Package elfmem resolves target memory addresses to byte windows inside the
// loadable segments of an ELF binary.
//
// # Address Resolution
//
// An ELF program header describes where a chunk of the file is loaded in
// target memory. Given the raw file bytes and the segment list, a target
// address range maps back to file bytes as:
//
//	file offset = segment offset + (address - segment address)
//
// A range is only resolvable when it is fully contained in a single segment.
// Ranges that straddle two segments are rejected rather than clipped: the
// bytes of adjacent segments are not necessarily contiguous in the file, so
// a stitched-together window could silently mix unrelated data.
//
// # Usage
//
// Resolve a window from an opened ELF file:
//
//	f, err := elf.Open("algorithm.elf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buffer, _ := os.ReadFile("algorithm.elf")
//
//	segments := elfmem.SegmentsFromFile(f)
//	window, ok := elfmem.Resolve(segments, buffer, 0x2000_0000, 160)
//	if !ok {
//	    // no single segment covers the range
//	}
//
// Resolution is a pure function of its inputs. It never mutates the segment
// list or the buffer, so concurrent calls against the same data are safe.
package elfmem
