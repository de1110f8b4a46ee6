// Package flashdev decodes CMSIS-style flash device records from flash
// algorithm ELF binaries.
//
// # Device Record Format
//
// A flash algorithm binary carries a fixed 160-byte device record followed
// by a variable-length sector table. All integers are little-endian, at
// fixed offsets relative to the record's base address:
//
//	Offset  Size  Field
//	     0     2  driver version
//	     2   128  name (NUL-padded)
//	   130     2  algorithm type
//	   132     4  flash start address
//	   136     4  device size in bytes
//	   140     4  page size in bytes
//	   144     4  reserved
//	   148     1  erased default value
//	   152     4  program page timeout (ms)
//	   156     4  erase sector timeout (ms)
//	 160+8n     8  sector entry n: size (4), address (4)
//
// The sector table ends with an entry whose size and address both read
// 0xFFFFFFFF.
//
// # Usage
//
// Decode a record from an ELF binary:
//
//	f, err := elf.Open("algorithm.elf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	buffer, err := os.ReadFile("algorithm.elf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	segments := elfmem.SegmentsFromFile(f)
//	dev, err := flashdev.New(segments, buffer, 0x20000000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Device: %s\n", dev.Name)
//	fmt.Printf("Flash:  0x%08X, %d bytes\n", dev.StartAddress, dev.DeviceSize)
//	for _, s := range dev.Sectors {
//	    fmt.Printf("Sector region: 0x%08X, sector size %d\n", s.Address, s.Size)
//	}
//
// # Error Handling
//
// The only failure New reports is an unresolvable header window, surfaced
// as *ReadInfoError with the requested address and size. A sector table
// entry that falls outside segment coverage is the normal end of data, and
// an empty sector table is a valid result.
package flashdev
