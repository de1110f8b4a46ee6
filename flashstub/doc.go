// Package flashstub loads catalogs of flash algorithm stubs.
//
// A stub is the descriptive counterpart to a decoded device record: it
// names a flash algorithm, records the offsets of its callable routines
// (init, uninit, program page, erase sector, and optionally erase all),
// and carries the flash geometry and timing the algorithm was written for.
// Stubs are authored in a YAML catalog, not extracted from binaries.
//
// # Catalog Format
//
//	stubs:
//	  - name: nrf52
//	    description: nRF52 series internal flash
//	    default: true
//	    instructions: <encoded machine code>
//	    pcInit: 0x20
//	    pcUninit: 0x48
//	    pcProgramPage: 0x7C
//	    pcEraseSector: 0x60
//	    pcEraseAll: 0x54
//	    dataSectionOffset: 0x150
//	    flashStartAddr: 0x0
//	    flashEndAddr: 0x80000
//	    flashPageSize: 0x1000
//	    erasedByteValue: 0xFF
//	    flashSectorSize: 0x1000
//	    programTimeout: 100
//	    eraseTimeout: 500
//	    ramSize: 0x10000
//	    flashSize: 0x80000
//
// # Usage
//
//	catalog, err := flashstub.Load("stubs.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stub, ok := catalog.Default()
//	if !ok {
//	    stub, err = catalog.Get("nrf52")
//	}
package flashstub
