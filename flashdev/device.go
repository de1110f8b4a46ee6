package flashdev

// SectorInfo describes one contiguous region of flash with a uniform
// erase-sector size.
type SectorInfo struct {
	// Address is the start address of the region
	Address uint32 `json:"address"`

	// Size is the erase-sector size in bytes within the region
	Size uint32 `json:"size"`
}

// FlashDevice is the device record embedded in a flash algorithm binary.
// It describes the flash geometry and timing the algorithm was built for.
//
// Use New to decode a FlashDevice from ELF data; the record is immutable
// once decoded.
type FlashDevice struct {
	// DriverVersion is the flash algorithm format version
	DriverVersion uint16 `json:"driverVersion"`

	// Name is the human-readable device or algorithm name (at most 128
	// bytes in the binary record)
	Name string `json:"name"`

	// Typ is the flash algorithm type code
	Typ uint16 `json:"typ"`

	// StartAddress is the flash base address
	StartAddress uint32 `json:"startAddress"`

	// DeviceSize is the total flash size in bytes
	DeviceSize uint32 `json:"deviceSize"`

	// PageSize is the programmable page size in bytes
	PageSize uint32 `json:"pageSize"`

	// Reserved is unused by tooling and kept only for layout completeness
	Reserved uint32 `json:"-"`

	// ErasedDefaultValue is the byte value flash reads as when erased,
	// typically 0xFF
	ErasedDefaultValue uint8 `json:"erasedDefaultValue"`

	// ProgramPageTimeout is the page programming timeout in milliseconds
	ProgramPageTimeout uint32 `json:"programPageTimeout"`

	// EraseSectorTimeout is the sector erase timeout in milliseconds
	EraseSectorTimeout uint32 `json:"eraseSectorTimeout"`

	// Sectors lists the flash regions in the order they appear in the
	// record, ascending by address for a well-formed record
	Sectors []SectorInfo `json:"sectors"`
}
