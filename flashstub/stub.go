package flashstub

// Stub describes a flash algorithm template: where its callable routines
// live once loaded into target RAM, and the flash geometry it services.
//
// Unlike flashdev.FlashDevice, which is decoded from an algorithm binary,
// a Stub is authored in a catalog file and carries its numeric fields
// independently of any ELF data.
type Stub struct {
	// Name identifies the stub within a catalog
	Name string `yaml:"name" json:"name"`

	// Description is free-form documentation for the stub
	Description string `yaml:"description" json:"description"`

	// Default marks the stub a catalog falls back to when no explicit
	// choice is made
	Default bool `yaml:"default" json:"default"`

	// Instructions is the encoded machine code blob of the algorithm
	Instructions string `yaml:"instructions" json:"instructions"`

	// PCInit is the offset of the init routine
	PCInit uint32 `yaml:"pcInit" json:"pcInit"`

	// PCUninit is the offset of the uninit routine
	PCUninit uint32 `yaml:"pcUninit" json:"pcUninit"`

	// PCProgramPage is the offset of the program-page routine
	PCProgramPage uint32 `yaml:"pcProgramPage" json:"pcProgramPage"`

	// PCEraseSector is the offset of the erase-sector routine
	PCEraseSector uint32 `yaml:"pcEraseSector" json:"pcEraseSector"`

	// PCEraseAll is the offset of the erase-all routine, if the
	// algorithm provides one
	PCEraseAll *uint32 `yaml:"pcEraseAll,omitempty" json:"pcEraseAll,omitempty"`

	// DataSectionOffset is the offset of the algorithm's data section
	// within the loaded blob
	DataSectionOffset uint32 `yaml:"dataSectionOffset" json:"dataSectionOffset"`

	// FlashStartAddr is the first flash address the stub services
	FlashStartAddr uint32 `yaml:"flashStartAddr" json:"flashStartAddr"`

	// FlashEndAddr is the end of the serviced flash range
	FlashEndAddr uint32 `yaml:"flashEndAddr" json:"flashEndAddr"`

	// FlashPageSize is the programmable page size in bytes
	FlashPageSize uint32 `yaml:"flashPageSize" json:"flashPageSize"`

	// ErasedByteValue is the value flash reads as when erased
	ErasedByteValue uint32 `yaml:"erasedByteValue" json:"erasedByteValue"`

	// FlashSectorSize is the erase-sector size in bytes
	FlashSectorSize uint32 `yaml:"flashSectorSize" json:"flashSectorSize"`

	// ProgramTimeout is the page programming timeout in milliseconds
	ProgramTimeout uint32 `yaml:"programTimeout" json:"programTimeout"`

	// EraseTimeout is the sector erase timeout in milliseconds
	EraseTimeout uint32 `yaml:"eraseTimeout" json:"eraseTimeout"`

	// RAMSize is the RAM the algorithm needs on the target
	RAMSize uint32 `yaml:"ramSize" json:"ramSize"`

	// FlashSize is the total flash size in bytes
	FlashSize uint32 `yaml:"flashSize" json:"flashSize"`
}

// SupportsEraseAll reports whether the stub provides a whole-chip erase
// routine.
func (s *Stub) SupportsEraseAll() bool {
	return s.PCEraseAll != nil
}
