package flashstub

import "debug/elf"

// SectionData returns the bytes of the named section of an ELF binary.
// Stubs reference their code and data by section name; a missing section
// is reported as a *SectionNotFoundError.
func SectionData(f *elf.File, name string) ([]byte, error) {
	section := f.Section(name)
	if section == nil {
		return nil, &SectionNotFoundError{Section: name}
	}
	return section.Data()
}
