package flashstub

import "fmt"

// StubNotFoundError indicates that a catalog has no stub with the
// requested name.
type StubNotFoundError struct {
	Name string
}

func (e *StubNotFoundError) Error() string {
	return fmt.Sprintf("stub %q not found in catalog", e.Name)
}

// SectionNotFoundError indicates that an ELF binary is missing a section a
// stub requires to be present.
type SectionNotFoundError struct {
	Section string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %s not found, but it is required to be present", e.Section)
}
