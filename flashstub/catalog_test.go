package flashstub

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
stubs:
  - name: nrf52
    description: nRF52 series internal flash
    default: true
    pcInit: 0x20
    pcUninit: 0x48
    pcProgramPage: 0x7C
    pcEraseSector: 0x60
    pcEraseAll: 0x54
    dataSectionOffset: 0x150
    flashStartAddr: 0x0
    flashEndAddr: 0x80000
    flashPageSize: 0x1000
    erasedByteValue: 0xFF
    flashSectorSize: 0x1000
    programTimeout: 100
    eraseTimeout: 500
    ramSize: 0x10000
    flashSize: 0x80000
  - name: stm32f4
    description: STM32F4 internal flash
    pcInit: 0x30
    pcUninit: 0x58
    pcProgramPage: 0x8C
    pcEraseSector: 0x70
    flashStartAddr: 0x08000000
    flashEndAddr: 0x08100000
    flashPageSize: 0x400
    erasedByteValue: 0xFF
    flashSectorSize: 0x4000
    programTimeout: 200
    eraseTimeout: 4000
    ramSize: 0x20000
    flashSize: 0x100000
`

func TestLoadReader(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStubs int
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid catalog",
			input:     testCatalog,
			wantStubs: 2,
		},
		{
			name:    "empty document",
			input:   "",
			wantErr: true,
			errMsg:  "no stubs found",
		},
		{
			name:    "empty stub list",
			input:   "stubs: []\n",
			wantErr: true,
			errMsg:  "no stubs found",
		},
		{
			name: "missing name",
			input: "stubs:\n" +
				"  - description: unnamed\n",
			wantErr: true,
			errMsg:  "missing name",
		},
		{
			name: "duplicate name",
			input: "stubs:\n" +
				"  - name: dup\n" +
				"  - name: dup\n",
			wantErr: true,
			errMsg:  "duplicate stub name",
		},
		{
			name:    "malformed yaml",
			input:   "stubs: [}\n",
			wantErr: true,
			errMsg:  "failed to parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := LoadReader(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Len(t, catalog.Stubs, tt.wantStubs)
		})
	}
}

func TestLoadReaderFieldMapping(t *testing.T) {
	catalog, err := LoadReader(strings.NewReader(testCatalog))
	require.NoError(t, err)

	stub := catalog.Stubs[0]
	assert.Equal(t, "nrf52", stub.Name)
	assert.True(t, stub.Default)
	assert.Equal(t, uint32(0x20), stub.PCInit)
	assert.Equal(t, uint32(0x48), stub.PCUninit)
	assert.Equal(t, uint32(0x7C), stub.PCProgramPage)
	assert.Equal(t, uint32(0x60), stub.PCEraseSector)
	require.NotNil(t, stub.PCEraseAll)
	assert.Equal(t, uint32(0x54), *stub.PCEraseAll)
	assert.Equal(t, uint32(0x150), stub.DataSectionOffset)
	assert.Equal(t, uint32(0x80000), stub.FlashEndAddr)
	assert.Equal(t, uint32(0xFF), stub.ErasedByteValue)
	assert.Equal(t, uint32(500), stub.EraseTimeout)
	assert.True(t, stub.SupportsEraseAll())
}

func TestCatalogGet(t *testing.T) {
	catalog, err := LoadReader(strings.NewReader(testCatalog))
	require.NoError(t, err)

	stub, err := catalog.Get("stm32f4")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x08000000), stub.FlashStartAddr)
	// No eraseAll routine declared for this stub.
	assert.False(t, stub.SupportsEraseAll())

	_, err = catalog.Get("unknown")
	require.Error(t, err)
	var notFound *StubNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "unknown", notFound.Name)
}

func TestCatalogDefault(t *testing.T) {
	catalog, err := LoadReader(strings.NewReader(testCatalog))
	require.NoError(t, err)

	stub, ok := catalog.Default()
	require.True(t, ok)
	assert.Equal(t, "nrf52", stub.Name)
}

func TestCatalogDefaultAbsent(t *testing.T) {
	catalog, err := LoadReader(strings.NewReader(
		"stubs:\n" +
			"  - name: only\n"))
	require.NoError(t, err)

	_, ok := catalog.Default()
	assert.False(t, ok)
}
