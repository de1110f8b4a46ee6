// Command flashinfo extracts the flash device record from a flash
// algorithm ELF binary and prints it.
//
// The record base address comes from --address, or from the value of a
// symbol named with --symbol (typically FlashDevice).
//
//	flashinfo --address 0x20000000 algorithm.elf
//	flashinfo --symbol FlashDevice --json algorithm.elf
package main

import (
	"debug/elf"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moffa90/go-flashalg/elfmem"
	"github.com/moffa90/go-flashalg/flashdev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		address    string
		symbol     string
		jsonOutput bool
		logLevel   string
		maxSectors int
	)

	cmd := &cobra.Command{
		Use:   "flashinfo <elf-file>",
		Short: "Print the flash device record embedded in a flash algorithm ELF",
		Long: `Extract and print the flash device record embedded in a flash algorithm ELF binary.

The record describes the flash geometry an algorithm was built for: start
address, total size, page size, the erased byte value, timing parameters,
and the sector regions. Its base address is given directly with --address,
or looked up in the ELF symbol table with --symbol.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}

			path := args[0]
			f, err := elf.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open ELF file: %w", err)
			}
			defer func() { _ = f.Close() }()

			buffer, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read ELF file: %w", err)
			}

			base, err := recordAddress(f, address, symbol)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("file", path).
				Uint32("address", base).
				Msg("decoding device record")

			segments := elfmem.SegmentsFromFile(f)
			dev, err := flashdev.New(segments, buffer, base,
				flashdev.WithLogger(logger),
				flashdev.WithMaxSectors(maxSectors),
			)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(cmd, dev)
			}
			printDevice(cmd, dev)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Record base address (e.g. 0x20000000)")
	cmd.Flags().StringVar(&symbol, "symbol", "", "Symbol whose value is the record base address")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the record as JSON")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&maxSectors, "max-sectors", flashdev.DefaultMaxSectors, "Cap on sector table entries")

	return cmd
}

// recordAddress resolves the record base address from the flags: an
// explicit address wins, otherwise the named symbol's value is used.
func recordAddress(f *elf.File, address, symbol string) (uint32, error) {
	switch {
	case address != "":
		value, err := strconv.ParseUint(address, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid address %q: %w", address, err)
		}
		return uint32(value), nil

	case symbol != "":
		symbols, err := f.Symbols()
		if err != nil {
			return 0, fmt.Errorf("failed to read symbol table: %w", err)
		}
		for _, sym := range symbols {
			if sym.Name == symbol {
				return uint32(sym.Value), nil
			}
		}
		return 0, fmt.Errorf("symbol %q not found", symbol)

	default:
		return 0, fmt.Errorf("either --address or --symbol is required")
	}
}

func newLogger(level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger(), nil
}

func printJSON(cmd *cobra.Command, dev *flashdev.FlashDevice) error {
	data, err := json.MarshalIndent(dev, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printDevice(cmd *cobra.Command, dev *flashdev.FlashDevice) {
	cmd.Printf("Device:           %s\n", dev.Name)
	cmd.Printf("Driver version:   %d\n", dev.DriverVersion)
	cmd.Printf("Algorithm type:   %d\n", dev.Typ)
	cmd.Printf("Flash start:      0x%08X\n", dev.StartAddress)
	cmd.Printf("Flash size:       %d bytes\n", dev.DeviceSize)
	cmd.Printf("Page size:        %d bytes\n", dev.PageSize)
	cmd.Printf("Erased value:     0x%02X\n", dev.ErasedDefaultValue)
	cmd.Printf("Program timeout:  %d ms\n", dev.ProgramPageTimeout)
	cmd.Printf("Erase timeout:    %d ms\n", dev.EraseSectorTimeout)
	cmd.Printf("Sector regions:   %d\n", len(dev.Sectors))
	for _, s := range dev.Sectors {
		cmd.Printf("  0x%08X  sector size %d bytes\n", s.Address, s.Size)
	}
}
