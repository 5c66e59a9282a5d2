// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/units"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/microsoft/seqgen/internal/sequence"
)

func newGenCommand() *cobra.Command {
	outputFilePath := ""
	cmd := &cobra.Command{
		Use:   "seqgen SIZE",
		Short: "Generate deterministic self-describing data.",
		Long: `Generate SIZE bytes of deterministic data in which every 4-byte group
encodes its own position: the output is the 4-byte little-endian encodings of
1, 2, 3, ... concatenated and truncated to exactly SIZE bytes. Feeding it
through a chunk-based pipeline makes swapped, duplicated, truncated, or
misaligned chunks stand out in the result.

The SIZE argument must be a number with an optional unit (e.g. 10MB). 1KB and 1KiB are both treated as 1024 bytes.`,
		DisableFlagsInUseLine: true,
		Args:                  exactlyOneArg("size"),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizeString := args[0]
			if sizeString != "" && sizeString[len(sizeString)-1] != 'B' {
				sizeString += "B"
			}

			parsedBytes, err := units.ParseBase2Bytes(sizeString)
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[0], err)
			}

			byteCount := int64(parsedBytes)
			if byteCount < 0 {
				return fmt.Errorf("the size cannot be negative")
			}
			if byteCount > sequence.MaxCount {
				return fmt.Errorf("the size cannot exceed %d bytes: %w", sequence.MaxCount, sequence.ErrCountTooLarge)
			}

			var outputFile *os.File
			if outputFilePath != "" {
				outputFile, err = os.OpenFile(outputFilePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
				if err != nil {
					log.Fatal().Err(err).Msg("Unable to open output file for writing")
				}
				defer outputFile.Close()
			} else {
				outputFile = os.Stdout
				WarnIfRunningInPowerShell()
			}

			if err := sequence.Write(byteCount, outputFile); err != nil {
				return err
			}

			log.Debug().Msgf("Wrote %s", humanize.IBytes(uint64(byteCount)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFilePath, "output", "o", outputFilePath, "The file write to. If not specified, data is written to standard out.")
	return cmd
}
