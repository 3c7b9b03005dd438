package main

import (
	"bytes"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/the10thWiz/rro-track-editor/gvas"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [INPUT]",
		Short: "Print a readable representation of a save file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}
			warn, err := gvas.Decoder{}.Dump(os.Stdout, bytes.NewReader(data))
			if warn != nil {
				log.Warn().Str("file", path).Err(warn).Msg("decode warning")
			}
			return err
		},
	}
}
