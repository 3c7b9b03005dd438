package main

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/the10thWiz/rro-track-editor/gvas"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [INPUT]",
		Short: "Check that a save file decodes and reencodes byte-identically",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			f, data, err := decodeInput(path)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := (gvas.Encoder{}).Encode(&buf, f); err != nil {
				return err
			}

			if !bytes.Equal(buf.Bytes(), data) {
				n := len(data)
				if len(buf.Bytes()) < n {
					n = len(buf.Bytes())
				}
				offset := n
				for i := 0; i < n; i++ {
					if buf.Bytes()[i] != data[i] {
						offset = i
						break
					}
				}
				return fmt.Errorf("reencoded output differs at offset %d (%d bytes in, %d bytes out)",
					offset, len(data), len(buf.Bytes()))
			}

			log.Info().
				Str("file", path).
				Int("bytes", len(data)).
				Int("properties", len(f.Properties)).
				Msg("round trip ok")
			return nil
		},
	}
}
