package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	rrosave "github.com/the10thWiz/rro-track-editor"
)

type propJSON struct {
	Name  string
	Type  string
	Value interface{}
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props [INPUT]",
		Short: "Print every property of a save file as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			f, _, err := decodeInput(path)
			if err != nil {
				return err
			}

			out := make([]propJSON, len(f.Properties))
			for i, p := range f.Properties {
				out[i] = propJSON{
					Name:  p.Name,
					Type:  p.Value.Type().String(),
					Value: rrosave.ValueToJSONInterface(p.Value),
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "\t")
			return enc.Encode(out)
		},
	}
}
