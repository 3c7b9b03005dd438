package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/track"
)

type switchJSON struct {
	Type     string
	Location map[string]interface{}
	Rotation map[string]interface{}
	State    int32
}

func rotatorJSON(r rrosave.Rotator) map[string]interface{} {
	return map[string]interface{}{"pitch": r.Pitch, "yaw": r.Yaw, "roll": r.Roll}
}

func newSwitchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switches [INPUT]",
		Short: "Print the save's track switches as JSON",
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

			switches, err := track.Switches(f)
			if err != nil {
				return err
			}

			out := make([]switchJSON, len(switches))
			for i, s := range switches {
				out[i] = switchJSON{
					Type:     s.Type.String(),
					Location: vectorJSON(s.Location),
					Rotation: rotatorJSON(s.Rotation),
					State:    s.State,
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "\t")
			return enc.Encode(out)
		},
	}
}
