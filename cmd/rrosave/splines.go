package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/track"
)

type curveJSON struct {
	Type          string
	Location      map[string]interface{}
	ControlPoints []map[string]interface{}
	Visibility    []bool
}

func vectorJSON(v rrosave.Vector) map[string]interface{} {
	return map[string]interface{}{"x": v.X, "y": v.Y, "z": v.Z}
}

func newSplinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splines [INPUT]",
		Short: "Print the save's spline curves as JSON",
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

			curves, err := track.Curves(f)
			if err != nil {
				return err
			}

			out := make([]curveJSON, len(curves))
			for i, c := range curves {
				points := make([]map[string]interface{}, len(c.ControlPoints))
				for j, p := range c.ControlPoints {
					points[j] = vectorJSON(p)
				}
				out[i] = curveJSON{
					Type:          c.Type.String(),
					Location:      vectorJSON(c.Location),
					ControlPoints: points,
					Visibility:    c.Visibility,
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "\t")
			return enc.Encode(out)
		},
	}
}
