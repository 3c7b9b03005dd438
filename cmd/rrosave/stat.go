package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/blake2b"

	rrosave "github.com/the10thWiz/rro-track-editor"
	"github.com/the10thWiz/rro-track-editor/gvas"
	"github.com/the10thWiz/rro-track-editor/track"
)

// readInput reads the whole input, which is a path or "-" for stdin.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeInput decodes the input save, logging any decode warning.
func decodeInput(path string) (*rrosave.File, []byte, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, nil, err
	}
	f, warn, err := gvas.Decoder{}.Decode(bytes.NewReader(data))
	if warn != nil {
		log.Warn().Str("file", path).Err(warn).Msg("decode warning")
	}
	if err != nil {
		return nil, nil, err
	}
	return f, data, nil
}

type propLen struct {
	Name   string
	Type   string
	Length int
}

type stats struct {
	Size   int
	Digest string

	SaveGameVersion uint32
	PackageVersion  uint32
	EngineVersion   string
	SaveGameType    string

	PropertyCount int
	TypeCount     map[string]int
	TailBytes     int `json:",omitempty"`

	CurveCount  int `json:",omitempty"`
	SwitchCount int `json:",omitempty"`

	LargestProperties []propLen `json:",omitempty"`
}

func valueLen(v rrosave.Value) int {
	switch v := v.(type) {
	case rrosave.ValueString:
		return len(v)
	case rrosave.ValueStringArray:
		return len(v)
	case rrosave.ValueIntArray:
		return len(v)
	case rrosave.ValueBoolArray:
		return len(v)
	case rrosave.ValueFloatArray:
		return len(v)
	case rrosave.ValueTextArray:
		return len(v)
	case rrosave.ValueVectorArray:
		return len(v)
	case rrosave.ValueRotatorArray:
		return len(v)
	}
	return 0
}

func fillStats(s *stats, f *rrosave.File, data []byte) {
	digest := blake2b.Sum256(data)
	s.Size = len(data)
	s.Digest = hex.EncodeToString(digest[:])

	s.SaveGameVersion = f.SaveGameVersion
	s.PackageVersion = f.PackageVersion
	s.EngineVersion = fmt.Sprintf("%d.%d.%d-%d+%s",
		f.EngineVersion.Major,
		f.EngineVersion.Minor,
		f.EngineVersion.Patch,
		f.EngineVersion.Build,
		f.EngineVersion.BuildID,
	)
	s.SaveGameType = f.SaveGameType
	s.TailBytes = len(f.Tail)

	s.PropertyCount = len(f.Properties)
	s.TypeCount = map[string]int{}
	for _, p := range f.Properties {
		s.TypeCount[p.Value.Type().String()]++
		s.LargestProperties = append(s.LargestProperties, propLen{
			Name:   p.Name,
			Type:   p.Value.Type().String(),
			Length: valueLen(p.Value),
		})
	}
	sort.Slice(s.LargestProperties, func(i, j int) bool {
		return s.LargestProperties[i].Length > s.LargestProperties[j].Length
	})
	if max := viper.GetInt("stat.largest"); len(s.LargestProperties) > max {
		s.LargestProperties = s.LargestProperties[:max]
	}

	if curves, err := track.Curves(f); err == nil {
		s.CurveCount = len(curves)
	}
	if switches, err := track.Switches(f); err == nil {
		s.SwitchCount = len(switches)
	}
}

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat [INPUT]",
		Short: "Print statistics for a save file as JSON",
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

			var s stats
			fillStats(&s, f, data)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "\t")
			return enc.Encode(&s)
		},
	}
}
