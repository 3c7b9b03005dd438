package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/the10thWiz/rro-track-editor/asset"
	"github.com/the10thWiz/rro-track-editor/gvas"
)

func newNewCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "new OUTPUT",
		Short: "Write an empty save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					log.Error().Str("file", path).Msg("file exists; use --force to overwrite")
					return os.ErrExist
				}
			}

			f, err := asset.Default()
			if err != nil {
				return err
			}
			if id := viper.GetString("new.buildID"); id != "" {
				f.EngineVersion.BuildID = id
			}

			if err := gvas.WriteFile(path, f); err != nil {
				return err
			}
			log.Info().Str("file", path).Msg("wrote empty save")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
