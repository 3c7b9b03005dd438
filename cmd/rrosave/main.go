// The rrosave command inspects and edits Railroads Online save files.
package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	loadConfig()

	root := &cobra.Command{
		Use:   "rrosave",
		Short: "Inspect and edit Railroads Online save files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}
	root.PersistentFlags().String("log-level", viper.GetString("logLevel"), "log level (trace, debug, info, warn, error)")
	viper.BindPFlag("logLevel", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newStatCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newPropsCmd())
	root.AddCommand(newSplinesCmd())
	root.AddCommand(newSwitchesCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newNewCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("stat.largest", 20)

	viper.SetConfigName("rrosave")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(dir)
	}
	// A missing config file is fine; defaults and flags cover everything.
	viper.ReadInConfig()
}

func setupLogging() {
	var level zerolog.Level
	switch strings.ToUpper(viper.GetString("logLevel")) {
	case "TRACE":
		level = zerolog.TraceLevel
	case "DEBUG":
		level = zerolog.DebugLevel
	case "INFO":
		level = zerolog.InfoLevel
	case "WARN":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	})
}
