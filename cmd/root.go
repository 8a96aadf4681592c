/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/snapshot-json2c/csource"
	"github.com/mmuldo/snapshot-json2c/snapshot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"path"
	"strings"
)

const (
	defaultInput = "snapshot-rev4.json"
	envPrefix    = "SNAPSHOT"
	configName   = ".snapshot-json2c"
)

// NewRootCmd builds the snapshot-json2c command. Each command carries its own
// viper instance, so settings never leak between invocations.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "snapshot-json2c",
		Short: "Generates C test vectors from an HSLuv snapshot",
		Long: `Reads an HSLuv snapshot (a JSON object mapping hex colors to their rgb, xyz,
luv, lch, hsluv and hpluv values) and prints a C fragment declaring the
TestVector type, the snapshot array and snapshot_n.

Redirect stdout to the header the C tests include:

  snapshot-json2c > snapshot.h`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(v.GetString("log-level"))
			return run(cmd, v, logger)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+configName+".yaml)")
	cmd.Flags().StringP("input", "i", defaultInput, "snapshot JSON file")
	cmd.Flags().Bool("strict", false, "require every key to be a 6 digit hex color")
	cmd.Flags().String("log-level", "warn", "log level (trace, debug, info, warn, error, off)")

	for _, name := range []string{"input", "strict", "log-level"} {
		v.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if e := cmd.Execute(); e != nil {
		newLogger("error").Error("generation failed", "error", e)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, v *viper.Viper, logger hclog.Logger) error {
	input := v.GetString("input")
	opts := snapshot.Options{Strict: v.GetBool("strict")}
	logger.Debug("loading snapshot", "input", input, "strict", opts.Strict, "config", v.ConfigFileUsed())

	s, e := snapshot.Load(input, opts)
	if e != nil {
		return e
	}
	if len(s) == 0 {
		logger.Warn("snapshot has no records", "input", input)
	}
	logger.Debug("loaded snapshot", "records", len(s))

	if e := csource.Write(cmd.OutOrStdout(), s, input); e != nil {
		return fmt.Errorf("writing output: %w", e)
	}

	return nil
}

// initConfig reads the config file, if any, and env overrides.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		p, e := homedir.Expand(cfgFile)
		if e != nil {
			return e
		}
		v.SetConfigFile(p)
		return v.ReadInConfig()
	}

	home, e := homedir.Dir()
	if e != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(configName)

	if e := v.ReadInConfig(); e != nil {
		if _, ok := e.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path.Join(home, configName), e)
	}

	return nil
}
