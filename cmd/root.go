/*
Copyright © 2024 LuigiBlood

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LuigiBlood/dwarfone/cmd/browse"
	"github.com/LuigiBlood/dwarfone/internal/logger"
	"github.com/LuigiBlood/dwarfone/pkg/dump"
	"github.com/LuigiBlood/dwarfone/pkg/dwarf1"
	"github.com/LuigiBlood/dwarfone/pkg/elf32"
)

const (
	keyEnableQuirks = "enable-quirks"
	keyLogLevel     = "log-level"
	keyNoColor      = "no-color"
	keySections     = "sections"
	keyInteractive  = "interactive"

	envPrefix = "DWARFONE"

	banner = "DWARFone --- by LuigiBlood"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dwarfone [--enable-quirks] <object-file>",
	Short: "dump DWARF v1 debugging information of 32-bit ELF objects",
	Long: `dwarfone lists the entries of the .debug section (DWARF version 1) of a
32-bit ELF object file, one line per entry and one indented line per attribute.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), banner)
		if len(args) == 0 {
			return cmd.Usage()
		}
		return dumpFile(cmd.OutOrStdout(), args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dwarfone.yaml)")

	rootCmd.Flags().Bool(keyEnableQuirks, false, "enable the alternate decoding mode")
	rootCmd.Flags().String(keyLogLevel, "warn", "log level of decoder diagnostics: debug, info, warn, error")
	rootCmd.Flags().Bool(keyNoColor, false, "disable colored output")
	rootCmd.Flags().Bool(keySections, false, "list the section table before the dump")
	rootCmd.Flags().BoolP(keyInteractive, "i", false, "browse the decoded entries after the dump")

	for _, key := range []string{keyEnableQuirks, keyLogLevel, keyNoColor, keySections, keyInteractive} {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".dwarfone")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Logger.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// dumpFile writes the dump of the object file at path to w. Problems with
// the file or its debug section are reported on w and are not errors of the
// command.
func dumpFile(w io.Writer, path string) error {
	logger.SetLevel(logger.ParseLevel(viper.GetString(keyLogLevel)))

	colored := !viper.GetBool(keyNoColor) && !color.NoColor
	d := dump.New(w, colored)

	f, err := elf32.Open(path)
	if err != nil {
		d.Error(err)
		return nil
	}
	if viper.GetBool(keySections) {
		d.Sections(f.Sections)
	}

	off, size, err := f.Debug()
	if err != nil {
		d.Error(err)
		return nil
	}
	d.Header(off, size)

	r, err := dwarf1.NewReader(f.Data(), off, size, dwarf1.Endian(f.Endian()), dwarf1.Config{
		EnableQuirks: viper.GetBool(keyEnableQuirks),
		Logger:       logger.Logger.With("file", path),
	})
	if err != nil {
		d.Error(err)
		return nil
	}

	entries, err := d.Run(r)
	if err != nil {
		d.Error(err)
	}

	if viper.GetBool(keyInteractive) {
		return browse.NewSession(entries, w, colored).Start()
	}
	return nil
}
