/*
gpsutc (GPS, UTC and local time)

Copyright (c) 2024-present JIANG Tingwei.
All rights reserved.

This source code is licensed in accordance with the terms specified in
the LICENSE file found in the root directory of this source tree.
*/
package main

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

/***** VARIABLE ********************************/

var (
	cfgFile   string
	once      bool
	at        int64
	tzOffset  int
	gpsOffset int
	leapMode  string
	interval  int
	format    string
)

var rootCmd = &cobra.Command{
	Use:   "gpsutc",
	Short: "Show local time, UTC and GPS time",
	Long: `gpsutc shows the current time three ways and keeps them updated:

  Local  civil time at a fixed offset from UTC
  UTC    with its modified julian date
  GPS    with its GPS week and second of week

Options given on the command line override the config file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

/***** FUNCTION ********************************/

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "the path of the config file (json, yaml or toml)")
	flags.BoolVar(&once, "once", false, "print the three lines once and exit")
	flags.Int64Var(&at, "at", 0, "show this unix time instead of the system clock, implies --once")
	flags.IntVar(&tzOffset, "tz", 0, "local time minus UTC in seconds")
	flags.IntVar(&gpsOffset, "gps-offset", 0, "GPS time minus UTC in seconds, for --leap fixed")
	flags.StringVar(&leapMode, "leap", "", `leap seconds policy, "fixed" or "table"`)
	flags.IntVar(&interval, "interval", 0, "refresh interval in milliseconds")
	flags.StringVar(&format, "format", "", "date template, e.g. '{y}-{m}-{d} {H}:{M}:{S}'")
}

/***********************************************/

func main() {
	log.Println("[info] gpsutc started")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalln("[fatal]", err)
	}
}

/***********************************************/

func run(cmd *cobra.Command, args []string) error {
	// 1. parse the config file
	cfg := NewConfig()

	if cfgFile != "" {
		log.Println("[info] parsing the config file...")

		if err := cfg.ParseFile(cfgFile); err != nil {
			return fmt.Errorf("error in the config file. %w", err)
		}

		log.Println("[info] finished parsing the config file")
	}

	// 2. apply command-line options
	if err := cfg.apply(flagOverrides(cmd.Flags())); err != nil {
		return fmt.Errorf("error in the command-line options. %w", err)
	}

	var clk Clock = Real()

	if cmd.Flags().Changed("at") {
		clk = StoppedClock(time.Unix(at, 0))
		once = true
	}

	// 3. display
	if once {
		return printOnce(cmd.OutOrStdout(), clk, cfg)
	}

	_, err := tea.NewProgram(newClockModel(clk, cfg)).Run()
	return err
}

/***********************************************/

// Config keys for the options set on the command line.
func flagOverrides(flags *pflag.FlagSet) tConfig {
	var tCfg tConfig

	if flags.Changed("tz") {
		tCfg.TzOffset = &tzOffset
	}

	if flags.Changed("gps-offset") {
		tCfg.GpsOffset = &gpsOffset
	}

	tCfg.LeapMode = leapMode
	tCfg.Interval = interval
	tCfg.Format = format
	return tCfg
}

/***********************************************/
