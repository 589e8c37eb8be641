package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"gpsutc/datetime"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

/***** CONSTANT ********************************/

const (
	MIN_TIMEZONE_OFFSET = -14 * 3600
	MAX_TIMEZONE_OFFSET = 14 * 3600
	MIN_GPS_UTC_OFFSET  = 0
	MAX_GPS_UTC_OFFSET  = 99
	MIN_INTERVAL        = 10
	MAX_INTERVAL        = 60000
	DEFAULT_INTERVAL    = 100
	DEFAULT_FORMAT      = "{y}-{m}-{d} {H}:{M}:{S}"
	LEAP_FIXED          = "fixed"
	LEAP_TABLE          = "table"
)

/***** STRUCT **********************************/

// Keys as written in the config file. Unset keys keep their current value.
type tConfig struct {
	TzOffset  *int   `json:"timezone offset" yaml:"timezone offset" toml:"timezone offset"`
	GpsOffset *int   `json:"gps utc offset" yaml:"gps utc offset" toml:"gps utc offset"`
	LeapMode  string `json:"leap seconds" yaml:"leap seconds" toml:"leap seconds"`
	Interval  int    `json:"interval" yaml:"interval" toml:"interval"`
	Format    string `json:"format" yaml:"format" toml:"format"`
}

/***********************************************/

type Config struct {
	TzOffset  int // local time minus UTC, in seconds
	GpsOffset int // GPS time minus UTC, in seconds, for LEAP_FIXED
	LeapMode  string
	Leap      datetime.LeapSeconds
	Interval  time.Duration
	Format    string
}

/***** FUNCTION ********************************/

func NewConfig() Config {
	return Config{
		TzOffset:  datetime.DEFAULT_TIMEZONE_OFFSET,
		GpsOffset: datetime.DEFAULT_GPS_UTC_OFFSET,
		LeapMode:  LEAP_FIXED,
		Leap:      datetime.FixedLeapSeconds(datetime.DEFAULT_GPS_UTC_OFFSET),
		Interval:  DEFAULT_INTERVAL * time.Millisecond,
		Format:    DEFAULT_FORMAT,
	}
}

/***********************************************/

// Parse a config file, choosing the decoder by its extension.
func (cfg *Config) ParseFile(cfgFile string) error {
	fp, err := os.Open(cfgFile)

	if err != nil {
		return err
	}

	defer fp.Close()

	var tCfg tConfig

	switch strings.ToLower(filepath.Ext(cfgFile)) {
	case ".json":
		err = decodeJson(fp, &tCfg)
	case ".yaml", ".yml":
		err = decodeYaml(fp, &tCfg)
	case ".toml":
		err = decodeToml(fp, &tCfg)
	default:
		return fmt.Errorf(`unsupported config file type "%s"`, filepath.Ext(cfgFile))
	}

	if err != nil {
		return err
	}

	return cfg.apply(tCfg)
}

/***********************************************/

func (cfg *Config) apply(tCfg tConfig) error {
	// check the timezone offset
	if tCfg.TzOffset != nil {
		if *tCfg.TzOffset < MIN_TIMEZONE_OFFSET || *tCfg.TzOffset > MAX_TIMEZONE_OFFSET {
			return fmt.Errorf(`value in "timezone offset" must be in %d-%d`, MIN_TIMEZONE_OFFSET, MAX_TIMEZONE_OFFSET)
		}

		cfg.TzOffset = *tCfg.TzOffset
	}

	// check the gps utc offset
	if tCfg.GpsOffset != nil {
		if *tCfg.GpsOffset < MIN_GPS_UTC_OFFSET || *tCfg.GpsOffset > MAX_GPS_UTC_OFFSET {
			return fmt.Errorf(`value in "gps utc offset" must be in %d-%d`, MIN_GPS_UTC_OFFSET, MAX_GPS_UTC_OFFSET)
		}

		cfg.GpsOffset = *tCfg.GpsOffset
	}

	// check the leap seconds policy
	if tCfg.LeapMode != "" {
		mode := strings.ToLower(tCfg.LeapMode)

		if mode != LEAP_FIXED && mode != LEAP_TABLE {
			return fmt.Errorf(`value in "leap seconds" must be "%s" or "%s"`, LEAP_FIXED, LEAP_TABLE)
		}

		cfg.LeapMode = mode
	}

	if cfg.LeapMode == LEAP_TABLE {
		cfg.Leap = datetime.DefaultLeapSecondTable()
	} else {
		cfg.Leap = datetime.FixedLeapSeconds(cfg.GpsOffset)
	}

	// check the interval
	if tCfg.Interval != 0 {
		if tCfg.Interval < MIN_INTERVAL || tCfg.Interval > MAX_INTERVAL {
			return fmt.Errorf(`value in "interval" must be in %d-%d`, MIN_INTERVAL, MAX_INTERVAL)
		}

		cfg.Interval = time.Duration(tCfg.Interval) * time.Millisecond
	}

	if tCfg.Format != "" {
		cfg.Format = tCfg.Format
	}

	return nil
}

/***********************************************/

func decodeJson(r io.Reader, tCfg *tConfig) error {
	dcr := json.NewDecoder(r)
	dcr.DisallowUnknownFields()

	for dcr.More() {
		if err := dcr.Decode(tCfg); err != nil {
			return err
		}
	}

	return nil
}

/***********************************************/

func decodeYaml(r io.Reader, tCfg *tConfig) error {
	dcr := yaml.NewDecoder(r)
	dcr.KnownFields(true)

	// an empty document sets nothing
	if err := dcr.Decode(tCfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

/***********************************************/

func decodeToml(r io.Reader, tCfg *tConfig) error {
	md, err := toml.NewDecoder(r).Decode(tCfg)

	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return fmt.Errorf(`unknown key "%s"`, undecoded[0].String())
	}

	return nil
}

/***********************************************/
