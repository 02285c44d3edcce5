package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Family selects which address family a host name is resolved to
type Family string

const (
	IPv4 Family = "4"
	IPv6 Family = "6"
)

func (f Family) IPv6() bool { return f == IPv6 }

func (f Family) Valid() bool { return f == IPv4 || f == IPv6 }

// Config describes a single probe run
type Config struct {
	Version  Family   `json:"version"`
	Count    uint16   `json:"count"`
	Limit    uint16   `json:"ops"`
	Timeout  Interval `json:"timeout"`
	Host     string   `json:"host"`
	Ports    string   `json:"ports"`
	LogLevel string   `json:"log_level"`
}

// Defaults returns the parameters used when nothing else is specified
func Defaults() Config {
	return Config{
		Version:  IPv4,
		Count:    6,
		Limit:    8,
		Timeout:  Interval{Duration: 3000 * time.Millisecond},
		Host:     "localhost",
		Ports:    "80,443",
		LogLevel: "warning",
	}
}

// Load reads a JSON file on top of Defaults, fields missing from the file keep their default value
func Load(path string) (cfg Config, err error) {
	cfg = Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = fmt.Errorf("parse config %q: %w", path, err)
		return
	}

	if !cfg.Version.Valid() {
		err = fmt.Errorf("parse config %q: invalid version %q", path, cfg.Version)
	}

	return
}

type Interval struct {
	time.Duration
}

func (d *Interval) UnmarshalJSON(data []byte) (err error) {
	var pstr string
	err = json.Unmarshal(data, &pstr)
	if err != nil {
		return err
	}
	d.Duration, err = time.ParseDuration(pstr)
	return
}

func (d *Interval) MarshalJSON() (data []byte, err error) {
	s := d.Duration.String()
	data, err = json.Marshal(s)
	return
}
