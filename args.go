package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/thetooth/zing/config"
)

const (
	zingVersion = "zing Go 1.2"
	zingUsage   = "Usage: zing [ -h | [-4|-6] [-c count] [-op ops] [-p ports] [-t timeout] ] host"
	zingExample = "zing -4 -c 6 -op 8 -p 80,443 -t 3000 google.com"
)

var (
	errHelp  = errors.New("help requested")
	errUsage = errors.New("invalid number of command-line parameters")
)

func usage(w io.Writer) {
	fmt.Fprintf(w, "%s\n%s\n%s\n\n", zingVersion, zingUsage, zingExample)
}

// parseArgs applies command line arguments on top of cfg. Malformed numbers are
// reported to out and leave the previous value in place.
func parseArgs(args []string, cfg config.Config, out io.Writer) (config.Config, error) {
	if len(args) < 1 {
		usage(out)
		return cfg, errUsage
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h":
			usage(out)
			return cfg, errHelp
		case "-4":
			cfg.Version = config.IPv4
		case "-6":
			cfg.Version = config.IPv6
		case "-c", "-op", "-t", "-p":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("missing value for parameter '%s'", arg)
			}
			i++
			value := args[i]

			if arg == "-p" {
				cfg.Ports = value
				continue
			}
			n, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				fmt.Fprintf(out, "Error: Failure Parsing Number... %v!\n", err)
				continue
			}
			switch arg {
			case "-c":
				cfg.Count = uint16(n)
			case "-op":
				cfg.Limit = uint16(n)
			case "-t":
				cfg.Timeout = config.Interval{Duration: time.Duration(n) * time.Millisecond}
			}
		default:
			if len(arg) > 0 && arg[0] == '-' {
				return cfg, fmt.Errorf("invalid parameter '%s' not recognized", arg)
			}
			cfg.Host = arg
		}
	}

	return cfg, nil
}
