package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/berquerant/polylist/pkg/config"
	"github.com/berquerant/polylist/pkg/display"
	"github.com/berquerant/polylist/pkg/menu"
	"github.com/berquerant/polylist/pkg/slicex"
	"github.com/berquerant/polylist/version"
	"github.com/spf13/pflag"
)

const usage = `polylist -- linked list of polynomial coefficients with an interactive menu

# Usage

polylist [flags] [-- VALUE...]

The menu reads one answer per line from stdin.
List A holds polynomial coefficients from the highest degree down to the constant term.
Processing A splits every non-integer value into its whole part (list B)
and its fractional part (list K); integer values are skipped.

# Examples

// start with an empty list A
polylist

// start with A = [1, 0, -3], i.e. x^2 - 3.00
polylist -- 1 0 -3

// show A with 3 decimals, then exit
printf '4\n0\n' | polylist -n 3 -- 3.14159 2

// load A from a command
polylist --source 'seq 1 0.5 3'

// load A from a command piped through filters
polylist --source 'cat coefficients.txt' -f 'grep -v "^#"' -f 'head -n 5'

# Flags

`

func main() {
	fs := pflag.NewFlagSet("main", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	var (
		displayVersion = fs.Bool("version", false, "display version")
		debug          = fs.Bool("debug", false, "enable debug logs")
		precision      = fs.IntP("precision", "n", display.DefaultPrecision, "number of decimals to display")
		shell          = fs.StringP("shell", "s", "bash", "shell command to be executed")
		src            = fs.String("source", "", `command that outputs the initial values of list A;
whitespace separated numbers; also available as the create mode 3`)
		filter []string
	)
	// workaround: https://github.com/spf13/pflag/issues/370
	fs.StringArrayVarP(&filter, "filter", "f", nil,
		"process the source output; invoked like 'source | filter'",
	)

	before, after := slicex.Split(os.Args[1:], "--")
	err := fs.Parse(before)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	fail(err)
	if *displayVersion {
		version.Write(os.Stdout)
		return
	}

	c := config.NewConfig(os.Stdin, os.Stdout, *precision, *shell)
	c.Debug = *debug
	c.Source = *src
	c.Filter = filter
	c.SetupLogger(os.Stderr)
	slog.Debug("parse args", slog.Any("args", before))
	slog.Debug("init args", slog.Any("args", after))
	fail(c.Init(append(fs.Args(), after...)))

	cj, _ := json.Marshal(c)
	slog.Debug("config", slog.String("json", string(cj)))
	fail(menu.Main(c))
}

func fail(err error) {
	if err != nil {
		slog.Error("exit", slog.Any("err", err))
		os.Exit(1)
	}
}
