package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jeffnv/blockclock"
	"github.com/jeffnv/blockclock/internal/art"
	"github.com/jeffnv/blockclock/internal/glyph"
)

var errHelp = errors.New("help requested")

type config struct {
	timezone  int
	center    bool
	font      string
	tui       bool
	logPath   string
	debug     bool
	listFonts bool
}

func parseArgs(args []string) (config, error) {
	cfg := config{font: "0"}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			return cfg, errHelp
		case "-c", "--center":
			cfg.center = true
		case "--tui":
			cfg.tui = true
		case "--debug":
			cfg.debug = true
		case "--list-fonts":
			cfg.listFonts = true
		case "-t", "--timezone":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%s requires an argument", args[i])
			}
			i++
			tz, err := strconv.Atoi(args[i])
			if err != nil {
				return cfg, fmt.Errorf("invalid timezone offset %q", args[i])
			}
			cfg.timezone = tz
		case "-f", "--font":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%s requires an argument", args[i])
			}
			i++
			cfg.font = args[i]
		case "--log":
			if i+1 >= len(args) {
				return cfg, fmt.Errorf("%s requires an argument", args[i])
			}
			i++
			cfg.logPath = args[i]
		default:
			return cfg, fmt.Errorf("unknown argument %q", args[i])
		}
	}

	return cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: blockclock [flags]

Flags:
  -t, --timezone <int>     Hour offset from UTC, -23 to 23 (default 0)
  -c, --center             Center the clock in the terminal
  -f, --font <id|name>     Font index or name (default 0)
      --list-fonts         Show every font and exit
      --tui                Run as a full-screen bubbletea program
      --log <file>         Write JSON logs to file
      --debug              Log at debug level

Examples:
  blockclock --center
  blockclock -t -5 -f rounded
  blockclock --font 1 --tui`)
}

func listFonts(w io.Writer) error {
	for _, f := range glyph.Default.Fonts() {
		block, err := art.ComposeString("12:34:56", f)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d  %s\n%s\n\n", f.ID, f.Name, block)
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseArgs(args)
	if errors.Is(err, errHelp) {
		printUsage(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage(os.Stderr)
		return 1
	}

	if cfg.listFonts {
		if err := listFonts(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	logger, err := blockclock.NewLogger(cfg.logPath, cfg.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	clockCfg, err := blockclock.NewConfig(
		blockclock.WithTimezone(cfg.timezone),
		blockclock.WithCenter(cfg.center),
		blockclock.WithFontName(cfg.font),
		blockclock.WithTUI(cfg.tui),
		blockclock.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := blockclock.Run(ctx, clockCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
