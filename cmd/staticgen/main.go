package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/staticgen-dev/staticgen/internal/config"
	"github.com/staticgen-dev/staticgen/internal/registry"
	staticgeninternal "github.com/staticgen-dev/staticgen/internal/staticgen"
)

var Version = "dev"

var (
	oFlag        = flag.String("o", "", "output file suffix (default from config)")
	cFlag        = flag.String("c", "auto", "colorize (auto|always|never)")
	configFlag   = flag.String("config", "staticgen.toml", "configuration file")
	preludeFlag  = flag.String("prelude", "", "write the runtime library to this file and exit")
	featuresFlag = flag.String("features", "", "comma-separated prelude features (default from config)")
)

func init() {
	staticgeninternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *oFlag != "" {
		cfg.OutputSuffix = *oFlag
	}
	if *featuresFlag != "" {
		cfg.Features = strings.Split(*featuresFlag, ",")
	}

	if *preludeFlag != "" {
		code, err := registry.Prelude(cfg.Features)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := os.WriteFile(*preludeFlag, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("Generated:", *preludeFlag)
		return
	}

	outs, err := staticgeninternal.Main(wd, cfg, flag.Args())
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos = regexp.MustCompile(`(?m)^\S+:\d+:\d+:`)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllStringFunc(message, func(s string) string {
		return bold + s + reset
	})
}
