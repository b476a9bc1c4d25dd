package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/user/playlist-checker/internal/checker"
	"github.com/user/playlist-checker/internal/config"
	"github.com/user/playlist-checker/internal/playlist"
	"github.com/user/playlist-checker/internal/probe"
	"github.com/user/playlist-checker/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	switch command {
	case "check":
		if !runCheck(cfg, logger, os.Args[2:]) {
			os.Exit(1)
		}
	case "sort":
		if !runSort(cfg, os.Args[2:]) {
			os.Exit(1)
		}
	case "fmt":
		if !runFormat(cfg, os.Args[2:]) {
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCheck(cfg *config.Config, logger *zap.Logger, args []string) bool {
	path := cfg.PlaylistPath
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open playlist: %v\n", err)
		return false
	}
	entries, err := playlist.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read playlist: %v\n", err)
		return false
	}

	prober := probe.NewProber(cfg, logger)
	core := checker.New(cfg, prober, report.NewConsole(os.Stdout), nil, logger)
	run := core.Run(context.Background(), entries)

	// Dead streams alone never fail the run; CI opts in via FAIL_ON_DEAD.
	if cfg.FailOnDead && run.DeadCount > 0 {
		return false
	}
	return true
}

func runSort(cfg *config.Config, args []string) bool {
	fs := flag.NewFlagSet("sort", flag.ExitOnError)
	write := fs.Bool("w", false, "write the result back to the playlist file")
	fs.Parse(args)

	path := fs.Arg(0)
	if path == "" {
		path = cfg.PlaylistPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read playlist: %v\n", err)
		return false
	}

	sorted := playlist.Sort(string(data), language.Make(cfg.SortLocale))
	return emit(path, sorted, *write)
}

func runFormat(cfg *config.Config, args []string) bool {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, "write the result back to the playlist file")
	fs.Parse(args)

	path := fs.Arg(0)
	if path == "" {
		path = cfg.PlaylistPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read playlist: %v\n", err)
		return false
	}

	return emit(path, playlist.Format(string(data)), *write)
}

func emit(path, text string, write bool) bool {
	if !write {
		fmt.Print(text)
		return true
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write playlist: %v\n", err)
		return false
	}
	return true
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func printUsage() {
	fmt.Println("Playlist liveness checker")
	fmt.Println("")
	fmt.Println("Usage: checker <command> [flags] [playlist]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  check   - Probe every stream in the playlist and report dead ones")
	fmt.Println("  sort    - Reorder entries by group-title")
	fmt.Println("  fmt     - Normalize playlist formatting")
	fmt.Println("")
	fmt.Println("Flags for sort and fmt:")
	fmt.Println("  -w      - Write the result back to the playlist file")
	fmt.Println("")
	fmt.Println("Environment:")
	fmt.Println("  PLAYLIST_PATH    - Default playlist when none is given")
	fmt.Println("  FAIL_ON_DEAD     - Exit non-zero when dead streams are found")
	fmt.Println("  PROBE_TIMEOUT_MS - Per-attempt probe timeout")
	fmt.Println("  SORT_LOCALE      - Collation locale for sort")
}
