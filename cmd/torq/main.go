// Package main is the entry point for the torq client.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dshills/torq/internal/client"
	"github.com/dshills/torq/internal/command"
	"github.com/dshills/torq/internal/keymap"
	"github.com/dshills/torq/internal/script"
	"github.com/dshills/torq/internal/settings"
	"github.com/dshills/torq/internal/value"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"mvdan.cc/sh/v3/shell"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// defaultRCFile is loaded at startup unless --no-rc is given.
const defaultRCFile = "~/.config/torq/rc"

type options struct {
	url    string
	rcFile string
	noRC   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("torq", pflag.ContinueOnError)
	var (
		opts        options
		showVersion bool
	)
	flags.StringVar(&opts.url, "url", "", "Daemon endpoint URL (overrides connect.* settings)")
	flags.StringVar(&opts.rcFile, "rcfile", "", "Configuration file to load instead of "+defaultRCFile)
	flags.BoolVar(&opts.noRC, "no-rc", false, "Do not load a configuration file")
	flags.BoolVarP(&showVersion, "version", "V", false, "Show version information")
	flags.SetInterspersed(false)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "torq - terminal client for a torrent daemon\n\n")
		fmt.Fprintf(os.Stderr, "Usage: torq [options] [command [; command]...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n%s\n", flags.FlagUsages())
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  torq set connect.host seedbox ';' ratelimit up 1M\n")
		fmt.Fprintf(os.Stderr, "  torq ratelimit up,down show\n")
		fmt.Fprintf(os.Stderr, "  torq dump ~/.config/torq/rc\n")
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "torq: %v\n", err)
		return 1
	}
	if showVersion {
		fmt.Printf("torq %s (%s)\n", version, commit)
		return 0
	}

	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stderr.Fd()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := client.New(client.Config{})
	local := settings.DefaultLocal()
	s := settings.New(local, settings.DefaultRemote(cli))

	cctx := &command.Context{
		Settings: s,
		Torrents: cli,
		Out:      output{},
		Fs:       afero.NewOsFs(),
		Keys:     keymap.Defaults(),
	}
	cctx.Scripts = script.New(cctx)

	if st := loadRC(ctx, cctx, opts); st == command.StatusFailure {
		return 1
	}
	if err := connect(cli, s, opts.url); err != nil {
		fmt.Fprintf(os.Stderr, "torq: %v\n", err)
		return 1
	}

	if args := flags.Args(); len(args) > 0 {
		return runCommands(ctx, cctx, args)
	}
	return repl(ctx, cctx)
}

// loadRC runs the startup configuration file. A missing default file is
// fine; a missing explicit --rcfile is an error.
func loadRC(ctx context.Context, cctx *command.Context, opts options) command.Status {
	if opts.noRC {
		return command.StatusSuccess
	}
	path := opts.rcFile
	if path == "" {
		p, err := value.NewPath(defaultRCFile, value.PathConfig{})
		if err != nil {
			return command.StatusSuccess
		}
		if exists, _ := afero.Exists(cctx.Fs, p.Abs()); !exists {
			return command.StatusSuccess
		}
		path = defaultRCFile
	}
	return cctx.RC(ctx, []string{path})
}

// connect derives the daemon endpoint from the connect.* settings, or
// takes the --url override verbatim.
func connect(cli *client.Client, s *settings.Settings, urlOverride string) error {
	get := func(name string) (string, error) {
		v, err := s.Get(name)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}

	cfg := client.Config{URL: urlOverride}
	var err error
	if cfg.User, err = get("connect.user"); err != nil {
		return err
	}
	if cfg.Password, err = get("connect.password"); err != nil {
		return err
	}
	if timeout, err := s.Get("connect.timeout"); err == nil {
		if n, ok := timeout.(value.Number); ok {
			cfg.Timeout = time.Duration(n.Float64() * float64(time.Second))
		}
	}

	if cfg.URL == "" {
		host, err := get("connect.host")
		if err != nil {
			return err
		}
		port, err := get("connect.port")
		if err != nil {
			return err
		}
		path, err := get("connect.path")
		if err != nil {
			return err
		}
		scheme := "http"
		if tls, err := s.Get("connect.tls"); err == nil && tls.String() == "enabled" {
			scheme = "https"
		}
		cfg.URL = fmt.Sprintf("%s://%s:%s%s", scheme, host, port, path)
	}

	cli.Reconfigure(cfg)
	return nil
}

// runCommands executes the command line arguments, split on ";" tokens.
func runCommands(ctx context.Context, cctx *command.Context, args []string) int {
	code := 0
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		if st := cctx.Run(ctx, current); st == command.StatusFailure {
			code = 1
		}
		current = nil
	}
	for _, arg := range args {
		if arg == ";" {
			flush()
			continue
		}
		current = append(current, arg)
	}
	flush()
	return code
}

// repl reads command lines from stdin until EOF or quit.
func repl(ctx context.Context, cctx *command.Context) int {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	code := 0
	for {
		if interactive {
			fmt.Print("torq> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		fields, err := shell.Fields(line, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "torq: %v\n", err)
			code = 1
			continue
		}
		if st := cctx.Run(ctx, fields); st == command.StatusFailure {
			code = 1
		}
		if ctx.Err() != nil {
			break
		}
	}
	if !interactive && code != 0 {
		return 1
	}
	if interactive {
		// Interactive sessions do not propagate per-command failures.
		return 0
	}
	return code
}

// output writes results to stdout and red diagnostics to stderr.
type output struct{}

func (output) Print(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

func (output) Error(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
}
