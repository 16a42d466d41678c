package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Server ServerCmd `command:"server" description:"run the link hub server"`
	Stats  StatsCmd  `command:"stats" description:"print stored theme preference counts"`

	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("linkhub %s\n", revision)

	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	if p.Active == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}

// validateBaseURL normalizes the base URL path, it must start with a slash.
// Trailing slashes are removed, "/" means no base URL.
func validateBaseURL(u string) (string, error) {
	if u == "" {
		return "", nil
	}
	if !strings.HasPrefix(u, "/") {
		return "", fmt.Errorf("base URL %q must start with /", u)
	}
	if strings.ContainsAny(u, "?#") {
		return "", fmt.Errorf("base URL %q must be a plain path", u)
	}
	return strings.TrimRight(u, "/"), nil
}
