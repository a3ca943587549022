// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ericwq/keyseq/frontend"
	"github.com/ericwq/keyseq/util"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	_PACKAGE_STRING  = "keyseq"
	_COMMAND_NAME    = "keytest"
	_ESC_TIMEOUT     = "KEYSEQ_ESC_TIMEOUT"
	_DEFAULT_TIMEOUT = 25
)

var (
	BuildVersion = "0.1.0" // ready for ldflags

	usage = `Usage:
  ` + _COMMAND_NAME + ` [--version] [--help] [--keys]
  ` + _COMMAND_NAME + ` [--verbose N] [--timeout MS] [--no-bracket]
Options:
  -h, --help        print this message
  -v, --version     print version information
  -k, --keys        print the key sequences terminfo expects for $TERM
  -t, --timeout     escape timeout in milliseconds (default 25)
      --no-bracket  don't treat ESC [ [ as a Linux console function key
      --verbose     verbose output mode
Press Ctrl-C or Ctrl-D to quit.
`
)

func printVersion() {
	fmt.Printf("%s (%s) [build %s]\n\n", _COMMAND_NAME, _PACKAGE_STRING, BuildVersion)
	fmt.Printf(`Copyright (c) 2022~2024 wangqi ericwq057[AT]qq[dot]com
This is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.
`)
}

func printUsage(hint, usage string) {
	if hint != "" {
		fmt.Printf("Hints: %s\n%s", hint, usage)
	} else {
		fmt.Printf("%s", usage)
	}
}

type Config struct {
	version   bool
	keys      bool
	noBracket bool
	verbose   int
	timeout   int
	term      string
}

func parseFlags(progname string, args []string) (config *Config, output string, err error) {
	flagSet := flag.NewFlagSet(progname, flag.ContinueOnError)
	var buf bytes.Buffer
	flagSet.SetOutput(&buf)

	var conf Config

	flagSet.IntVar(&conf.verbose, "verbose", 0, "verbose output mode")

	flagSet.BoolVar(&conf.version, "version", false, "print version information")
	flagSet.BoolVar(&conf.version, "v", false, "print version information")

	flagSet.BoolVar(&conf.keys, "keys", false, "print terminfo key sequences")
	flagSet.BoolVar(&conf.keys, "k", false, "print terminfo key sequences")

	flagSet.IntVar(&conf.timeout, "timeout", 0, "escape timeout in milliseconds")
	flagSet.IntVar(&conf.timeout, "t", 0, "escape timeout in milliseconds")

	flagSet.BoolVar(&conf.noBracket, "no-bracket", false, "disable ESC [ [ function keys")

	err = flagSet.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	if flagSet.NArg() > 0 {
		return nil, buf.String(), fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}
	return &conf, buf.String(), nil
}

func (c *Config) buildConfig() (string, bool) {
	// just need version info
	if c.version {
		return "", true
	}

	c.term = os.Getenv("TERM")
	if c.keys {
		if c.term == "" {
			return "TERM environment variable is empty.", false
		}
		return "", true
	}

	// the flag wins over the environment
	if c.timeout == 0 {
		c.timeout = _DEFAULT_TIMEOUT
		if v, ok := os.LookupEnv(_ESC_TIMEOUT); ok {
			t, err := strconv.Atoi(v)
			if err != nil {
				return _ESC_TIMEOUT + " is not a number.", false
			}
			c.timeout = t
		}
	}
	if c.timeout <= 0 || c.timeout > 1000 {
		return "escape timeout should be between 1 and 1000 milliseconds.", false
	}

	return "", true
}

func main() {
	conf, _, err := parseFlags(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage("", usage)
		return
	} else if err != nil {
		printUsage(err.Error(), usage)
		return
	} else if hint, ok := conf.buildConfig(); !ok {
		printUsage(hint, usage)
		return
	}

	if conf.version {
		printVersion()
		return
	}

	util.Logger.SetVerbose(conf.verbose)

	if conf.keys {
		if err := printKeys(os.Stdout, conf.term, !conf.noBracket); err != nil {
			util.Logger.Fatal("print keys failed", "error", err)
		}
		return
	}

	if err := run(conf); err != nil {
		util.Logger.Fatal("keytest failed", "error", err)
	}
}

func run(conf *Config) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}
	if !util.IsUtf8Locale() {
		lv := util.GetCtype()
		util.Logger.Warn("locale is not UTF-8, non-ASCII keys may be garbled", "locale", lv.String())
	}

	restore, err := setupTerminal(fd)
	if err != nil {
		return err
	}
	defer restore()

	// a non-blocking stdin supports read deadlines, so the reader wakes up
	// for the escape timeout and for shutdown.
	if err = unix.SetNonblock(fd, true); err != nil {
		return err
	}
	defer unix.SetNonblock(fd, false)
	in := os.NewFile(uintptr(fd), "/dev/stdin")

	fmt.Printf("%s: press keys, Ctrl-C or Ctrl-D to quit.\r\n", _COMMAND_NAME)
	printer := newKeyPrinter(os.Stdout)
	stream := frontend.NewStream(printer)
	stream.Performer().SetCSIBracket(!conf.noBracket)

	msgChan := make(chan frontend.Message, 1)
	doneChan := make(chan any, 1)
	readerDone := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	eg := errgroup.Group{}
	// read from stdin
	eg.Go(func() error {
		defer close(readerDone)
		frontend.ReadFromFile(conf.timeout, msgChan, doneChan, in)
		return nil
	})

	// process keys until quit
	eg.Go(func() error {
		err := loop(stream, printer, msgChan, sigChan)

		// shutdown the reader, it may be blocked on sending
		doneChan <- "done"
		for {
			select {
			case <-msgChan:
			case <-readerDone:
				return err
			}
		}
	})

	return eg.Wait()
}

// setupTerminal puts fd in raw mode and marks the input as UTF-8, so the
// kernel erases whole characters if the line discipline ever edits it.
func setupTerminal(fd int) (restore func() error, err error) {
	restore, err = util.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	if err = util.SetIUTF8(fd); err != nil {
		restore()
		return nil, err
	}
	return restore, nil
}

// loop feeds the input to stream until quit. A read deadline message means the
// input was quiet for the escape timeout.
func loop(stream *frontend.Stream, printer *keyPrinter,
	msgChan chan frontend.Message, sigChan chan os.Signal,
) error {
	for {
		select {
		case s := <-sigChan:
			util.Logger.Debug("got signal", "signal", s)
			return nil
		case m := <-msgChan:
			if m.Err != nil {
				if errors.Is(m.Err, os.ErrDeadlineExceeded) {
					// no input for a while, a pending ESC is the escape key
					stream.Idle()
					continue
				}

				stream.Idle()
				if errors.Is(m.Err, io.EOF) {
					return nil
				}
				return m.Err
			}

			util.Logger.Trace("read", "data", m.Data)
			stream.WriteString(m.Data)
			if printer.quit {
				return nil
			}
		}
	}
}
