package main

import (
	"flag"
	"fmt"
	goIO "io"
	"os"
	"os/signal"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/aryanA101a/lulu/translate"
	"github.com/aryanA101a/lulu/vm"
)

var f = translate.From

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole command; it returns the process exit status.
func run(args []string, stdin goIO.Reader, stdout, stderr goIO.Writer) int {
	var verbose bool
	var raw bool
	var prompt string
	pc := vm.Word(vm.UserSpaceStart)

	flags := flag.NewFlagSet("lulu", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Trace every instruction")
	flags.BoolVar(&raw, "raw", true, "Put an interactive terminal in raw mode")
	flags.StringVar(&prompt, "prompt", vm.DefaultPrompt, "Prompt printed by the IN trap")
	flags.Func("pc", "Start address (default 0x3000)", func(s string) error {
		v, err := strconv.ParseUint(s, 0, 16)
		if err != nil {
			return err
		}
		pc = vm.Word(v)
		return nil
	})
	flags.Usage = func() {
		fmt.Fprintln(stderr, f("usage: lulu [flags] <image-file> [image-file...]"))
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return 2
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	machine := vm.New(vm.Config{PC: pc, Prompt: prompt, Log: logger}, vm.NewConsole(stdin, stdout))
	for _, path := range flags.Args() {
		if err := machine.LoadImageFile(path); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	if file, ok := stdin.(*os.File); ok && raw {
		terminal := vm.NewTerminal(file, logger.WithField("component", "terminal"))
		if err := terminal.EnableRawMode(); err != nil {
			logger.WithError(err).Warn(f("raw mode unavailable"))
		}
		defer terminal.DisableRawMode()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)
		go func() {
			<-interrupt
			terminal.DisableRawMode()
			os.Exit(130)
		}()
	}

	if err := machine.Run(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
