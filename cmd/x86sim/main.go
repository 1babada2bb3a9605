// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// x86sim runs an x86 flavored assembly source file.
package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ezrec/x86sim/config"
	"github.com/ezrec/x86sim/emulator"
)

type options struct {
	config     string
	logLevel   string
	maxSteps   int
	stackLimit int
	defines    map[string]string
	labels     bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "x86sim [flags] FILE",
		Short:         "Run an x86 flavored assembly source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts, args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%v: %v\n", args[0], err)
			}
			return err
		},
	}

	addFlags(cmd.Flags(), opts)

	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.IntVar(&opts.maxSteps, "max-steps", 0, "maximum lines executed, 0 is unlimited")
	flags.IntVar(&opts.stackLimit, "stack-limit", 0, "call stack depth, in cells")
	flags.StringToStringVarP(&opts.defines, "define", "D", nil, "predefine an equate NAME=VALUE")
	flags.BoolVar(&opts.labels, "labels", false, "print the label table after the run")
}

// settings merges the configuration file with the command line flags.
func settings(cmd *cobra.Command, opts *options) (cfg *config.Config, err error) {
	cfg, err = config.Load(opts.config)
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = opts.maxSteps
	}
	if flags.Changed("stack-limit") {
		cfg.StackLimit = opts.stackLimit
	}
	for name, value := range opts.defines {
		cfg.Equates[strings.ToUpper(name)] = value
	}

	return
}

func run(cmd *cobra.Command, opts *options, path string) (err error) {
	cfg, err := settings(cmd, opts)
	if err != nil {
		return
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)

	source, err := os.ReadFile(path)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Log = log.WithField("file", path)
	emu.Output = cmd.OutOrStdout()

	err = emu.Configure(cfg)
	if err != nil {
		return
	}

	err = emu.Run(string(source))

	if opts.labels {
		printLabels(cmd, emu.Labels())
	}

	return
}

// printLabels prints the label table ordered by line.
func printLabels(cmd *cobra.Command, labels map[string]int) {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if labels[a] != labels[b] {
			return labels[a] - labels[b]
		}
		return strings.Compare(a, b)
	})

	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", name, labels[name]+1)
	}
}
