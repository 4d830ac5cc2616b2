// Command yieldex-inspect decodes yieldex instruction data, account data,
// events, program logs and transactions offline.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logrus.StandardLogger().WithField("type", "cmd/yieldex-inspect").WithError(err).Error("failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("yieldex-inspect", flag.ContinueOnError)
	configPath := fs.String("config", "yieldex.yaml", "configuration file path")
	overrides := map[string]*string{
		"log_level":  fs.String("log-level", "", "log level"),
		"program_id": fs.String("program-id", "", "program address (base58)"),
		"encoding":   fs.String("encoding", "", "input encoding: hex, base64 or base58"),
		"output":     fs.String("output", "", "output format: yaml or json"),
	}
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: yieldex-inspect [flags] <command> [args]\n\ncommands:\n")
		for _, name := range commandNames() {
			fmt.Fprintf(fs.Output(), "  %-12s %s\n", name, commands[name].usage)
		}
		fmt.Fprintf(fs.Output(), "\nflags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var explicitConfig bool
	fs.Visit(func(f *flag.Flag) {
		explicitConfig = explicitConfig || f.Name == "config"
	})

	v := newViper()
	for key, value := range overrides {
		if *value != "" {
			v.Set(key, *value)
		}
	}

	config, err := loadConfig(v, *configPath, explicitConfig)
	if err != nil {
		return err
	}
	if err := config.validate(); err != nil {
		return err
	}
	configureLogger(config)

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fs.Usage()
		return errors.Errorf("unknown command %q", name)
	}
	if fs.NArg()-1 < cmd.minArgs {
		return errors.Errorf("usage: yieldex-inspect %s %s", name, cmd.usage)
	}

	programID, _ := config.programID()
	s := &session{
		config:    config,
		programID: programID,
		stdin:     stdin,
		stdout:    stdout,
		log:       logrus.StandardLogger().WithField("type", "cmd/yieldex-inspect").WithField("command", name),
	}
	return cmd.run(s, fs.Args()[1:])
}

func configureLogger(config Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
		return
	}
	logrus.SetLevel(level)
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
