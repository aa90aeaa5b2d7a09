package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cstea/config"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

var log = commonlog.GetLogger("cstea")

// errSyntax is returned by commands that have already printed the
// diagnostics of their input.
var errSyntax = errors.New("syntax errors")

// rootCommand carries what every subcommand needs: where to read files
// from, where to write, and the settings consolidated before it runs.
type rootCommand struct {
	cmd *cobra.Command

	fs        afero.Fs
	lookupEnv func(string) (string, bool)
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	stdoutTTY bool

	conf config.Config
}

func newRootCommand(fs afero.Fs, lookupEnv func(string) (string, bool), stdin io.Reader, stdout, stderr io.Writer, stdoutTTY bool) *rootCommand {
	c := &rootCommand{
		fs:        fs,
		lookupEnv: lookupEnv,
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		stdoutTTY: stdoutTTY,
		conf:      config.Default(),
	}

	c.cmd = &cobra.Command{
		Use:               "cstea",
		Short:             "Explore lossless concrete syntax trees",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetIn(stdin)
	c.cmd.SetOut(stdout)
	c.cmd.SetErr(stderr)
	config.BindFlags(c.cmd.PersistentFlags())

	c.cmd.AddCommand(newParseCmd(c))
	c.cmd.AddCommand(newDumpCmd(c))
	c.cmd.AddCommand(newPosCmd(c))
	c.cmd.AddCommand(newUICmd(c))
	c.cmd.AddCommand(newLSPCmd(c))
	c.cmd.AddCommand(newVersionCmd(c))

	return c
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(c.fs, cmd.Flags(), c.lookupEnv)
	if err != nil {
		return err
	}
	c.conf = conf

	var logFile *string
	if conf.LogFile.Valid && conf.LogFile.String != "" {
		logFile = &conf.LogFile.String
	}
	commonlog.Configure(int(conf.LogVerbosity.Int64), logFile)
	log.Debugf("config: %+v", conf)
	return nil
}

// useColor follows the color setting when one was given and the terminal
// otherwise.
func (c *rootCommand) useColor() bool {
	if c.conf.Color.Valid {
		return c.conf.Color.Bool
	}
	return c.stdoutTTY
}

// readSource reads a named file, or standard input for "-".
func (c *rootCommand) readSource(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := afero.ReadFile(c.fs, name)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// displayName is the name printed in front of diagnostics.
func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}

func main() {
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	root := newRootCommand(afero.NewOsFs(), os.LookupEnv, os.Stdin,
		colorable.NewColorableStdout(), colorable.NewColorableStderr(), stdoutTTY)

	if err := root.cmd.Execute(); err != nil {
		if !errors.Is(err, errSyntax) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
