package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/cstea/cst"
	"github.com/dhamidi/cstea/format"
	"github.com/spf13/cobra"
)

func newParseCmd(c *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse a file and print its syntax tree.

When the file has syntax errors no tree is printed; each error is reported
as file:line:column: message and the command exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			source, err := c.readSource(name)
			if err != nil {
				return err
			}

			opts := []format.Option{
				format.WithName(displayName(name)),
				format.WithColor(c.useColor()),
			}
			if c.conf.Positions.Bool {
				opts = append(opts, format.WithPositions())
			}
			enc, err := format.NewEncoder(c.conf.Format.String, c.stdout, opts...)
			if err != nil {
				return err
			}

			outcome := cst.Parse(source)
			if err := enc.Encode(source, outcome); err != nil {
				return fmt.Errorf("encode %s: %w", c.conf.Format.String, err)
			}
			if n := len(outcome.Diagnostics()); n > 0 {
				log.Infof("%s: %d syntax errors", displayName(name), n)
				return errSyntax
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "text", "output format: "+strings.Join(format.Formats, ", "))
	cmd.Flags().BoolP("positions", "p", false, "include line:column positions in structured output")

	return cmd
}
