package main

import (
	"io"

	"github.com/dhamidi/cstea/cst"
	"github.com/dhamidi/cstea/format"
	"github.com/spf13/cobra"
)

func newDumpCmd(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file|->",
		Short: "Print the full tree and every syntax error",
		Long: `Print the full tree and every syntax error.

Unlike parse, dump renders the tree even when the input has errors, which
makes it useful for seeing how the parser recovered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := c.readSource(args[0])
			if err != nil {
				return err
			}
			style := cst.Style{}
			if c.useColor() {
				style = format.ColorStyle()
			}
			_, err = io.WriteString(c.stdout, cst.DumpStyled(source, style))
			return err
		},
	}
}
