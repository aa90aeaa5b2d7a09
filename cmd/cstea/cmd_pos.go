package main

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/cstea/cst"
	"github.com/spf13/cobra"
)

func newPosCmd(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "pos <file|-> <offset>...",
		Short: "Convert byte offsets to line:column positions",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offsets := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				offset, err := strconv.Atoi(arg)
				if err != nil || offset < 0 {
					return fmt.Errorf("invalid offset %q: must be a non-negative integer", arg)
				}
				offsets = append(offsets, offset)
			}

			source, err := c.readSource(args[0])
			if err != nil {
				return err
			}
			for _, offset := range offsets {
				fmt.Fprintf(c.stdout, "%d %s\n", offset, cst.OffsetPosition(source, offset))
			}
			return nil
		},
	}
}
