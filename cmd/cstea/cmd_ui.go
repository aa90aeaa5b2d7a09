package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhamidi/cstea/ui"
	"github.com/spf13/cobra"
)

func newUICmd(c *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web UI server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := ui.NewServer(int(c.conf.MaxTrees.Int64))
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			addr := c.conf.Addr.String
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Fprintf(c.stdout, "Starting server at http://%s\n", displayAddr)
			log.Infof("listening on %s, keeping at most %d trees", addr, c.conf.MaxTrees.Int64)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringP("addr", "a", ":8080", "address to listen on")

	return cmd
}
