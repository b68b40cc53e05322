package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jpdb/jpdb"
)

func newPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the service is reachable and the token is accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, runPing)
		},
	}
}

func runPing(ctx context.Context, api jpdb.API, p printer) error {
	if err := api.Ping(ctx); err != nil {
		return fmt.Errorf("api.Ping > %w", err)
	}
	return p.done("pong")
}
