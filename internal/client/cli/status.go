package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	pending, err := c.engine.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending mutations: %w", err)
	}

	state := "offline"
	if c.engine.IsOnline() {
		state = "online"
	}

	fmt.Fprintf(c.out, "Connectivity:      %s\n", state)
	fmt.Fprintf(c.out, "Pending mutations: %d\n", pending)

	if last := c.engine.LastSyncResult(); last != nil {
		fmt.Fprintf(c.out, "Last sync:         %d synced, %d rejected\n", last.Synced, last.Failed)
	} else {
		fmt.Fprintln(c.out, "Last sync:         never")
	}

	return nil
}
