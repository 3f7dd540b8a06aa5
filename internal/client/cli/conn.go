package cli

import (
	"context"
	"fmt"

	"github.com/tabdeck/tabdeck/internal/client/connectivity"
)

// runOnline marks the device online. The transition from offline triggers a
// drain pass, so the pending queue flushes before the command returns. The
// mode is persisted so the next invocation starts in the same state.
func (c *Cli) runOnline(ctx context.Context) error {
	c.engine.Handle(ctx, connectivity.ConnectivityChanged{Online: true})

	if err := c.state.SaveOnline(ctx, true); err != nil {
		return fmt.Errorf("failed to persist connectivity mode: %w", err)
	}

	fmt.Fprintln(c.out, "Marked online")

	if last := c.engine.LastSyncResult(); last != nil {
		fmt.Fprintf(c.out, "Synced %d mutation(s), %d rejected\n", last.Synced, last.Failed)
	}

	return nil
}

func (c *Cli) runOffline(ctx context.Context) error {
	c.engine.Handle(ctx, connectivity.ConnectivityChanged{Online: false})

	if err := c.state.SaveOnline(ctx, false); err != nil {
		return fmt.Errorf("failed to persist connectivity mode: %w", err)
	}

	fmt.Fprintln(c.out, "Marked offline, edits will queue locally")

	return nil
}
