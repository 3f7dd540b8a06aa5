package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	result, err := c.engine.SyncNow(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Fprintf(c.out, "Synced %d mutation(s), %d rejected\n", result.Synced, result.Failed)

	pending, err := c.engine.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending mutations: %w", err)
	}

	if pending > 0 {
		fmt.Fprintf(c.out, "%d mutation(s) still pending, will retry on next sync\n", pending)
	}

	return nil
}
