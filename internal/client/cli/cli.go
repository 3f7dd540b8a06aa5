// Package cli implements the tabdeck command line client. Every edit lands
// in the local mutation queue first; the queue drains to the server when a
// sync is triggered.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/tabdeck/tabdeck/internal/client/engine"
	"github.com/tabdeck/tabdeck/internal/client/storage"
	"github.com/tabdeck/tabdeck/internal/models"
)

// Cli dispatches the client commands
type Cli struct {
	engine  *engine.Engine
	widgets storage.WidgetStorage
	state   storage.StateStorage
	out     io.Writer
	bounds  models.Bounds
}

// New creates a command dispatcher
func New(eng *engine.Engine, widgets storage.WidgetStorage, state storage.StateStorage, bounds models.Bounds, out io.Writer) *Cli {
	return &Cli{
		engine:  eng,
		widgets: widgets,
		state:   state,
		bounds:  bounds,
		out:     out,
	}
}

// Run executes one command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "add-link":
		return c.runAddLink(ctx, args)
	case "add-widget":
		return c.runAddWidget(ctx, args)
	case "move-widget":
		return c.runMoveWidget(ctx, args)
	case "remove-widget":
		return c.runRemoveWidget(ctx, args)
	case "widgets":
		return c.runListWidgets(ctx)
	case "compact":
		return c.runCompact(ctx)
	case "online":
		return c.runOnline(ctx)
	case "offline":
		return c.runOffline(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command summary
func PrintUsage(out io.Writer) {
	fmt.Fprintln(out, `Usage: tabdeck [flags] <command> [command flags]

Commands:
  status         Show pending mutations and connectivity
  sync           Push pending mutations to the server now
  add-link       Queue a new link (-title, -url, -category)
  add-widget     Place a new widget on the grid (-type, -width, -height, [-x -y], [-config])
  move-widget    Move or resize a widget (-id, -x, -y, [-width -height])
  remove-widget  Remove a widget (-id)
  widgets        List the widgets in the local replica
  compact        Pull widgets up to close gaps in the grid
  online         Mark the device online and flush the queue
  offline        Mark the device offline

Flags:
  -server  Server URL
  -db      Path to the local database
  -config  Path to the YAML config file
  -version Show version information`)
}
