package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/tabdeck/tabdeck/internal/models"
)

func (c *Cli) runAddLink(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-link", flag.ContinueOnError)
	title := fs.String("title", "", "Link title")
	url := fs.String("url", "", "Link URL")
	category := fs.String("category", "", "Category id (optional)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" || *url == "" {
		return fmt.Errorf("both -title and -url are required")
	}

	payload := map[string]string{
		"title": *title,
		"url":   *url,
	}
	if *category != "" {
		payload["category_id"] = *category
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode link: %w", err)
	}

	id := c.engine.NewEntityID()

	_, err = c.engine.Enqueue(ctx, &models.MutationRecord{
		CreatedAt:  time.Now(),
		EntityType: models.EntityLink,
		EntityID:   id,
		Operation:  models.OpCreate,
		Payload:    data,
	})
	if err != nil {
		return fmt.Errorf("failed to queue link: %w", err)
	}

	fmt.Fprintf(c.out, "Queued link %s\n", id)

	return nil
}
