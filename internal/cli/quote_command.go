package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// QuoteCommand prints the quote of the day
type QuoteCommand struct {
	app *App
}

// NewQuoteCommand creates a new quote command handler
func NewQuoteCommand(app *App) *QuoteCommand {
	return &QuoteCommand{app: app}
}

// Execute runs the quote command
func (c *QuoteCommand) Execute(ctx context.Context, args []string) error {
	quote := c.app.businessAPI.QuoteOfTheDay(timeNow())
	return c.app.renderer().Render(quote, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%q\n  - %s\n", quote.Text, quote.Author)
	})
}
