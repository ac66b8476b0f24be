package cli

import (
	"encoding/json"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Manav279/DailyTracker/internal/config"
)

// Renderer writes command results as a table, JSON or YAML
type Renderer struct {
	out    io.Writer
	format string
}

// NewRenderer creates a renderer; unknown formats fall back to table
func NewRenderer(out io.Writer, format string) *Renderer {
	return &Renderer{out: out, format: format}
}

// Render writes data in the structured formats and calls table otherwise.
func (r *Renderer) Render(data interface{}, table func(tw *tabwriter.Writer)) error {
	switch r.format {
	case config.FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()
	default:
		tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}
