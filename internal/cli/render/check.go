package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// CheckRenderer renders credential findings
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{
		out: out,
	}
}

// Render renders each finding and a summary line
func (r *CheckRenderer) Render(result *usecase.CheckConfigResult) error {
	for _, f := range result.Findings {
		switch f.Severity {
		case config.SeverityWarning:
			fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s: %s", f.Subject, f.Message)))
		default:
			fmt.Fprintf(r.out, "ℹ️  %s: %s\n", color.New(color.Bold).Sprint(f.Subject), f.Message)
		}
	}

	warnings := len(result.Warnings())
	fmt.Fprintln(r.out)
	if warnings == 0 {
		fmt.Fprintln(r.out, FormatSuccess("Configuration looks complete"))
	} else {
		fmt.Fprintf(r.out, "%d warning(s)\n", warnings)
	}
	return nil
}
