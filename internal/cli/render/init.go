package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{
		out: out,
	}
}

// Render renders the init result
func (r *InitRenderer) Render(result *usecase.InitEnvResult) error {
	if result.Cancelled {
		fmt.Fprintf(r.out, "Init cancelled, kept existing %s\n", getRelativePath(result.Path))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Created %s", getRelativePath(result.Path))))
	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "📋 Next steps:")
	fmt.Fprintln(r.out, "  • Set PRIVATE_KEY to your deployment key")
	fmt.Fprintln(r.out, "  • Set INFURA_API_KEY to authenticate RPC endpoints")
	fmt.Fprintln(r.out, "  • Set ETHERSCAN_API_KEY to verify contracts")
	return nil
}
