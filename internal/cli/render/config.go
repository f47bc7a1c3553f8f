package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

func (r *ConfigRenderer) section(name string) {
	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, cases.Title(language.English).String(name))
}

// Render renders the resolved configuration
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	root := result.Root

	fmt.Fprintln(r.out, "📋 Resolved configuration")
	fmt.Fprintf(r.out, "📁 Project root: %s\n", result.ProjectRoot)
	if len(result.EnvFiles) > 0 {
		files := lo.Map(result.EnvFiles, func(f string, _ int) string { return getRelativePath(f) })
		fmt.Fprintf(r.out, "📄 Env files:    %s\n", strings.Join(files, ", "))
	} else {
		fmt.Fprintf(r.out, "📄 Env files:    (none)\n")
	}

	r.section("environment")
	for _, secret := range result.Secrets {
		switch {
		case secret.ZeroKey:
			fmt.Fprintf(r.out, "  %-18s %s\n", secret.Name, color.YellowString("set (all-zero key)"))
		case secret.Set:
			fmt.Fprintf(r.out, "  %-18s %s\n", secret.Name, color.GreenString("set"))
		default:
			fmt.Fprintf(r.out, "  %-18s %s\n", secret.Name, color.YellowString("not set (fallback)"))
		}
	}

	r.section("compilers")
	for _, c := range root.Compilers {
		if c.Optimizer.Enabled {
			fmt.Fprintf(r.out, "  solc %s, optimizer on (%d runs)\n", c.Version, c.Optimizer.Runs)
		} else {
			fmt.Fprintf(r.out, "  solc %s, optimizer off\n", c.Version)
		}
	}

	r.section("paths")
	fmt.Fprintf(r.out, "  sources:   %s\n", root.Paths.Sources)
	fmt.Fprintf(r.out, "  tests:     %s\n", root.Paths.Tests)
	fmt.Fprintf(r.out, "  artifacts: %s\n", root.Paths.Artifacts)
	fmt.Fprintf(r.out, "  cache:     %s\n", root.Paths.Cache)
	fmt.Fprintf(r.out, "  typechain: %s (%s)\n", root.Typechain.OutDir, root.Typechain.Target)

	r.section("gas reporter")
	if root.GasReporter.Enabled {
		fmt.Fprintf(r.out, "  %s at %d gwei, priced in %s\n", root.GasReporter.Token, root.GasReporter.GasPriceGwei, root.GasReporter.Currency)
	} else {
		fmt.Fprintln(r.out, "  disabled")
	}

	r.section("test runner")
	fmt.Fprintf(r.out, "  timeout: %s\n", root.TestTimeout())
	fmt.Fprintf(r.out, "  unlimited contract size: %t\n", root.LocalNetwork.AllowUnlimitedContractSize)

	r.section("networks")
	fmt.Fprintf(r.out, "  %d networks, see `chaincfg networks`\n", len(root.Networks))

	return nil
}

// ExportRenderer writes exported configuration verbatim
type ExportRenderer struct {
	out io.Writer
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer) *ExportRenderer {
	return &ExportRenderer{
		out: out,
	}
}

// Render writes the encoded configuration
func (r *ExportRenderer) Render(result *usecase.ExportConfigResult) error {
	_, err := r.out.Write(result.Data)
	return err
}
