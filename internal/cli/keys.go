package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelet/internal/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	RunE:  runKeys,
}

var keysRaw bool

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolVar(&keysRaw, "raw", false, "Print markdown without rendering")
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	md := bindingsMarkdown(cfg.Keymap().Bindings())
	if keysRaw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render bindings: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// keyNames gives readable names to keys that print as whitespace.
var keyNames = map[string]string{
	" ": "space",
}

// bindingsMarkdown renders the bindings as a markdown table, followed by the
// keys handled by the interactive mode itself.
func bindingsMarkdown(bindings []input.Binding) string {
	var b strings.Builder

	b.WriteString("# Key bindings\n\n")
	b.WriteString("| Key | Action |\n")
	b.WriteString("|-----|--------|\n")
	for _, bind := range bindings {
		name := bind.Key
		if n, ok := keyNames[name]; ok {
			name = n
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", name, bind.Command.Description())
	}
	b.WriteString("| `ctrl+r` | Reset the cube |\n")
	b.WriteString("| `q` | Quit |\n")

	return b.String()
}
