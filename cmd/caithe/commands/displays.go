package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KleaSCM/caithe/internal/display"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List connected displays",
	Long: `List the displays Caithe detected on the running compositor.

Detection asks hyprctl first, falls back to xrandr, and synthesizes a
single 1920x1080 display when neither tool reports anything.`,
	Example: `  # List displays in table format (default)
  caithe displays

  # List displays in JSON format
  caithe displays --json`,
	RunE: runDisplays,
}

var displaysJSON bool

func init() {
	rootCmd.AddCommand(displaysCmd)

	displaysCmd.Flags().BoolVar(&displaysJSON, "json", false, "output as JSON")
}

func runDisplays(cmd *cobra.Command, args []string) error {
	inv, _, err := newEnv(cmd)
	if err != nil {
		return err
	}

	displays := inv.Displays()
	if displaysJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(displays)
	}
	return printDisplaysTable(os.Stdout, displays)
}

func printDisplaysTable(out io.Writer, displays []display.Display) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tRESOLUTION\tREFRESH\tCONNECTOR\tPRIMARY")
	fmt.Fprintln(w, "--\t----\t----------\t-------\t---------\t-------")

	for _, d := range displays {
		primary := "No"
		if d.IsPrimary {
			primary = "Yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%dx%d\t%dHz\t%s\t%s\n",
			d.ID, d.Name, d.Width, d.Height, d.RefreshRate, d.Connector, primary)
	}

	return nil
}
