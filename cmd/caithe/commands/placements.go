package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KleaSCM/caithe/internal/display"
	"github.com/KleaSCM/caithe/internal/geometry"
	"github.com/KleaSCM/caithe/internal/wallpaper"
)

var placementsCmd = &cobra.Command{
	Use:   "placements",
	Short: "Show saved wallpaper placements",
	Long: `Show the persisted wallpaper placement for each connected display,
including how the image will be fitted under its display mode.`,
	Example: `  # Show placements in table format (default)
  caithe placements

  # Show placements in JSON format
  caithe placements --json`,
	RunE: runPlacements,
}

var placementsJSON bool

func init() {
	rootCmd.AddCommand(placementsCmd)

	placementsCmd.Flags().BoolVar(&placementsJSON, "json", false, "output as JSON")
}

// placementRow is one display's placement with its fit geometry.
type placementRow struct {
	DisplayID int            `json:"displayId"`
	Display   string         `json:"display"`
	Path      string         `json:"path"`
	Mode      wallpaper.Mode `json:"mode"`
	ImageW    int            `json:"imageWidth"`
	ImageH    int            `json:"imageHeight"`
	Fit       string         `json:"fit"`
}

func runPlacements(cmd *cobra.Command, args []string) error {
	inv, _, err := newEnv(cmd)
	if err != nil {
		return err
	}
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}

	rows := make([]placementRow, 0, inv.Count())
	for _, d := range inv.Displays() {
		ds, ok := configMgr.DisplaySettings(d.Name)
		if !ok || !ds.Enabled || ds.Path == "" {
			continue
		}
		mode, err := wallpaper.ParseMode(ds.Mode)
		if err != nil {
			mode = wallpaper.ModeScale
		}
		imgW, imgH, ok := geometry.SniffFile(ds.Path)
		if !ok {
			imgW, imgH = geometry.DefaultWidth, geometry.DefaultHeight
		}
		rows = append(rows, placementRow{
			DisplayID: d.ID,
			Display:   d.Name,
			Path:      ds.Path,
			Mode:      mode,
			ImageW:    imgW,
			ImageH:    imgH,
			Fit:       describeFit(d, mode, imgW, imgH),
		})
	}

	if placementsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}
	return printPlacementsTable(rows)
}

// describeFit summarizes the image geometry under the given mode.
func describeFit(d display.Display, mode wallpaper.Mode, imgW, imgH int) string {
	switch mode {
	case wallpaper.ModeStretch:
		return fmt.Sprintf("%dx%d", d.Width, d.Height)
	case wallpaper.ModeCenter:
		x, y := geometry.CenteringOffset(d.Width, d.Height, imgW, imgH)
		return fmt.Sprintf("at (%d, %d)", x, y)
	case wallpaper.ModeTile:
		cols, tileRows := geometry.TileCount(d.Width, d.Height, imgW, imgH)
		return fmt.Sprintf("%dx%d tiles", cols, tileRows)
	default:
		scale := geometry.AspectScale(d.Width, d.Height, imgW, imgH)
		return fmt.Sprintf("x%.3f", scale)
	}
}

func printPlacementsTable(rows []placementRow) error {
	if len(rows) == 0 {
		fmt.Println("No wallpapers are set")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "DISPLAY\tNAME\tWALLPAPER\tMODE\tIMAGE\tFIT")
	fmt.Fprintln(w, "-------\t----\t---------\t----\t-----\t---")

	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%dx%d\t%s\n",
			row.DisplayID, row.Display, row.Path, row.Mode, row.ImageW, row.ImageH, row.Fit)
	}

	return nil
}
