package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

type solveResult struct {
	Width    float64            `json:"width"`
	Config   fluidgrid.Config   `json:"config"`
	Solution fluidgrid.Solution `json:"solution"`
	Rows     int                `json:"rows,omitempty"`
}

func newSolveCmd(root *rootFlags) *cobra.Command {
	var (
		grid   gridFlags
		width  float64
		items  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute column count and item width for a container width",
		Long: `Solve prints the grid solution for a container width. Without --width the
width of the current terminal is used, scaled by preview.cellWidth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}
			res, err := loadConfig(root)
			if err != nil {
				return err
			}
			cfg, err := grid.apply(cmd, res.Grid)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("width") {
				width, err = terminalWidth(cmd.OutOrStdout(), res.Preview.CellWidth)
				if err != nil {
					return err
				}
				log.Debug().Float64("width", width).Msg("using terminal width")
			}
			if width <= 0 {
				return fmt.Errorf("width must be positive (got %g)", width)
			}

			result := solveResult{Width: width, Config: cfg, Solution: fluidgrid.Solve(width, cfg)}
			if cmd.Flags().Changed("items") {
				result.Rows = result.Solution.Rows(items)
			}
			return printSolve(cmd.OutOrStdout(), result, asJSON)
		},
	}

	grid.register(cmd)
	cmd.Flags().Float64VarP(&width, "width", "w", 0, "Container width in logical pixels")
	cmd.Flags().IntVar(&items, "items", 0, "Also report the number of rows for this many items")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

// terminalWidth measures the terminal behind out in logical pixels.
func terminalWidth(out io.Writer, cellWidth float64) (float64, error) {
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, fmt.Errorf("--width is required when output is not a terminal")
	}
	cols, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, fmt.Errorf("failed to read terminal size: %w", err)
	}
	return float64(cols) * cellWidth, nil
}

func printSolve(out io.Writer, result solveResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Fprintf(out, "container:  %gpx\n", result.Width)
	fmt.Fprintf(out, "columns:    %d\n", result.Solution.Columns)
	fmt.Fprintf(out, "item width: %gpx\n", result.Solution.ItemWidth)
	fmt.Fprintf(out, "row width:  %gpx\n", result.Solution.RowWidth(result.Config.Gap))
	if result.Rows > 0 {
		fmt.Fprintf(out, "rows:       %d\n", result.Rows)
	}
	return nil
}
