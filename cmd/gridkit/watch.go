package main

import (
	"github.com/spf13/cobra"

	"github.com/freshcart/gridkit/internal/tui"
)

func newWatchCmd(root *rootFlags) *cobra.Command {
	var (
		grid  gridFlags
		items int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show the grid in the terminal and re-solve it as the window resizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newLogger(cmd, root); err != nil {
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
			if cmd.Flags().Changed("items") {
				res.Preview.Items = items
			}
			return tui.Run(tui.Options{
				Grid:      cfg,
				Items:     res.Preview.Items,
				Title:     res.Preview.Title,
				CellWidth: res.Preview.CellWidth,
			})
		},
	}

	grid.register(cmd)
	cmd.Flags().IntVar(&items, "items", 0, "Number of sample tiles (default from config)")

	return cmd
}
