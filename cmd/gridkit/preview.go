package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshcart/gridkit/internal/catalog"
	"github.com/freshcart/gridkit/internal/config"
	"github.com/freshcart/gridkit/pkg/engine"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/theme"
	"github.com/freshcart/gridkit/pkg/widgets"
)

// previewFlags are the surface overrides shared by preview, watch and serve.
type previewFlags struct {
	width  float64
	height float64
	items  int
}

func (p *previewFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&p.width, "width", config.DefaultPreviewWidth, "Surface width in logical pixels")
	cmd.Flags().Float64Var(&p.height, "height", config.DefaultPreviewHeight, "Surface height in logical pixels")
	cmd.Flags().IntVar(&p.items, "items", config.DefaultPreviewItems, "Number of sample products")
}

func (p *previewFlags) apply(cmd *cobra.Command, preview config.Preview) (config.Preview, error) {
	if cmd.Flags().Changed("width") {
		preview.Width = p.width
	}
	if cmd.Flags().Changed("height") {
		preview.Height = p.height
	}
	if cmd.Flags().Changed("items") {
		preview.Items = p.items
	}
	if preview.Width <= 0 || preview.Height <= 0 {
		return preview, fmt.Errorf("preview size must be positive (got %gx%g)", preview.Width, preview.Height)
	}
	if preview.Items < 0 {
		return preview, fmt.Errorf("items must not be negative (got %d)", preview.Items)
	}
	return preview, nil
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	var (
		grid    gridFlags
		surface previewFlags
		out     string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the sample grid to a PNG image",
		Args:  cobra.NoArgs,
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
			preview, err := surface.apply(cmd, res.Preview)
			if err != nil {
				return err
			}

			canvas, err := renderPreview(cfg, preview)
			if err != nil {
				return err
			}
			if err := writePNG(out, canvas); err != nil {
				return err
			}

			solution := fluidgrid.Solve(preview.Width, cfg)
			log.Debug().Str("source", res.Source).Msg("config")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d columns, %gpx items)\n", out, solution.Columns, solution.ItemWidth)
			return nil
		},
	}

	grid.register(cmd)
	surface.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "grid.png", "Output PNG path")

	return cmd
}

// renderPreview mounts the sample grid headlessly, lets the width observer
// settle and paints the final frame.
func renderPreview(cfg fluidgrid.Config, preview config.Preview) (*graphics.ImageCanvas, error) {
	size := graphics.Size{Width: preview.Width, Height: preview.Height}
	h := engine.NewHeadless(size)
	defer h.Unmount()

	grid := widgets.ColoredBox{
		Color: theme.Background,
		Child: widgets.FluidGrid{
			Children:     catalog.Tiles(catalog.Sample(preview.Items)),
			MinItemWidth: cfg.MinItemWidth,
			MaxItemWidth: cfg.MaxItemWidth,
			Gap:          cfg.Gap,
		},
	}
	if err := h.Mount(grid); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	if err := h.PumpUntilSettled(engine.DefaultMaxFrames); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	canvas := graphics.NewImageCanvas(size, theme.Background)
	h.PaintTo(canvas)
	return canvas, nil
}

func writePNG(path string, canvas *graphics.ImageCanvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
