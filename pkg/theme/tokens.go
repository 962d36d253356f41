// Package theme holds the design tokens shared by the grid renderers.
//
// Tokens are plain constants. There is no theme context or provider: widgets
// and markup read the values they need directly.
package theme

import "github.com/freshcart/gridkit/pkg/graphics"

// Spacing scale, in logical pixels.
const (
	SpaceXS = 4
	SpaceSM = 8
	SpaceMD = 12
	SpaceLG = 16
	SpaceXL = 24
)

// Palette.
const (
	Background = graphics.Color(0xFFF7F7F2)
	Surface    = graphics.Color(0xFFFFFFFF)
	OnSurface  = graphics.Color(0xFF1F2421)
	Muted      = graphics.Color(0xFF6B7069)
	Primary    = graphics.Color(0xFF2E7D32)
	Outline    = graphics.Color(0xFFD9DCD4)
)

// Department colors used for product placeholders.
const (
	Produce = graphics.Color(0xFF7CB342)
	Bakery  = graphics.Color(0xFFD7A86E)
	Dairy   = graphics.Color(0xFF90CAF9)
	Pantry  = graphics.Color(0xFFFFB74D)
	Frozen  = graphics.Color(0xFF80DEEA)
	Meat    = graphics.Color(0xFFE57373)
)

// Departments lists the department colors in a stable order so that demo
// content can cycle through them.
var Departments = []graphics.Color{Produce, Bakery, Dairy, Pantry, Frozen, Meat}

// Department returns the department color for index i, cycling through
// Departments.
func Department(i int) graphics.Color {
	if i < 0 {
		i = -i
	}
	return Departments[i%len(Departments)]
}

// TilePadding is the inner padding of product tiles and cards.
const TilePadding = SpaceSM
