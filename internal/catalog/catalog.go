// Package catalog provides the sample grocery products shown by the
// preview, watch and serve commands.
package catalog

import (
	"fmt"

	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/theme"
	"github.com/freshcart/gridkit/pkg/web"
	"github.com/freshcart/gridkit/pkg/widgets"
)

// Product is a sample catalog entry.
type Product struct {
	Name       string
	Price      string
	Department int
}

var names = []string{
	"Honeycrisp Apples", "Sourdough Loaf", "Whole Milk", "Rolled Oats",
	"Frozen Peas", "Chicken Thighs", "Baby Spinach", "Croissants",
	"Greek Yogurt", "Basmati Rice", "Mango Sorbet", "Ground Beef",
}

// Sample returns n products, cycling through the built-in names.
func Sample(n int) []Product {
	if n <= 0 {
		return nil
	}
	products := make([]Product, n)
	for i := range products {
		name := names[i%len(names)]
		if i >= len(names) {
			name = fmt.Sprintf("%s #%d", name, i/len(names)+1)
		}
		products[i] = Product{
			Name:       name,
			Price:      fmt.Sprintf("$%d.%02d", 1+(i*7)%9, (i*37)%100),
			Department: i % len(theme.Departments),
		}
	}
	return products
}

// SwatchURL is the image path served for a department by the dev server.
func SwatchURL(department int) string {
	return fmt.Sprintf("/v1/swatch/%d.svg", department)
}

// Tiles converts products to native grid children.
func Tiles(products []Product) []core.Widget {
	out := make([]core.Widget, len(products))
	for i, p := range products {
		out[i] = widgets.ProductTile{Label: p.Name, Color: theme.Department(p.Department)}
	}
	return out
}

// Cards converts products to web grid children.
func Cards(products []Product) []web.Node {
	out := make([]web.Node, len(products))
	for i, p := range products {
		out[i] = web.ProductCard{Name: p.Name, Price: p.Price, ImageURL: SwatchURL(p.Department)}
	}
	return out
}
