package web

import (
	"bytes"
	"html/template"

	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

// ProductCard is a grocery product card. Its image is sized to the slot width
// when the card is placed in a grid.
type ProductCard struct {
	Name     string
	ImageURL string
	Price    string
	Width    float64
}

var _ fluidgrid.Sizable[Node] = ProductCard{}

var cardTemplate = template.Must(template.New("card").Parse(
	`<article class="product-card">` +
		`<img src="{{.ImageURL}}" alt="{{.Name}}"{{if .Width}} width="{{.Size}}" height="{{.Size}}"{{end}}>` +
		`<h3>{{.Name}}</h3>{{if .Price}}<span class="price">{{.Price}}</span>{{end}}` +
		`</article>`))

// WithWidth returns a copy of the card sized to width.
func (c ProductCard) WithWidth(width float64) Node {
	c.Width = width
	return c
}

// Size is the image side as an attribute value.
func (c ProductCard) Size() string {
	return px(c.Width)
}

func (c ProductCard) HTML() template.HTML {
	var buf bytes.Buffer
	// The template only reads fields of c, so Execute cannot fail.
	_ = cardTemplate.Execute(&buf, c)
	return template.HTML(buf.String())
}

// Raw is a Node of trusted markup. It does not accept a width.
type Raw template.HTML

func (r Raw) HTML() template.HTML {
	return template.HTML(r)
}
