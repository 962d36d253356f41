package web

import (
	"bytes"
	"html/template"

	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/theme"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body{margin:0;padding:{{.Padding}}px;background:{{.Background}};color:{{.Text}};font-family:system-ui,sans-serif}
.product-card{background:{{.Surface}};border:1px solid {{.Outline}};box-sizing:border-box}
.product-card img{display:block;background:{{.Outline}}}
.product-card h3{margin:{{.Padding}}px;font-size:14px}
.product-card .price{display:block;margin:0 {{.Padding}}px {{.Padding}}px}
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type pageView struct {
	Title      string
	Body       template.HTML
	Padding    int
	Background string
	Surface    string
	Outline    string
	Text       string
}

// Document wraps grid markup in a standalone HTML page styled with the
// design tokens.
func Document(title string, body template.HTML) (template.HTML, error) {
	view := pageView{
		Title:      title,
		Body:       body,
		Padding:    theme.SpaceSM,
		Background: theme.Background.Hex(),
		Surface:    theme.Surface.Hex(),
		Outline:    theme.Outline.Hex(),
		Text:       theme.OnSurface.Hex(),
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return "", &errors.GridError{Op: "web.Document", Kind: errors.KindRender, Err: err}
	}
	return template.HTML(buf.String()), nil
}
