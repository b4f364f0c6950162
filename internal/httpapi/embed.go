package httpapi

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticAssets embed.FS

func pageTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func staticRoot() fs.FS {
	sub, err := fs.Sub(staticAssets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
