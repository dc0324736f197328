package menu

import (
	"embed"
	"html/template"
)

//go:embed templates/*
var templateFS embed.FS

// Templates parses the page templates once; the router installs them on the engine.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/index.gohtml")
}
