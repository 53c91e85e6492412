// Package web embeds the browser frontend served by the API server.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFS embed.FS

// Assets returns the embedded frontend rooted at the directory that holds
// index.html.
func Assets() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
