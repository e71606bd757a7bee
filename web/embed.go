// Package web provides the embedded static frontend: the upload page,
// its stylesheet, and the preview/clipboard script. Everything is
// compiled into the binary; the server ships as a single file.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
