// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview assembles the standalone document rendered inside
// the sandboxed live-preview frame.
package preview

import (
	"fmt"

	"snapui/internal/bundle"
)

// Section order matters: the CDN block sits in the head so library
// scripts load before the generated inline script at the end of the
// body runs. Generated content is embedded verbatim — the sandboxed
// frame on the client, not escaping, is the isolation boundary.
const docTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Preview</title>
    <style>
        body { margin: 0; padding: 20px; font-family: sans-serif; }
    </style>
    %s
    <style>
%s
    </style>
</head>
<body>
%s
    <script>
%s
    </script>
</body>
</html>`

// Document builds the full preview page for a bundle. Assembly is
// deterministic and stateless: the same bundle always yields an
// identical document, so re-rendering is a plain rebuild, never a
// patch of the previous render.
func Document(b *bundle.Bundle) string {
	return fmt.Sprintf(docTemplate, b.CDNs, b.CSS, b.Markup, b.JS)
}
