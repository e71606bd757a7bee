// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export serializes bundles into clipboard-ready text, per
// field or as one labeled all-sections block.
package export

import (
	"fmt"

	"snapui/internal/bundle"
)

// Section headers in the all-sections output. The copy-all format is a
// contract with users who paste it into their own pages; keep it fixed.
const (
	HeaderLibraries = "<!-- Libraries -->"
	HeaderHTML      = "<!-- HTML -->"
	HeaderCSS       = "<!-- CSS -->"
	HeaderJS        = "<!-- JS -->"
)

// Field returns the raw text of a single bundle field. "html" is
// accepted as a legacy alias for "markup".
func Field(b *bundle.Bundle, name string) (string, error) {
	switch name {
	case "cdns":
		return b.CDNs, nil
	case "markup", "html":
		return b.Markup, nil
	case "css":
		return b.CSS, nil
	case "js":
		return b.JS, nil
	}
	return "", fmt.Errorf("export: unknown field %q", name)
}

// All concatenates the four sections under labeled comment headers:
// libraries, markup, style-wrapped CSS, script-wrapped JS, in that
// order.
func All(b *bundle.Bundle) string {
	return fmt.Sprintf(`%s
%s

%s
%s

%s
<style>
%s
</style>

%s
<script>
%s
</script>`,
		HeaderLibraries, b.CDNs,
		HeaderHTML, b.Markup,
		HeaderCSS, b.CSS,
		HeaderJS, b.JS,
	)
}
