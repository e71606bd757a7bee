package bundle

import (
	"errors"
	"strings"
	"testing"

	"snapui/internal/profile"
)

func sliderProfile() profile.Profile {
	return profile.NewRegistry().Resolve(profile.ModeSlider)
}

func TestNormalizeSuccess(t *testing.T) {
	raw := `{
		"cdns": "<script src=\"https://example.com/some.js\"></script>",
		"markup": "<div class=\"slider\"><div>Slide 1</div></div>",
		"css": ".slider { display: flex; }",
		"js": "$('.slider').slick();"
	}`

	b, err := Normalize(raw, sliderProfile())
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	if b.Markup != `<div class="slider"><div>Slide 1</div></div>` {
		t.Errorf("markup: got %q", b.Markup)
	}
	if b.CSS != ".slider { display: flex; }" {
		t.Errorf("css: got %q", b.CSS)
	}
	if b.JS != "$('.slider').slick();" {
		t.Errorf("js: got %q", b.JS)
	}
}

func TestNormalizeOverwritesCDNs(t *testing.T) {
	// Whatever the model proposes for cdns is discarded, not merged.
	raw := `{"cdns": "<script src='https://evil.cdn/x.js'></script>", "markup": "<div>x</div>", "css": "", "js": ""}`

	b, err := Normalize(raw, sliderProfile())
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	if strings.Contains(b.CDNs, "evil.cdn") {
		t.Error("model-proposed CDN link must never be served")
	}
	if b.CDNs != sliderProfile().DependencyBlock {
		t.Errorf("cdns: got %q, want the pinned dependency block", b.CDNs)
	}
	if !strings.Contains(b.CDNs, "code.jquery.com") {
		t.Error("pinned block should reference the jQuery CDN")
	}
}

func TestNormalizeLegacyHTMLField(t *testing.T) {
	// Older schema: combined "html" field, no "markup", no "cdns".
	raw := `{"html": "<div>x</div>", "css": "", "js": ""}`

	b, err := Normalize(raw, sliderProfile())
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	if b.Markup != "<div>x</div>" {
		t.Errorf("markup: got %q, want %q", b.Markup, "<div>x</div>")
	}
	if b.CDNs == "" {
		t.Error("cdns should still be the pinned block even when the model sent none")
	}
}

func TestNormalizeMarkupWins(t *testing.T) {
	// When both fields are present, markup takes precedence.
	raw := `{"markup": "<div>new</div>", "html": "<div>old</div>", "css": "", "js": ""}`

	b, err := Normalize(raw, sliderProfile())
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	if b.Markup != "<div>new</div>" {
		t.Errorf("markup: got %q, want %q", b.Markup, "<div>new</div>")
	}
}

func TestNormalizeMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		"Sure! Here is your code: {\"markup\": \"<div></div>\"}",
		"{\"markup\": ",
	} {
		_, err := Normalize(raw, sliderProfile())
		if err == nil {
			t.Errorf("Normalize(%q): expected error", raw)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Normalize(%q): error %v should wrap ErrMalformed", raw, err)
		}
	}
}

func TestNormalizeMarkupStaysSeparateFromLibraries(t *testing.T) {
	// The dependency block lives exclusively in cdns; normalization never
	// folds it into markup.
	raw := `{"cdns": "<script src='x'></script>", "markup": "<div class=\"faq\">q</div>", "css": "", "js": ""}`

	b, err := Normalize(raw, sliderProfile())
	if err != nil {
		t.Fatalf("Normalize: unexpected error: %v", err)
	}
	if strings.Contains(b.Markup, "<!-- Libraries -->") || strings.Contains(b.Markup, "<script src") {
		t.Errorf("markup must not contain a dependency block: %q", b.Markup)
	}
	if b.CDNs == "" {
		t.Error("cdns must be present and non-empty")
	}
}

func TestDecodeLegacyAlias(t *testing.T) {
	b, err := Decode(strings.NewReader(`{"cdns": "<script></script>", "html": "<p>legacy</p>", "css": "p{}", "js": "1;"}`))
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if b.Markup != "<p>legacy</p>" {
		t.Errorf("markup: got %q, want %q", b.Markup, "<p>legacy</p>")
	}
	if b.CDNs != "<script></script>" {
		t.Errorf("cdns: got %q — Decode must not rewrite client cdns", b.CDNs)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("{"))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error %v should wrap ErrMalformed", err)
	}
}
