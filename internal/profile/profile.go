// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package profile maps generation mode tokens to their generation
// profiles. A profile owns the vision-analysis prompt sent to the AI
// provider and the pinned CDN dependency block that replaces whatever
// the model proposes for its "cdns" field. Adding a new widget type is
// a registration, not a new branch in a switch.
package profile

// Built-in mode tokens.
const (
	ModeSlider = "slider"
	ModeFAQ    = "faq"
)

// DefaultMode is used for absent or unrecognized mode tokens. The
// silent fallback (rather than an error) is long-standing documented
// behavior that clients rely on.
const DefaultMode = ModeSlider

// Profile is the immutable contract for one generation mode: the
// prompt the model is asked to analyze the screenshot with, and the
// known-good dependency block served in place of model-proposed links.
type Profile struct {
	Mode            string
	Prompt          string
	DependencyBlock string
}

// Registry holds the mode → profile mapping. Registration happens at
// startup, before the registry is shared; lookups after that are
// read-only and safe for concurrent use.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry creates a registry preloaded with the built-in slider
// and faq profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	r.Register(Profile{
		Mode:            ModeSlider,
		Prompt:          sliderPrompt,
		DependencyBlock: sliderDependencyBlock,
	})
	r.Register(Profile{
		Mode:            ModeFAQ,
		Prompt:          faqPrompt,
		DependencyBlock: faqDependencyBlock,
	})
	return r
}

// Register adds or replaces a profile under its mode token.
func (r *Registry) Register(p Profile) {
	r.profiles[p.Mode] = p
}

// Resolve returns the profile for the given mode token. It is total:
// empty or unknown tokens resolve to the default profile, never an
// error.
func (r *Registry) Resolve(token string) Profile {
	if p, ok := r.profiles[token]; ok {
		return p
	}
	return r.profiles[DefaultMode]
}

// Modes returns the registered mode tokens.
func (r *Registry) Modes() []string {
	var names []string
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}
