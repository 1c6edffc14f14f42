// Package domain contains the core domain model for development-shell
// descriptors.
package domain

import "go.trai.ch/zerr"

// Input is a pinned upstream source reference: a package repository channel
// or a tool overlay layered on top of it.
type Input struct {
	// Name is the attribute the input is bound to in the rendered
	// expression, e.g. "nixpkgs".
	Name string
	// URL is the repository location.
	URL string
	// Ref is the branch or tag to follow.
	Ref string
	// Rev pins the exact revision. Optional; when empty the ref tip is
	// used and the descriptor is no longer fully reproducible.
	Rev string
	// Overlay marks the input as an overlay to apply to the base channel.
	Overlay bool
}

// Toolchain selects the compiler toolchain exposed by the shell.
type Toolchain struct {
	// Channel is the toolchain release channel, e.g. "stable".
	Channel string
	// Components are optional extras such as source code for tooling.
	Components []string
}

// Descriptor declares a reproducible development shell: pinned inputs, a
// toolchain, additional tools and the libraries whose directories form the
// dynamic-library search path.
type Descriptor struct {
	Name      string
	Inputs    []Input
	Toolchain Toolchain
	Tools     []string
	Libraries []string
}

// Validate checks the descriptor for structural problems. The first problem
// found is returned with metadata naming the offending field.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return zerr.With(ErrInvalidDescriptor, "field", "name")
	}
	if d.Toolchain.Channel == "" {
		return zerr.With(ErrMissingToolchain, "descriptor", d.Name)
	}
	if len(d.Inputs) == 0 {
		return zerr.With(ErrNoInputs, "descriptor", d.Name)
	}

	seen := make(map[string]bool, len(d.Inputs))
	for _, in := range d.Inputs {
		if in.Name == "" || in.URL == "" {
			return zerr.With(zerr.With(ErrInvalidInput, "input", in.Name), "url", in.URL)
		}
		if seen[in.Name] {
			return zerr.With(ErrDuplicateInput, "input", in.Name)
		}
		seen[in.Name] = true
	}

	for _, lib := range d.Libraries {
		if lib == "" {
			return zerr.With(ErrInvalidDescriptor, "field", "libraries")
		}
	}
	for _, tool := range d.Tools {
		if tool == "" {
			return zerr.With(ErrInvalidDescriptor, "field", "tools")
		}
	}
	return nil
}

// Base returns the first non-overlay input, which provides the package set
// the shell is built from.
func (d *Descriptor) Base() (Input, bool) {
	for _, in := range d.Inputs {
		if !in.Overlay {
			return in, true
		}
	}
	return Input{}, false
}

// Overlays returns the overlay inputs in declaration order.
func (d *Descriptor) Overlays() []Input {
	var overlays []Input
	for _, in := range d.Inputs {
		if in.Overlay {
			overlays = append(overlays, in)
		}
	}
	return overlays
}
