package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/zerr"

	"shutbox/internal/core/domain"
)

func validDescriptor() *domain.Descriptor {
	return &domain.Descriptor{
		Name: "shut_the_box",
		Inputs: []domain.Input{
			{Name: "nixpkgs", URL: "github:NixOS/nixpkgs", Ref: "nixos-24.05"},
			{Name: "rust-overlay", URL: "github:oxalica/rust-overlay", Ref: "master", Overlay: true},
		},
		Toolchain: domain.Toolchain{Channel: "stable", Components: []string{"rust-src"}},
		Tools:     []string{"mermaid-cli", "cargo-watch"},
		Libraries: []string{"libGL", "libxkbcommon", "wayland", "libX11"},
	}
}

func TestDescriptor_Validate(t *testing.T) {
	if err := validDescriptor().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDescriptor_Validate_MissingToolchain(t *testing.T) {
	d := validDescriptor()
	d.Toolchain.Channel = ""

	err := d.Validate()
	if !errors.Is(err, domain.ErrMissingToolchain) {
		t.Fatalf("expected ErrMissingToolchain, got %v", err)
	}
}

func TestDescriptor_Validate_NoInputs(t *testing.T) {
	d := validDescriptor()
	d.Inputs = nil

	if err := d.Validate(); !errors.Is(err, domain.ErrNoInputs) {
		t.Fatalf("expected ErrNoInputs, got %v", err)
	}
}

func TestDescriptor_Validate_DuplicateInput(t *testing.T) {
	d := validDescriptor()
	d.Inputs = append(d.Inputs, d.Inputs[0])

	err := d.Validate()
	if !errors.Is(err, domain.ErrDuplicateInput) {
		t.Fatalf("expected ErrDuplicateInput, got %v", err)
	}

	// Verify metadata names the offending input.
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if name, ok := zErr.Metadata()["input"].(string); !ok || name != "nixpkgs" {
		t.Errorf("expected metadata input=nixpkgs, got %v", zErr.Metadata()["input"])
	}
}

func TestDescriptor_Validate_EmptyLibrary(t *testing.T) {
	d := validDescriptor()
	d.Libraries = append(d.Libraries, "")

	if err := d.Validate(); !errors.Is(err, domain.ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestDescriptor_BaseAndOverlays(t *testing.T) {
	d := validDescriptor()

	base, ok := d.Base()
	if !ok {
		t.Fatal("expected a base input")
	}
	if base.Name != "nixpkgs" {
		t.Errorf("expected base nixpkgs, got %s", base.Name)
	}

	overlays := d.Overlays()
	if len(overlays) != 1 || overlays[0].Name != "rust-overlay" {
		t.Errorf("unexpected overlays: %v", overlays)
	}
}

func TestShellID_Deterministic(t *testing.T) {
	a := validDescriptor()
	b := validDescriptor()

	if domain.ShellID(a) != domain.ShellID(b) {
		t.Error("identical descriptors should share an ID")
	}
}

func TestShellID_InputOrderIndependent(t *testing.T) {
	a := validDescriptor()
	b := validDescriptor()
	b.Inputs[0], b.Inputs[1] = b.Inputs[1], b.Inputs[0]

	if domain.ShellID(a) != domain.ShellID(b) {
		t.Error("input order should not change the ID")
	}
}

func TestShellID_SensitiveToPins(t *testing.T) {
	a := validDescriptor()
	b := validDescriptor()
	b.Inputs[0].Rev = "abc123"

	if domain.ShellID(a) == domain.ShellID(b) {
		t.Error("changing a pin should change the ID")
	}
}

func TestShellID_LibraryOrderObservable(t *testing.T) {
	// Library order is visible in the rendered search path, so it is part
	// of the identity.
	a := validDescriptor()
	b := validDescriptor()
	b.Libraries[0], b.Libraries[1] = b.Libraries[1], b.Libraries[0]

	if domain.ShellID(a) == domain.ShellID(b) {
		t.Error("library order should change the ID")
	}
}
