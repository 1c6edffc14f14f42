package shellgen

import (
	"fmt"
	"strings"

	"shutbox/internal/core/domain"
)

// buildExpression renders the descriptor into a Nix expression describing
// the default development shell. The output is deterministic: inputs, tools
// and libraries appear in declaration order.
func buildExpression(d *domain.Descriptor) string {
	var b strings.Builder

	b.WriteString("# Generated by shutbox; do not edit.\n")
	b.WriteString("let\n")

	for _, in := range d.Inputs {
		writeInput(&b, in)
	}

	writeImport(&b, d)
	writeToolchain(&b, d.Toolchain)

	b.WriteString("in\n")
	b.WriteString("pkgs.mkShell {\n")

	b.WriteString("  packages = with pkgs; [\n")
	b.WriteString("    toolchain\n")
	for _, tool := range d.Tools {
		fmt.Fprintf(&b, "    %s\n", tool)
	}
	b.WriteString("  ];\n")

	b.WriteString("  LD_LIBRARY_PATH = pkgs.lib.makeLibraryPath (with pkgs; [\n")
	for _, lib := range searchPathLibraries(d) {
		fmt.Fprintf(&b, "    %s\n", lib)
	}
	b.WriteString("  ]);\n")

	b.WriteString("}\n")
	return b.String()
}

// writeInput emits one pinned fetch binding. The rev line is omitted when
// the input is unpinned.
func writeInput(b *strings.Builder, in domain.Input) {
	fmt.Fprintf(b, "  %s = builtins.fetchGit {\n", in.Name)
	fmt.Fprintf(b, "    url = %q;\n", in.URL)
	if in.Ref != "" {
		fmt.Fprintf(b, "    ref = %q;\n", in.Ref)
	}
	if in.Rev != "" {
		fmt.Fprintf(b, "    rev = %q;\n", in.Rev)
	}
	b.WriteString("  };\n")
}

// writeImport emits the package set import, applying overlays in
// declaration order.
func writeImport(b *strings.Builder, d *domain.Descriptor) {
	base, _ := d.Base()
	overlays := d.Overlays()

	if len(overlays) == 0 {
		fmt.Fprintf(b, "  pkgs = import %s { };\n", base.Name)
		return
	}

	fmt.Fprintf(b, "  pkgs = import %s {\n", base.Name)
	b.WriteString("    overlays = [\n")
	for _, overlay := range overlays {
		fmt.Fprintf(b, "      (import %s)\n", overlay.Name)
	}
	b.WriteString("    ];\n")
	b.WriteString("  };\n")
}

// writeToolchain emits the toolchain binding for the selected release
// channel, extended with the requested components.
func writeToolchain(b *strings.Builder, tc domain.Toolchain) {
	if len(tc.Components) == 0 {
		fmt.Fprintf(b, "  toolchain = pkgs.rust-bin.%s.latest.default;\n", tc.Channel)
		return
	}

	fmt.Fprintf(b, "  toolchain = pkgs.rust-bin.%s.latest.default.override {\n", tc.Channel)
	b.WriteString("    extensions = [\n")
	for _, comp := range tc.Components {
		fmt.Fprintf(b, "      %q\n", comp)
	}
	b.WriteString("    ];\n")
	b.WriteString("  };\n")
}

// searchPathLibraries returns the declared libraries with order preserved
// and duplicates dropped; the dynamic linker consults the first hit.
func searchPathLibraries(d *domain.Descriptor) []string {
	seen := make(map[string]bool, len(d.Libraries))
	libs := make([]string, 0, len(d.Libraries))
	for _, lib := range d.Libraries {
		if seen[lib] {
			continue
		}
		seen[lib] = true
		libs = append(libs, lib)
	}
	return libs
}
