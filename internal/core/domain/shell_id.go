package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ShellID creates a deterministic identifier for a descriptor, used as the
// memoization key for rendered shells. Inputs are canonicalized by name, so
// reordering them does not change the ID. Tool and library order is kept:
// it is observable in the rendered output.
func ShellID(d *Descriptor) string {
	inputs := slices.Clone(d.Inputs)
	slices.SortFunc(inputs, func(a, b Input) int {
		return strings.Compare(a.Name, b.Name)
	})

	var builder strings.Builder
	builder.WriteString(d.Name)
	builder.WriteString(";")
	for _, in := range inputs {
		builder.WriteString(in.Name)
		builder.WriteString(":")
		builder.WriteString(in.URL)
		builder.WriteString(":")
		builder.WriteString(in.Ref)
		builder.WriteString(":")
		builder.WriteString(in.Rev)
		if in.Overlay {
			builder.WriteString(":overlay")
		}
		builder.WriteString(";")
	}
	builder.WriteString(d.Toolchain.Channel)
	for _, comp := range d.Toolchain.Components {
		builder.WriteString("+")
		builder.WriteString(comp)
	}
	builder.WriteString(";")
	builder.WriteString(strings.Join(d.Tools, ","))
	builder.WriteString(";")
	builder.WriteString(strings.Join(d.Libraries, ","))

	return fmt.Sprintf("%016x", xxhash.Sum64String(builder.String()))
}
