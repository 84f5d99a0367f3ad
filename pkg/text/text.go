package text

import (
	"strings"

	"github.com/ib-77/mop/pkg/mop"
	"github.com/ib-77/mop/pkg/mop/guard"
)

// Join renders every element with render and joins the results with sep.
func Join[T any](values []T, sep string, render func(T) string) string {
	guard.NotNil(render, "render")

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, render(v))
	}
	return strings.Join(parts, sep)
}

// JoinNonBlank joins values with sep, skipping blank entries.
func JoinNonBlank(values []string, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

// Display looks up the display name of v; an unmapped value is absence.
func Display[E comparable](names map[E]string, v E) mop.Maybe[string] {
	guard.NotNil(names, "names")

	name, ok := names[v]
	return mop.FromOk(name, ok)
}

// DisplayOr is Display with a fallback for unmapped values.
func DisplayOr[E comparable](names map[E]string, v E, fallback string) string {
	return Display(names, v).GetOr(fallback)
}
