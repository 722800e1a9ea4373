// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	vars := map[string]string{
		"name":  "Jacob",
		"count": "200",
	}

	for _, tc := range []struct {
		phrase string
		want   string
	}{
		{"Hello, {name}!!!", "Hello, Jacob!!!"},
		{"You have {count} messages.", "You have 200 messages."},
		{"{name} and {name}", "Jacob and Jacob"},
		{"{name}{count}", "Jacob200"},
		{"no verbs at all", "no verbs at all"},
		{"", ""},
		{"escaped {{name}} and {name}", "escaped {name} and Jacob"},
		{"braces: {{ and }}", "braces: { and }"},
	} {
		translated, err := newInterpolator(tc.phrase, vars).interpolate()
		require.True(t, err.IsNil(), "phrase %q", tc.phrase)
		require.Equal(t, tc.want, translated, "phrase %q", tc.phrase)
	}
}

func TestInterpolateMissingVariable(t *testing.T) {
	_, err := newInterpolator("Hello, {name}!", map[string]string{}).interpolate()
	require.True(t, err.IsNotNil())
}

func TestInterpolateMalformedVerb(t *testing.T) {
	vars := map[string]string{"name": "Jacob"}

	for _, phrase := range []string{
		"unterminated {name",
		"empty {} verb",
		"nested {na{me}",
		"stray } brace",
		"{",
		"}",
	} {
		_, err := newInterpolator(phrase, vars).interpolate()
		require.True(t, err.IsNotNil(), "phrase %q", phrase)
	}
}

func TestInterpolateNoCoercion(t *testing.T) {
	// Values are substituted verbatim: the interpolator itself
	// never formats or escapes them.
	translated, err := newInterpolator("{v}", map[string]string{"v": "{odd} value"}).interpolate()
	require.True(t, err.IsNil())
	require.Equal(t, "{odd} value", translated)
}

func BenchmarkInterpolate(b *testing.B) {
	vars := map[string]string{
		"name":  "Jacob",
		"count": "200",
	}
	for i := 0; i < b.N; i++ {
		_, _ = newInterpolator("Hello, {name}! You have {count} messages.", vars).interpolate()
	}
}
