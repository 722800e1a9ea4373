// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFinishGlob(t *testing.T) {
	d, err := NewConfig().
		WithPathPattern("testdata/locales/*.*").
		Finish()

	require.True(t, err.IsNil())
	require.NotNil(t, d)

	// notes.txt has an unsupported extension and must not become a locale.
	require.Equal(t, []string{"de", "en", "es", "fr"}, d.Locales())

	phrase, err := d.Translate("greeting")
	require.True(t, err.IsNil())
	require.Equal(t, "Hello, World!", phrase)

	phrase, err = d.Translate("messages", Locale("fr"), Count(5))
	require.True(t, err.IsNil())
	require.Equal(t, "Vous avez 5 messages.", phrase)

	phrase, err = d.Translate("custom.greeting", Locale("es"), Var("name", "Jacob"))
	require.True(t, err.IsNil())
	require.Equal(t, "Hola, Jacob!!!", phrase)
}

func TestConfigFinishExplicitPathUnknownExtension(t *testing.T) {
	// An explicitly registered file isn't skipped because of its extension.
	// It's tried against each supported decoder instead.
	d, err := NewConfig().
		WithLocalizedPath("pt", "testdata/extra/pt.messages").
		Finish()

	require.True(t, err.IsNil())
	require.Equal(t, []string{"pt"}, d.Locales())

	phrase, err := d.Translate("messages", Locale("pt"), Count(1))
	require.True(t, err.IsNil())
	require.Equal(t, "Voce tem uma mensagem.", phrase)
}

func TestConfigFinishSameLocaleLaterWins(t *testing.T) {
	d, err := NewConfig().
		WithLocalizedPath("en", "testdata/locales/en.yml").
		WithLocalizedPath("en", "testdata/override/en.yml").
		Finish()

	require.True(t, err.IsNil())
	require.Equal(t, []string{"en"}, d.Locales())

	phrase, err := d.Translate("greeting")
	require.True(t, err.IsNil())
	require.Equal(t, "Hello from the override!", phrase)

	// The earlier document is fully replaced, not merged.
	_, err = d.Translate("messages", Count(0))
	require.True(t, err.IsNotNil())
}

func TestConfigFinishDefaultLocale(t *testing.T) {
	d, err := NewConfig().
		WithPathPattern("testdata/locales/*.yml").
		WithDefaultLocale("de").
		Finish()

	require.True(t, err.IsNil())
	require.Equal(t, "de", d.DefaultLocale())

	phrase, err := d.Translate("greeting")
	require.True(t, err.IsNil())
	require.Equal(t, "Hallo Welt!", phrase)
}

func TestConfigFinishErrors(t *testing.T) {
	var c *Config
	_, err := c.Finish()
	require.True(t, err.IsNotNil())

	_, err = NewConfig().
		WithLocalizedPath("en", "testdata/locales/does-not-exist.yml").
		Finish()
	require.True(t, err.IsNotNil())

	_, err = NewConfig().
		WithLocalizedPath("en", "testdata/bad/broken.yml").
		Finish()
	require.True(t, err.IsNotNil())
}

func TestConfigParts(t *testing.T) {
	// Named parts and the fluent builder must be interchangeable.
	fluent := NewConfig().
		WithPathPattern("testdata/locales/*.yml").
		WithDefaultLocale("de").
		WithLocalizedPath("pt", "testdata/extra/pt.messages")

	byParts := NewConfig()
	for _, part := range []ConfigPart{
		PathPattern("testdata/locales/*.yml"),
		DefaultLocale("de"),
		LocalizedPath("pt", "testdata/extra/pt.messages"),
	} {
		part.addToConfig(byParts)
	}

	require.Equal(t, fluent, byParts)

	// A prepared *Config is a ConfigPart itself.
	merged := NewConfig()
	fluent.addToConfig(merged)
	require.Equal(t, fluent, merged)
}
