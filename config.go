// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"path/filepath"

	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	Config describes where locale documents must be taken from
	and which locale is the default one.
	Config.Finish() turns it into a ready to use Dictionary.

	Sources are either explicitly registered files (WithLocalizedPath)
	or files found by a glob pattern (WithPathPattern).
	For globbed files the locale name is the file's stem: "en.yml" -> "en".
	Supported formats (by extension): JSON, YAML, TOML.

	You may either build a Config fluently

	        slovar.NewConfig().
	                WithPathPattern("locales/*.*").
	                WithDefaultLocale("en")

	or pass the same named parts directly to SetConfig()

	        slovar.SetConfig(
	                slovar.PathPattern("locales/*.*"),
	                slovar.DefaultLocale("en"))

	Parts are applied in order they are passed.
	*/
	Config struct {
		paths         []localizedPath
		pathPattern   string
		defaultLocale string
	}

	/*
	ConfigPart is one named parameter of a Config.
	DefaultLocale(), PathPattern(), LocalizedPath() construct them.
	*Config is a ConfigPart itself, so a prepared Config object
	may be passed to SetConfig() as is.
	*/
	ConfigPart interface {
		addToConfig(to *Config)
	}
)

type (
	configPartDefaultLocale string
	configPartPathPattern   string
	configPartLocalizedPath struct {
		locale string
		path   string
	}

	/*
	localizedPath is one registered locale document source:
	a filepath and, if the source was registered explicitly,
	the locale name it belongs to.
	For globbed files locale is empty
	and the name is derived from the file's stem later.
	*/
	localizedPath struct {
		locale string
		path   string
	}
)

/*
NewConfig returns a new empty Config, ready to be filled fluently.
*/
func NewConfig() *Config {
	return new(Config)
}

/*
DefaultLocale is a ConfigPart that sets the default locale
of the Dictionary being built.
*/
func DefaultLocale(name string) ConfigPart {
	return configPartDefaultLocale(name)
}

/*
PathPattern is a ConfigPart that sets the glob pattern
locale document files are discovered by.
*/
func PathPattern(pattern string) ConfigPart {
	return configPartPathPattern(pattern)
}

/*
LocalizedPath is a ConfigPart that registers one locale document file
explicitly, binding it to the passed locale name.
*/
func LocalizedPath(locale, path string) ConfigPart {
	return configPartLocalizedPath{locale: locale, path: path}
}

/*
WithDefaultLocale sets the default locale of the Dictionary being built.
*/
func (c *Config) WithDefaultLocale(name string) *Config {
	c.defaultLocale = name
	return c
}

/*
WithPathPattern sets the glob pattern locale document files
are discovered by. The locale name of each found file is its stem:
"locales/en.yml" belongs to the "en" locale.
*/
func (c *Config) WithPathPattern(pattern string) *Config {
	c.pathPattern = pattern
	return c
}

/*
WithLocalizedPath registers one locale document file explicitly.
Unlike globbed files, the locale name is the passed one,
the file's name doesn't matter.
May be called many times, also more than once for the same locale:
a later document fully replaces the earlier one.
*/
func (c *Config) WithLocalizedPath(locale, path string) *Config {
	c.paths = append(c.paths, localizedPath{locale: locale, path: path})
	return c
}

func (p configPartDefaultLocale) addToConfig(to *Config) {
	to.WithDefaultLocale(string(p))
}

func (p configPartPathPattern) addToConfig(to *Config) {
	to.WithPathPattern(string(p))
}

func (p configPartLocalizedPath) addToConfig(to *Config) {
	to.WithLocalizedPath(p.locale, p.path)
}

func (c *Config) addToConfig(to *Config) {
	if c == nil || c == to {
		return
	}
	if c.defaultLocale != "" {
		to.defaultLocale = c.defaultLocale
	}
	if c.pathPattern != "" {
		to.pathPattern = c.pathPattern
	}
	to.paths = append(to.paths, c.paths...)
}

/*
Finish builds the Dictionary:
expands the glob pattern (if any), appends found files
to the explicitly registered ones, reads and decodes each file
and constructs one Document per locale.

Explicitly registered files go first, globbed ones after them;
if two files belong to the same locale, the later one wins
(the document is fully replaced, not merged).

Globbed files with an unsupported extension are silently skipped.
An explicitly registered file with an unknown extension is tried
against each supported decoder in order.

I/O failures and decode failures of the underlying decoders
are wrapped and passed through as is.
*/
func (c *Config) Finish() (*Dictionary, *ekaerr.Error) {
	const s = "Failed to build a Dictionary. "

	if c == nil {
		return nil, ekaerr.IllegalArgument.
			New(s + "Config is nil.").
			Throw()
	}

	paths := make([]localizedPath, 0, len(c.paths)+8)
	paths = append(paths, c.paths...)

	if c.pathPattern != "" {
		globbed, legacyErr := filepath.Glob(c.pathPattern)
		if legacyErr != nil {
			return nil, ekaerr.IllegalArgument.
				Wrap(legacyErr, s+"Incorrect path pattern.").
				AddFields("slovar_path_pattern", c.pathPattern).
				Throw()
		}
		for _, path := range globbed {
			paths = append(paths, localizedPath{path: path})
		}
	}

	trees := make(map[string]interface{}, len(paths))

	for _, lp := range paths {
		localeName := lp.locale
		if localeName == "" {
			base := filepath.Base(lp.path)
			localeName = base[:len(base)-len(filepath.Ext(base))]
		}
		if localeName == "" {
			return nil, ekaerr.IllegalArgument.
				New(s + "Could not determine a locale name for the path.").
				AddFields("slovar_source_path", lp.path).
				Throw()
		}

		root, skip, err := loadDocumentFile(lp)
		if err.IsNotNil() {
			return nil, err.
				AddMessage(s).
				Throw()
		}
		if skip {
			continue
		}

		trees[localeName] = root
	}

	return NewDictionary(trees, c.defaultLocale), nil
}
