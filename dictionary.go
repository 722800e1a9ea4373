// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"sort"

	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	Dictionary is a container of translation messages:
	one Document per loaded locale plus the name of the default locale.

	Dictionary is created once, either by Config.Finish()
	or by NewDictionary() if you decode locale documents yourself,
	and is never mutated after that.
	Thus it's safe to call Translate() from many goroutines w/o any locks.

	WARNING!
	You must not instantiate this class manually!
	It's useless but safely.
	Manually instantiated Dictionary objects are considered not initialized
	and all Translate() calls on them are failed with an IllegalState error.
	*/
	Dictionary struct {
		docs          map[string]*Document
		defaultLocale string
	}
)

/*
NewDictionary creates a Dictionary from already decoded locale trees:
a mapping "locale name -> decoded document root"
(nested map[string]interface{} / []interface{} / scalars,
exactly as YAML/TOML/JSON decoders produce them).

If defaultLocale is empty, DEFAULT_LOCALE is used.

The caller MUST NOT mutate trees after passing it here.
*/
func NewDictionary(trees map[string]interface{}, defaultLocale string) *Dictionary {
	if defaultLocale == "" {
		defaultLocale = DEFAULT_LOCALE
	}

	docs := make(map[string]*Document, len(trees))
	for localeName, root := range trees {
		docs[localeName] = newDocument(localeName, root)
	}

	return &Dictionary{
		docs:          docs,
		defaultLocale: defaultLocale,
	}
}

/*
Translate transforms a translation key into the translated phrase
of the requested (or default) locale,
interpolating the phrase's verbs by the provided variables.

key's allowed types: string (dotted form), []string (explicit segments), Key.

How it works, step by step:

 1. If Count() option is provided, the pluralization bucket
    ("zero" for 0, "one" for 1, "other" for any other count)
    is appended to the key as its last segment,
    and all the following steps use that augmented key.

 2. The locale is chosen: either the Locale() option's one
    or the Dictionary's default locale.
    If there is no Document for the chosen locale,
    a NotFound error with the literal locale name is returned.
    The DefaultKey() option is NOT consulted for that case:
    a fallback key covers a missing key, not a missing locale.

 3. The locale's Document is searched by the key.
    Only a string leaf counts as a hit;
    a node of any other type is the same as a miss.

 4. On a miss, if the DefaultKey() option is provided,
    the fallback key is searched AS GIVEN
    (it's never pluralization-suffixed) and its own result is final.
    Otherwise a NotFound error is returned,
    carrying the dotted form of the key that was actually searched.

 5. If at least one variable was set (Count() sets the "count" one),
    the found phrase is interpolated, and an interpolation failure
    fails the whole call. If no variables were ever set,
    the phrase is returned as is, even if it contains verbs.
*/
func (d *Dictionary) Translate(key interface{}, parts ...OptsPart) (string, *ekaerr.Error) {
	const s = "Failed to translate a message. "

	if !d.isValid() {
		return "", ekaerr.IllegalState.
			New(s + "Dictionary is not initialized.").
			Throw()
	}

	searchKey, err := keyFrom(key)
	if err.IsNotNil() {
		return "", err.
			AddMessage(s).
			Throw()
	}

	opts := optsFrom(parts)

	if opts.hasCount {
		searchKey = searchKey.Chain(KeySegments(pluralBucket(opts.count)))
	}

	localeName := opts.locale
	if localeName == "" {
		localeName = d.defaultLocale
	}

	doc := d.docs[localeName]
	if doc == nil {
		return "", ekaerr.NotFound.
			New(s + "Unknown locale: " + localeName + ".").
			AddFields("slovar_locale", localeName).
			Throw()
	}

	phrase, found := doc.findString(searchKey)

	if !found && opts.defaultKey != nil {
		var fallbackKey Key
		if fallbackKey, err = keyFrom(opts.defaultKey); err.IsNotNil() {
			return "", err.
				AddMessage(s).
				Throw()
		}
		searchKey = fallbackKey
		phrase, found = doc.findString(searchKey)
	}

	if !found {
		dotted := searchKey.String()
		return "", ekaerr.NotFound.
			New(s + "Unknown key: " + dotted + ".").
			AddFields(
				"slovar_key", dotted,
				"slovar_locale", localeName).
			Throw()
	}

	if opts.vars == nil {
		return phrase, nil
	}

	translated, err := newInterpolator(phrase, opts.vars).interpolate()
	if err.IsNotNil() {
		return "", err.
			AddMessage(s).
			AddFields(
				"slovar_key", searchKey.String(),
				"slovar_locale", localeName).
			Throw()
	}

	return translated, nil
}

/*
DefaultLocale returns the name of the Dictionary's default locale:
the one Translate() uses when no Locale() option is provided.
*/
func (d *Dictionary) DefaultLocale() string {
	if !d.isValid() {
		return ""
	}
	return d.defaultLocale
}

/*
Locales returns a sorted list of all loaded locales' names.
*/
func (d *Dictionary) Locales() []string {
	if !d.isValid() {
		return nil
	}

	localeNames := make([]string, 0, len(d.docs))
	for localeName := range d.docs {
		localeNames = append(localeNames, localeName)
	}
	sort.Strings(localeNames)

	return localeNames
}

/*
Document returns the Document of the requested locale,
or nil if that locale is not loaded.
*/
func (d *Dictionary) Document(localeName string) *Document {
	if !d.isValid() {
		return nil
	}
	return d.docs[localeName]
}
