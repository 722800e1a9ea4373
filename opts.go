// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"strconv"

	"github.com/qioalice/ekago/v2/ekastr"
)

type (
	/*
	Opts are the optional parameters of one Translate() call:

	 - A locale the translation must be made for
	   (Dictionary's default locale otherwise);
	 - Variables that will be interpolated into the translated phrase;
	 - A count the pluralization bucket is chosen by;
	 - A default (fallback) key that is tried if the original key
	   is not found.

	The zero Opts is valid and means "no options".

	You may either build Opts fluently

	        slovar.NewOpts().Locale("de").Var("name", "Alice")

	or pass the same named parts directly to Translate()

	        slovar.Translate(key, slovar.Locale("de"), slovar.Var("name", "Alice"))

	Parts are applied in order they are passed.
	Parts of different kinds are independent of each other with one exception:
	Count() also sets the "count" variable (the count's decimal form),
	so for that one variable key the last applied part wins.
	*/
	Opts struct {
		locale     string
		vars       map[string]string
		count      int
		hasCount   bool
		defaultKey interface{}
	}

	/*
	OptsPart is one named optional parameter of a Translate() call.
	Locale(), DefaultKey(), Var(), Vars(), Count() construct them.
	*Opts is an OptsPart itself, so a prepared Opts object
	may be passed to Translate() along with (or instead of) separate parts.
	*/
	OptsPart interface {
		addToOpts(to *Opts)
	}

	/*
	Vars is a bulk form of Var():
	each key-value pair is added as a separate variable.
	Values are stringified the same way Var() does that.
	*/
	Vars map[string]interface{}
)

type (
	optsPartLocale     string
	optsPartDefaultKey struct{ raw interface{} }
	optsPartVar        struct {
		name  string
		value interface{}
	}
	optsPartCount int
)

/*
NewOpts returns a new empty Opts object, ready to be filled fluently.
*/
func NewOpts() *Opts {
	return new(Opts)
}

/*
Locale is an OptsPart that overrides the locale for one Translate() call.
*/
func Locale(name string) OptsPart {
	return optsPartLocale(name)
}

/*
DefaultKey is an OptsPart that sets a fallback translation key:
if the original key is not found, the fallback one is tried AS GIVEN
(in particular, it's never pluralization-suffixed)
and its own result, success or failure, is final.

key's allowed types are the same as for Translate(): string, []string, Key.
*/
func DefaultKey(key interface{}) OptsPart {
	return optsPartDefaultKey{raw: key}
}

/*
Var is an OptsPart that sets one interpolation variable.
value is stringified immediately; the interpolator itself
does no type coercion, only string substitution.
A later Var with the same name overwrites the previous value.
*/
func Var(name string, value interface{}) OptsPart {
	return optsPartVar{name: name, value: value}
}

/*
Count is an OptsPart that sets the count for one Translate() call,
enabling Rails style pluralization: the bucket
("zero" for 0, "one" for 1, "other" for everything else)
is appended to the translation key as its last segment.

Count also sets the "count" variable to the count's decimal form.
*/
func Count(count int) OptsPart {
	return optsPartCount(count)
}

/*
Locale overrides the locale for one Translate() call.
*/
func (o *Opts) Locale(name string) *Opts {
	o.locale = name
	return o
}

/*
DefaultKey sets a fallback translation key.
See the DefaultKey() function for the details.
*/
func (o *Opts) DefaultKey(key interface{}) *Opts {
	o.defaultKey = key
	return o
}

/*
Var sets one interpolation variable.
See the Var() function for the details.
*/
func (o *Opts) Var(name string, value interface{}) *Opts {
	if o.vars == nil {
		o.vars = make(map[string]string)
	}
	o.vars[name] = ekastr.ToString(value)
	return o
}

/*
Count sets the count for one Translate() call.
See the Count() function for the details.
*/
func (o *Opts) Count(count int) *Opts {
	o.count, o.hasCount = count, true
	return o.Var("count", strconv.Itoa(count))
}

func (p optsPartLocale) addToOpts(to *Opts) {
	to.Locale(string(p))
}

func (p optsPartDefaultKey) addToOpts(to *Opts) {
	to.DefaultKey(p.raw)
}

func (p optsPartVar) addToOpts(to *Opts) {
	to.Var(p.name, p.value)
}

func (p optsPartCount) addToOpts(to *Opts) {
	to.Count(int(p))
}

func (p Vars) addToOpts(to *Opts) {
	for name, value := range p {
		to.Var(name, value)
	}
}

func (o *Opts) addToOpts(to *Opts) {
	if o == nil || o == to {
		return
	}
	if o.locale != "" {
		to.locale = o.locale
	}
	if o.defaultKey != nil {
		to.defaultKey = o.defaultKey
	}
	if o.hasCount {
		to.count, to.hasCount = o.count, true
	}
	// o.vars already contain the final "count" value if both
	// Count() and Var("count", ...) were applied to o,
	// so a plain copy keeps the last-applied-wins contract.
	for name, value := range o.vars {
		if to.vars == nil {
			to.vars = make(map[string]string, len(o.vars))
		}
		to.vars[name] = value
	}
}
