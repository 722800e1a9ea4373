// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"bytes"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekastr"
)

type (
	/*
	interpolator is a helper tool to interpolate a translated phrase.
	It's a worker that takes values from vars by their names and substitutes
	them into the rem (it's a string as []byte) instead of the same name
	interpolation verbs, using strings.Builder to accumulate the result.
	*/
	interpolator struct {
		vars    map[string]string
		builder strings.Builder
		rem     []byte
	}
)

//goland:noinspection GoSnakeCaseUsage
const (
	_INTERPOLATOR_VERB_OPEN  byte = '{'
	_INTERPOLATOR_VERB_CLOSE byte = '}'
)

/*
interpolate substitutes interpolation verbs of the phrase
by the associated variables' values.

Verbs must be in the format: "{<name>}", <name> is a key from vars.
Doubled braces "{{", "}}" are escapes of the literal "{", "}".

It's all or nothing.
An unterminated or empty verb, an unexpected single closing brace,
or a verb w/o an associated variable fails the whole interpolation
with an IllegalFormat error; a phrase with an unresolved verb
is never returned as a result.
*/
func (ir *interpolator) interpolate() (string, *ekaerr.Error) {
	const s = "Failed to interpolate a translated phrase. "

	for i, n := 0, len(ir.rem); i < n; i++ {
		switch c := ir.rem[i]; c {

		case _INTERPOLATOR_VERB_OPEN:
			if i+1 < n && ir.rem[i+1] == _INTERPOLATOR_VERB_OPEN {
				ir.builder.WriteByte(c)
				i++
				continue
			}

			end := bytes.IndexByte(ir.rem[i+1:], _INTERPOLATOR_VERB_CLOSE)
			if end == -1 {
				return "", ekaerr.IllegalFormat.
					New(s + "Unterminated interpolation verb.").
					AddFields("slovar_phrase", ekastr.B2S(ir.rem)).
					Throw()
			}

			name := ekastr.B2S(ir.rem[i+1 : i+1+end])
			if name == "" || strings.IndexByte(name, _INTERPOLATOR_VERB_OPEN) != -1 {
				return "", ekaerr.IllegalFormat.
					New(s + "Malformed interpolation verb.").
					AddFields("slovar_phrase", ekastr.B2S(ir.rem)).
					Throw()
			}

			value, found := ir.vars[name]
			if !found {
				return "", ekaerr.IllegalFormat.
					New(s + "Interpolation verb does not have an associated variable.").
					AddFields("slovar_verb", name).
					Throw()
			}

			_, _ = ir.builder.WriteString(value)
			i += end + 1

		case _INTERPOLATOR_VERB_CLOSE:
			if i+1 < n && ir.rem[i+1] == _INTERPOLATOR_VERB_CLOSE {
				ir.builder.WriteByte(c)
				i++
				continue
			}
			return "", ekaerr.IllegalFormat.
				New(s + "Unexpected closing brace outside of an interpolation verb.").
				AddFields("slovar_phrase", ekastr.B2S(ir.rem)).
				Throw()

		default:
			ir.builder.WriteByte(c)
		}
	}

	return ir.builder.String(), nil
}

/*
newInterpolator is an interpolator constructor.
Transforms phrase to []byte w/ no-copy and grows builder's internal buffer
to the phrase's len + 128 bytes.
*/
func newInterpolator(phrase string, vars map[string]string) *interpolator {
	ir := &interpolator{
		vars: vars,
		rem:  ekastr.S2B(phrase),
	}
	ir.builder.Grow(len(ir.rem) + 128)
	return ir
}
