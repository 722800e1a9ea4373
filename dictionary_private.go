// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

//goland:noinspection GoSnakeCaseUsage
const (
	_PLURAL_BUCKET_ZERO  = "zero"
	_PLURAL_BUCKET_ONE   = "one"
	_PLURAL_BUCKET_OTHER = "other"
)

/*
isValid ensures that the current Dictionary object is not nil
and initialized correctly (not manually instantiated by the caller).
Returns true if this is a correct object.
*/
func (d *Dictionary) isValid() bool {
	return d != nil && d.docs != nil
}

/*
pluralBucket chooses the pluralization bucket for the count:
"zero" for 0, "one" for 1, "other" for anything else
(negative counts included).

It's the Rails style three bucket convention, not the full CLDR plural rules.
*/
func pluralBucket(count int) string {
	switch count {
	case 0:
		return _PLURAL_BUCKET_ZERO
	case 1:
		return _PLURAL_BUCKET_ONE
	default:
		return _PLURAL_BUCKET_OTHER
	}
}
