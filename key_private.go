// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

/*
keyFrom normalizes raw into a Key.

Allowed raw's types:

 - string (treated as a dotted key, the same as KeyString()),
 - []string (treated as an explicit segment list, the same as KeySegments()),
 - Key (used as is).

ALL OTHER TYPES ARE PROHIBITED and lead to an IllegalArgument error.
*/
func keyFrom(raw interface{}) (Key, *ekaerr.Error) {
	const s = "Failed to normalize a translation key. "

	if raw == nil {
		return Key{}, ekaerr.IllegalArgument.
			New(s + "Key is nil.").
			Throw()
	}

	switch argType := reflect2.TypeOf(raw); argType.RType() {

	case ekaunsafe.RTypeString():
		return KeyString(raw.(string)), nil

	case ekaunsafe.RTypeStringArray():
		return KeySegments(raw.([]string)...), nil

	default:
		if key, ok := raw.(Key); ok {
			return key, nil
		}
		return Key{}, ekaerr.IllegalArgument.
			New(s + "Unexpected type of key.").
			AddFields("slovar_key_type", argType.String()).
			Throw()
	}
}
