// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

//goland:noinspection GoSnakeCaseUsage
const (
	DEFAULT_DELIMITER    byte = '.'
	DEFAULT_LOCALE            = "en"
	DEFAULT_PATH_PATTERN      = "config/locales/*.*"
)

/*
SetConfig sets the Config the global Dictionary will be built by.

It may be called AT MOST ONCE per the process lifetime
and only before the first global Translate() call
(set-before-first-use is on you).
The second attempt fails with an AlreadyExist error
and the originally set Config remains in effect.

If you never call SetConfig, the global Dictionary is built
by the default Config: PathPattern(DEFAULT_PATH_PATTERN).
*/
func SetConfig(parts ...ConfigPart) *ekaerr.Error {
	return defaultResolver.setConfig(parts).Throw()
}

/*
Translate transforms a translation key into the translated phrase
using the global Dictionary.

The global Dictionary is built lazily, at the first call,
from the Config set by SetConfig() (or the default one), exactly once.
If that build fails, the error is cached:
each following call returns it again, the build is never retried.

See Dictionary.Translate() for the meaning of key and parts.
*/
func Translate(key interface{}, parts ...OptsPart) (string, *ekaerr.Error) {
	return defaultResolver.translate(key, parts)
}

/*
T is a shortcut for Translate.
*/
func T(key interface{}, parts ...OptsPart) (string, *ekaerr.Error) {
	return defaultResolver.translate(key, parts)
}

/*
Default returns the global Dictionary, building it at the first use
the same way Translate() does.
Returns nil if the build has failed.
*/
func Default() *Dictionary {
	return defaultResolver.dictionary()
}
