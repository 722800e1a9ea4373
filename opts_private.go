// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

/*
optsFrom builds an Opts object applying all passed parts in their order
to the empty one. Nil parts are skipped.
No parts at all is fine and gives the empty Opts.
*/
func optsFrom(parts []OptsPart) Opts {
	var o Opts
	for _, part := range parts {
		if part != nil {
			part.addToOpts(&o)
		}
	}
	return o
}
