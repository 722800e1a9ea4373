// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

/*
newDocument is a Document constructor.
The caller MUST NOT mutate root after passing it here.
*/
func newDocument(name string, root interface{}) *Document {
	return &Document{
		name: name,
		root: root,
	}
}
