// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"strconv"

	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

type (
	/*
	Document is a storage of all translated phrases for one locale.

	It holds an already decoded tree of nested objects
	(map[string]interface{}), arrays ([]interface{})
	and scalar leaves (string, number, bool, nil),
	exactly as YAML/TOML/JSON decoders produce it.

	Document is immutable after it has been constructed,
	thus it's safe to share one between goroutines w/o any locks.
	*/
	Document struct {
		name string
		root interface{}
	}
)

/*
Name returns the locale name the current Document belongs to.
*/
func (d *Document) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

/*
find walks the Document's tree following the key's segments one by one:

 - If the current node is an object, the segment is used as a field name;
 - If the current node is an array, the segment is parsed
   as a non-negative decimal index;
 - Any other node's type terminates the walk.

There is no partial-match semantic.
Either the walk consumes ALL key's segments and the reached node is returned,
or false is returned: for a failed field lookup, an out of range index,
a segment that cannot be parsed as an index against an array,
or a scalar node met before the key is exhausted.
*/
func (d *Document) find(key Key) (interface{}, bool) {
	node := d.root

	completed := key.each(func(segment string) bool {
		switch rtype := reflect2.RTypeOf(node); {

		case rtype == ekaunsafe.RTypeMapStringInterface():
			var found bool
			node, found = node.(map[string]interface{})[segment]
			return found

		default:
			arr, isArr := node.([]interface{})
			if !isArr {
				return false
			}
			idx, legacyErr := strconv.Atoi(segment)
			if legacyErr != nil || idx < 0 || idx >= len(arr) {
				return false
			}
			node = arr[idx]
			return true
		}
	})

	if !completed {
		return nil, false
	}
	return node, true
}

/*
findString is the same as find
but also requires the reached node to be a string leaf.
A node of any other type (number, bool, nil, object, array)
is treated as "not found".
*/
func (d *Document) findString(key Key) (string, bool) {
	node, found := d.find(key)
	if !found || reflect2.RTypeOf(node) != ekaunsafe.RTypeString() {
		return "", false
	}
	return node.(string), true
}
