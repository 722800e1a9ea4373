// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"strings"
)

type (
	/*
	Key is a path to some translated phrase inside a locale Document.

	Logically it's just an ordered sequence of path segments,
	but there are three ways the same sequence may be represented:

	 1. A solid string, segments are separated by DEFAULT_DELIMITER:
	    KeyString("custom.greeting");

	 2. An explicit list of segments:
	    KeySegments("custom", "greeting");

	 3. A pair of two other Key objects, the left one goes first:
	    KeyString("custom").Chain(KeySegments("greeting")).

	No matter which way the Key was constructed,
	traversing it always yields the same segment sequence,
	and the traverse may be restarted as many times as you need.

	The zero Key is usable and is the same as KeyString("").
	*/
	Key struct {
		str  string
		segs []string
		pair *[2]Key
	}
)

/*
KeyString returns a Key which segments are the parts of s
separated by DEFAULT_DELIMITER.
The string is not split ahead of time, only while traversing.
*/
func KeyString(s string) Key {
	return Key{str: s}
}

/*
KeySegments returns a Key with exactly the passed segments.
Segments are used as is. A segment MAY contain DEFAULT_DELIMITER
and it still will be treated as one segment.
*/
func KeySegments(segments ...string) Key {
	if segments == nil {
		segments = []string{}
	}
	return Key{segs: segments}
}

/*
Chain returns a Key which segments are the current Key's segments
followed by the other Key's ones.

It's O(1). Neither the current Key nor other is copied or flattened,
the returned Key just refers both of them.
*/
func (k Key) Chain(other Key) Key {
	return Key{pair: &[2]Key{k, other}}
}

/*
String renders the whole Key in its dotted form,
no matter which way the Key was constructed.
Mainly for diagnostic messages.
*/
func (k Key) String() string {
	if k.pair == nil && k.segs == nil {
		return k.str
	}

	var (
		b     strings.Builder
		first = true
	)
	k.each(func(segment string) bool {
		if !first {
			b.WriteByte(DEFAULT_DELIMITER)
		}
		first = false
		b.WriteString(segment)
		return true
	})

	return b.String()
}

/*
each traverses the Key's segments in their logical order,
calling cb for each of them.
The traverse is stopped early if cb returns false.

Returns true if the whole sequence has been traversed.
each may be called as many times as needed, the yielded sequence is the same.
*/
func (k Key) each(cb func(segment string) bool) bool {
	switch {
	case k.pair != nil:
		return k.pair[0].each(cb) && k.pair[1].each(cb)

	case k.segs != nil:
		for _, segment := range k.segs {
			if !cb(segment) {
				return false
			}
		}
		return true

	default:
		for s := k.str; ; {
			idx := strings.IndexByte(s, DEFAULT_DELIMITER)
			if idx == -1 {
				return cb(s)
			}
			if !cb(s[:idx]) {
				return false
			}
			s = s[idx+1:]
		}
	}
}
