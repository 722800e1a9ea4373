// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	globalResolver is the state of the package-level API:
	the one-time settable Config and the lazily built global Dictionary.

	The Config's one-time promise is maintained by an atomic CAS
	over the state variable,
	the Dictionary's build-once promise by sync.Once
	(concurrent first Translate() calls are allowed:
	one of them builds, the others wait).

	The build's outcome, whatever it is, is cached:
	dict + err are written exactly once, under buildOnce,
	and are replayed for each following call.
	A failed build is never retried.
	*/
	globalResolver struct {
		state     uint32
		config    unsafe.Pointer // *Config
		buildOnce sync.Once
		dict      *Dictionary
		err       *ekaerr.Error
	}
)

//goland:noinspection GoSnakeCaseUsage
const (
	_GRS_STANDBY        uint32 = 0
	_GRS_CONFIG_PENDING uint32 = 1
	_GRS_CONFIG_SET     uint32 = 2
)

var (
	defaultResolver globalResolver
)

/*
setConfig builds a Config from the passed parts and stores it
as the global one, if it has not been done yet.
The second call always fails with an AlreadyExist error,
even if it's concurrent with the first one.
*/
func (r *globalResolver) setConfig(parts []ConfigPart) *ekaerr.Error {
	const s = "Failed to set the global config. "

	switch {
	case len(parts) == 0:
		return ekaerr.IllegalArgument.
			New(s + "There are no config parts.").
			Throw()

	case !r.changeState(_GRS_STANDBY, _GRS_CONFIG_PENDING):
		return ekaerr.AlreadyExist.
			New(s + "Config is already set and may be set only once.").
			Throw()
	}

	config := NewConfig()
	for _, part := range parts {
		if part != nil {
			part.addToConfig(config)
		}
	}

	atomic.StorePointer(&r.config, unsafe.Pointer(config))
	r.changeStateForce(_GRS_CONFIG_SET)

	return nil
}

/*
translate translates a key using the global Dictionary,
building it at the first call.
A cached build failure is returned again for each call.
*/
func (r *globalResolver) translate(key interface{}, parts []OptsPart) (string, *ekaerr.Error) {

	r.buildOnce.Do(r.build)

	if r.err.IsNotNil() {
		return "", r.err.Throw()
	}

	return r.dict.Translate(key, parts...)
}

/*
dictionary returns the global Dictionary, building it at the first call.
Nil if the build has failed.
*/
func (r *globalResolver) dictionary() *Dictionary {
	r.buildOnce.Do(r.build)
	return r.dict
}

/*
build constructs the global Dictionary from the set Config
(or the default one). Called exactly once, under buildOnce.
*/
func (r *globalResolver) build() {
	config := (*Config)(atomic.LoadPointer(&r.config))
	if config == nil {
		config = NewConfig().WithPathPattern(DEFAULT_PATH_PATTERN)
	}
	r.dict, r.err = config.Finish()
}

func (r *globalResolver) changeState(from, to uint32) bool {
	return atomic.CompareAndSwapUint32(&r.state, from, to)
}

func (r *globalResolver) changeStateForce(to uint32) {
	atomic.StoreUint32(&r.state, to)
}
