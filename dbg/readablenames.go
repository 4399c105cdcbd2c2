package dbg

import (
	"reflect"
	"sync"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for pointers, so debug output can say "BraveOtter" instead of
// "0xc000012345". Names are handed out lazily and kept forever, which is fine
// for a debugging aid and nothing else.

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	// Names depend on the order they're requested in, so don't let anyone get
	// attached to them across runs.
	petname.NonDeterministicMode()
}

// Name for obj, which should be a pointer. nil gets "Ø".
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); isNilable(v.Kind()) && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[obj] = name
	return name
}

func isNilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	}
	return false
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
