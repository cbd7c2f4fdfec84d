package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys, like triangles, into random
// readable names. It never forgets a name, but generates the names lazily,
// so it's not a problem unless you're actually using it. Names are much easier
// to tell apart at a glance than index triples when looking at a drawing.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// The key must be comparable.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// A fresh hyphenated name, not memoized. Useful for naming output files.
func FileName(ext string) string {
	return petname.Generate(2, "-") + ext
}
