//go:build gcstringdebug

package gcstring

import "fmt"

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("gcstring: "+format, args...))
	}
}
