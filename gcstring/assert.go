//go:build !gcstringdebug

package gcstring

func assertf(bool, string, ...any) {}
