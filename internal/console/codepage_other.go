//go:build !windows

package console

// EnableUTF8Output is a no-op outside Windows, where terminals speak UTF-8
// natively.
func EnableUTF8Output() {}
