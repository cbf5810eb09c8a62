//go:build windows

package console

import "golang.org/x/sys/windows"

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
)

const codePageUTF8 = 65001

// EnableUTF8Output switches the console output code page to UTF-8 so that
// mod filenames containing CJK characters render correctly. Must be called
// before the first message is written.
func EnableUTF8Output() {
	procSetConsoleOutputCP.Call(uintptr(codePageUTF8))
}
