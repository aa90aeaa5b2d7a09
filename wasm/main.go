//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	js.Global().Set("csteaParse", js.FuncOf(parse))
	js.Global().Set("csteaChildren", js.FuncOf(children))
	js.Global().Set("csteaRelease", js.FuncOf(release))
	js.Global().Set("csteaLine", js.FuncOf(line))
	js.Global().Set("csteaColumn", js.FuncOf(column))
	js.Global().Set("csteaDump", js.FuncOf(dump))

	// Block so the exported functions stay callable.
	<-make(chan struct{})
}
