package wasm

import "github.com/wippyai/wasm-aot/wasm/internal/binary"

// ForwardingBody builds a code entry that pushes every parameter of ft and
// calls target. No locals are declared.
func ForwardingBody(ft FuncType, target uint32) []byte {
	w := binary.NewWriter()
	w.WriteU32(0)
	for i := range ft.Params {
		w.Byte(OpLocalGet)
		w.WriteU32(uint32(i))
	}
	w.Byte(OpCall)
	w.WriteU32(target)
	w.Byte(OpEnd)
	return w.Bytes()
}
