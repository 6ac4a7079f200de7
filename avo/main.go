// Scratch driver for trying out the matchByteASM kernel shape (see asm.go)
// against a literal control-byte buffer, before committing to generated
// assembly. Not part of the swiss module build.
package main

import (
	"fmt"
	"math/bits"
)

func matchByteRef(c uint8, ctrl []byte) (mask uint32, ok bool) {
	if len(ctrl) < 16 {
		return 0, false
	}
	for i := 0; i < 16; i++ {
		if ctrl[i] == c {
			mask |= 1 << uint(i)
		}
	}
	return mask, true
}

func main() {
	c := uint8(42)
	ctrl := []byte{42, 0, 42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42, 0, 0}
	ctrl = ctrl[2:]
	fmt.Println(len(ctrl))
	res, ok := matchByteRef(c, ctrl)
	if !ok {
		panic("short control byte slice")
	}
	fmt.Println(res)
	zeros := bits.TrailingZeros32(res)
	if zeros == 32 {
		fmt.Println("no match")
		return
	}
	for {
		index := bits.TrailingZeros32(res)
		fmt.Println("match:", index)
		res &= ^(1 << index)
		if res == 0 {
			break
		}
	}
}
