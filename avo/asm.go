// This file is the avo generator source for a real PCMPEQB+PMOVMSKB SIMD
// kernel for group.go's 16-wide match. It is not part of the swiss module
// build (see the ignore tag below and DESIGN.md) and is kept only as the
// documented path to a hand-verified asm implementation, should one replace
// group_sse2.go's portable emulation later.

//go:build ignore

package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

func main() {
	TEXT("matchByteASM", NOSPLIT, "func(c uint8, ctrl []byte) (mask uint32, ok bool)")
	n := Load(Param("ctrl").Len(), GP64())
	result := GP32()

	CMPQ(n, operand.Imm(16))
	JGE(operand.LabelRef("valid"))

	ok, err := ReturnIndex(1).Resolve()
	if err != nil {
		panic(err)
	}
	XORL(result, result)
	Store(result, ReturnIndex(0))
	MOVB(operand.Imm(0), ok.Addr)
	RET()

	Label("valid")
	c := Load(Param("c"), GP32())
	ptr := Load(Param("ctrl").Base(), GP64())

	broadcast, window := XMM(), XMM()
	zero := XMM()
	PXOR(zero, zero)
	MOVD(c, broadcast)
	PSHUFB(zero, broadcast)
	MOVOU(operand.Mem{Base: ptr}, window)
	PCMPEQB(window, broadcast)
	PMOVMSKB(broadcast, result)
	Store(result, ReturnIndex(0))
	MOVB(operand.Imm(1), ok.Addr)
	RET()
	Generate()
}
