// Package z80 decodes single Zilog Z80 instructions and renders them as assembly text.
//
// # Decoding
//
// Decode inspects up to MaxInstructionLength bytes and returns the decoded
// Instruction together with a flag reporting whether the bytes form a defined
// encoding:
//
//	ins, ok := z80.Decode([]byte{0xDD, 0x21, 0x34, 0x12})
//	if !ok {
//		// undefined encoding, treat the byte as data
//	}
//	fmt.Println(ins.Len, ins) // 4 LD IX,0x1234
//
// The opcode space is split into pages. The base page is entered first, the
// prefix bytes 0xCB, 0xED, 0xDD and 0xFD select the bit operations page, the
// extended operations page and the index register page for IX and IY. An index
// prefix followed by 0xCB places the displacement byte before the final opcode byte.
//
// # Undefined encodings
//
// Byte patterns without an assigned instruction are reported as absent, they are
// never guessed. This covers the reserved slots of the extended operations page,
// the SLL slot of the bit operations page, indexed bit operations that target a
// register instead of memory and chained prefixes such as 0xDD 0xED.
//
// # Concurrency
//
// All lookup tables are immutable package level values, Decode and Format can be
// called concurrently without synchronization. Every call returns a new value that
// is owned by the caller.
package z80
