package cpu

// Opcode is a closed enumeration over the 256 primary opcode bytes. The
// conversions to and from uint8 are trivial bijections: every byte denotes
// exactly one Opcode and vice versa, including the eleven illegal bytes.
type Opcode uint8

// ByteToOpcode converts a fetched instruction byte into its Opcode case.
func ByteToOpcode(b uint8) Opcode { return Opcode(b) }

// OpcodeToByte recovers the original instruction byte from an Opcode.
func OpcodeToByte(op Opcode) uint8 { return uint8(op) }
