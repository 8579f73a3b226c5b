package cpu

// cbTable is the dense mapping from the second byte of a 0xCB-prefixed
// opcode to behavior. Populated generatively: bits 7-6 select the
// operation family, bits 5-3 select either a rotate/shift kind or a bit
// index, and bits 2-0 select the r8 operand.
var cbTable [256]opcodeFunc

// rotateShiftOps is indexed by bits 5-3 of a 0x00-0x3F CB opcode, in
// hardware encoding order: RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL.
var rotateShiftOps = [8]func(r *Registers, v uint8) uint8{
	rlc, rrc, rl, rr, sla, sra, swap, srl,
}

func init() {
	for kind := uint8(0); kind < 8; kind++ {
		op := rotateShiftOps[kind]
		for reg := uint8(0); reg < 8; reg++ {
			opcode := kind<<3 | reg
			r := reg
			cbTable[opcode] = func(c *CPU, mem Memory, stepFn StepFunc) uint8 {
				r8Write(c, mem, stepFn, r, op(c.Registers, r8Read(c, mem, stepFn, r)))
				if r == r8HLInd {
					return 16
				}
				return 8
			}
		}
	}

	for n := uint8(0); n < 8; n++ {
		for reg := uint8(0); reg < 8; reg++ {
			bitNum, r := n, reg

			cbTable[0x40|n<<3|reg] = func(c *CPU, mem Memory, stepFn StepFunc) uint8 {
				bit(c.Registers, r8Read(c, mem, stepFn, r), bitNum)
				if r == r8HLInd {
					return 12
				}
				return 8
			}
			cbTable[0x80|n<<3|reg] = func(c *CPU, mem Memory, stepFn StepFunc) uint8 {
				r8Write(c, mem, stepFn, r, res(r8Read(c, mem, stepFn, r), bitNum))
				if r == r8HLInd {
					return 16
				}
				return 8
			}
			cbTable[0xC0|n<<3|reg] = func(c *CPU, mem Memory, stepFn StepFunc) uint8 {
				r8Write(c, mem, stepFn, r, set(r8Read(c, mem, stepFn, r), bitNum))
				if r == r8HLInd {
					return 16
				}
				return 8
			}
		}
	}
}
