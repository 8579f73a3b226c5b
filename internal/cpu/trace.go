package cpu

// RegisterAccessKind distinguishes the shape of a RegisterAccess entry.
type RegisterAccessKind uint8

const (
	RegisterAccessNone RegisterAccessKind = iota
	RegisterAccessRead
	RegisterAccessWrite
	RegisterAccessRead16
	RegisterAccessWrite16
)

// RegisterAccess records one register-file touch made while executing an
// instruction, for test suites that want to assert on exact access order.
type RegisterAccess struct {
	Kind    RegisterAccessKind
	Reg8    RegisterID
	Reg16   RegisterPairID
	Value8  uint8
	Value16 uint16
}

// MemoryAccessKind distinguishes the shape of a MemoryAccess entry.
type MemoryAccessKind uint8

const (
	MemoryAccessNone MemoryAccessKind = iota
	MemoryAccessRead
	MemoryAccessWrite
)

// MemoryAccess records one bus touch made while executing an instruction.
type MemoryAccess struct {
	Kind    MemoryAccessKind
	Address uint16
	Value   uint8
}

// traceCapacity bounds Trace to at most four register and four memory
// accesses per instruction, matching the fixed-size accumulator the
// reference CPU core uses.
const traceCapacity = 4

// Trace is an optional per-instruction record a CPU can be asked to fill in,
// carrying the pre-execution register snapshot, the opcode fetched, and up
// to four register and four memory accesses made while executing it.
type Trace struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
	PC   uint16

	CPUCycles uint64
	Opcode    uint8

	RegisterAccesses []RegisterAccess
	MemoryAccesses   []MemoryAccess
}

// NewTrace returns a zeroed Trace ready to be snapshotted and recorded into.
func NewTrace() *Trace {
	return &Trace{
		RegisterAccesses: make([]RegisterAccess, 0, traceCapacity),
		MemoryAccesses:   make([]MemoryAccess, 0, traceCapacity),
	}
}

// Clear resets a Trace for reuse across instructions without reallocating
// its access slices.
func (tr *Trace) Clear() {
	tr.A, tr.F = 0, 0
	tr.B, tr.C = 0, 0
	tr.D, tr.E = 0, 0
	tr.H, tr.L = 0, 0
	tr.SP, tr.PC = 0, 0
	tr.CPUCycles = 0
	tr.Opcode = 0
	tr.RegisterAccesses = tr.RegisterAccesses[:0]
	tr.MemoryAccesses = tr.MemoryAccesses[:0]
}

// snapshot copies the register file into the trace's pre-execution fields.
func (tr *Trace) snapshot(r *Registers, cycles uint64, opcode uint8) {
	tr.A, tr.F = r.A, r.F
	tr.B, tr.C = r.B, r.C
	tr.D, tr.E = r.D, r.E
	tr.H, tr.L = r.H, r.L
	tr.SP, tr.PC = r.SP, r.PC
	tr.CPUCycles = cycles
	tr.Opcode = opcode
}

// recordRegisterRead appends a register read access, dropping it silently
// once the trace already holds traceCapacity entries.
func (tr *Trace) recordRegisterRead(id RegisterID, value uint8) {
	if len(tr.RegisterAccesses) >= traceCapacity {
		return
	}
	tr.RegisterAccesses = append(tr.RegisterAccesses, RegisterAccess{Kind: RegisterAccessRead, Reg8: id, Value8: value})
}

// recordRegisterWrite appends a register write access.
func (tr *Trace) recordRegisterWrite(id RegisterID, value uint8) {
	if len(tr.RegisterAccesses) >= traceCapacity {
		return
	}
	tr.RegisterAccesses = append(tr.RegisterAccesses, RegisterAccess{Kind: RegisterAccessWrite, Reg8: id, Value8: value})
}

// recordMemoryRead appends a memory read access.
func (tr *Trace) recordMemoryRead(addr uint16, value uint8) {
	if len(tr.MemoryAccesses) >= traceCapacity {
		return
	}
	tr.MemoryAccesses = append(tr.MemoryAccesses, MemoryAccess{Kind: MemoryAccessRead, Address: addr, Value: value})
}

// recordMemoryWrite appends a memory write access.
func (tr *Trace) recordMemoryWrite(addr uint16, value uint8) {
	if len(tr.MemoryAccesses) >= traceCapacity {
		return
	}
	tr.MemoryAccesses = append(tr.MemoryAccesses, MemoryAccess{Kind: MemoryAccessWrite, Address: addr, Value: value})
}
