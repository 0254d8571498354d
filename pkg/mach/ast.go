package mach

// --- Mach Instructions ---
// Instructions operate on pseudo-registers until allocation assigns
// hard registers and stack slots. Calls, heap allocation, and stack
// adjustment are explicit so later passes can see every effect.

// Instruction is the interface for Mach instructions
type Instruction interface {
	implMachInstruction()
}

// Mop performs an operation: dest = op(args...)
type Mop struct {
	Op   Operation // the operation
	Args []Reg     // source registers
	Dest Reg       // destination register
}

// Mload loads from memory: dest = Mem[addr(args...)]
type Mload struct {
	Chunk Chunk          // memory access size/type
	Addr  AddressingMode // addressing mode
	Args  []Reg          // registers for addressing
	Dest  Reg            // destination register
}

// Mstore stores to memory: Mem[addr(args...)] = src
type Mstore struct {
	Chunk Chunk          // memory access size/type
	Addr  AddressingMode // addressing mode
	Args  []Reg          // registers for addressing
	Src   Reg            // source register (value to store)
}

// Mcall performs a function call
type Mcall struct {
	Sig Sig    // function signature
	Fn  FunRef // function to call (reg or symbol)
}

// Mtailcall performs a tail call (no return to caller)
type Mtailcall struct {
	Sig Sig    // function signature
	Fn  FunRef // function to call
}

// Mextcall calls an external C function. Alloc marks functions that
// may allocate on the GC heap or raise; they follow the native call's
// clobber rules instead of the C convention's.
type Mextcall struct {
	Fn    string // external symbol name
	Sig   Sig    // function signature
	Alloc bool   // may trigger a GC allocation
	Args  []Reg  // argument registers
	Dest  Reg    // destination register
}

// Mstackoffset adjusts the stack pointer by Delta bytes
type Mstackoffset struct {
	Delta int64
}

// Malloc allocates Bytes on the GC heap: dest = fresh block
type Malloc struct {
	Bytes int64 // allocation size including header
	Dest  Reg   // destination register
}

// Mraise raises the exception value held in the exception bucket
type Mraise struct{}

// Mprobe is a tracing probe site; Handler names the probe handler
// symbol the runtime patches in when the probe is enabled.
type Mprobe struct {
	Name    string
	Handler string
}

// Mlabel marks a branch target
type Mlabel struct {
	Lbl Label // the label
}

// Mgoto is an unconditional jump
type Mgoto struct {
	Target Label // jump target
}

// Mcond is a conditional branch
type Mcond struct {
	Cond Cond  // condition to evaluate
	Args []Reg // argument registers
	IfSo Label // branch target if condition is true
}

// Mreturn returns from the function
type Mreturn struct{}

// Marker methods for Instruction interface
func (Mop) implMachInstruction()          {}
func (Mload) implMachInstruction()        {}
func (Mstore) implMachInstruction()       {}
func (Mcall) implMachInstruction()        {}
func (Mtailcall) implMachInstruction()    {}
func (Mextcall) implMachInstruction()     {}
func (Mstackoffset) implMachInstruction() {}
func (Malloc) implMachInstruction()       {}
func (Mraise) implMachInstruction()       {}
func (Mprobe) implMachInstruction()       {}
func (Mlabel) implMachInstruction()       {}
func (Mgoto) implMachInstruction()        {}
func (Mcond) implMachInstruction()        {}
func (Mreturn) implMachInstruction()      {}

// --- Function ---

// Function represents a Mach function
type Function struct {
	Name          string        // function name
	Sig           Sig           // function signature
	Code          []Instruction // mach instruction sequence
	ContainsCalls bool          // has a call, heap allocation, or raise
	NumStackSlots []int         // spill slot count per register class
}

// NewFunction creates a new Mach function with no spill slots yet.
// classes is the target's register class count.
func NewFunction(name string, sig Sig, classes int) *Function {
	return &Function{
		Name:          name,
		Sig:           sig,
		Code:          make([]Instruction, 0),
		NumStackSlots: make([]int, classes),
	}
}

// Append adds an instruction to the function's code and keeps
// ContainsCalls current. Tail calls do not count: the frame is gone
// before the callee runs.
func (f *Function) Append(inst Instruction) {
	switch inst.(type) {
	case Mcall, Mextcall, Malloc, Mraise:
		f.ContainsCalls = true
	}
	f.Code = append(f.Code, inst)
}
