package mach

// Operation represents a machine-level operation applied by Mop.
// The same set serves the instruction selector: it asks the target
// which operations it can lower before emitting them.
type Operation interface {
	implOperation()
}

// Omove copies a register value (identity operation)
type Omove struct{}

// Ointconst loads an integer constant
type Ointconst struct {
	V int64
}

// Ofloatconst loads a float64 constant
type Ofloatconst struct {
	V float64
}

// Osymbolconst loads the address of a global symbol
type Osymbolconst struct {
	Sym string
}

// --- Integer operations ---

type Oadd struct{}  // rd = rs1 + rs2
type Osub struct{}  // rd = rs1 - rs2
type Omul struct{}  // rd = rs1 * rs2
type Omulh struct{} // rd = high(rs1 * rs2) signed
type Odiv struct{}  // rd = rs1 / rs2 (signed, traps on zero)
type Omod struct{}  // rd = rs1 % rs2 (signed, traps on zero)
type Oand struct{}  // rd = rs1 & rs2
type Oor struct{}   // rd = rs1 | rs2
type Oxor struct{}  // rd = rs1 ^ rs2
type Olsl struct{}  // rd = rs1 << rs2
type Olsr struct{}  // rd = rs1 >> rs2 (unsigned)
type Oasr struct{}  // rd = rs1 >> rs2 (signed)

// Ocomp compares two integers: rd = rs1 <C> rs2
type Ocomp struct {
	C Cond
}

// --- Pointer operations ---

type Oaddv struct{} // rd = rs1 + rs2, result stays a heap value
type Oadda struct{} // rd = rs1 + rs2, result is an out-of-heap address

// Ocmpa compares two addresses: rd = rs1 <C> rs2 (unsigned)
type Ocmpa struct {
	C Cond
}

// --- Float operations ---

type Onegf struct{}       // rd = -rs
type Oabsf struct{}       // rd = |rs|
type Oaddf struct{}       // rd = rs1 + rs2
type Osubf struct{}       // rd = rs1 - rs2
type Omulf struct{}       // rd = rs1 * rs2
type Odivf struct{}       // rd = rs1 / rs2
type Ofloatofint struct{} // rd = float(rs)
type Ointoffloat struct{} // rd = int(rs), rounds toward zero

// Ocmpf compares two floats: rd = rs1 <C> rs2
type Ocmpf struct {
	C Cond
}

// Fused multiply-add and multiply-subtract. Selected only on targets
// that report them supported; they round once.
type Omuladdf struct{} // rd = rs1 * rs2 + rs3
type Omulsubf struct{} // rd = rs1 * rs2 - rs3

// Ocheckbound raises if rs1 <= rs2 as unsigned integers. Used for
// array bound checks: rs1 is the bound, rs2 the index.
type Ocheckbound struct{}

// --- Bit counting ---

type Oclz struct{}    // rd = count of leading zero bits
type Octz struct{}    // rd = count of trailing zero bits
type Opopcnt struct{} // rd = count of set bits

// Oprefetch hints the cache that arg0 will be accessed soon.
type Oprefetch struct {
	Write bool // access will be a write
}

// Marker methods for Operation interface
func (Omove) implOperation()        {}
func (Ointconst) implOperation()    {}
func (Ofloatconst) implOperation()  {}
func (Osymbolconst) implOperation() {}
func (Oadd) implOperation()         {}
func (Osub) implOperation()         {}
func (Omul) implOperation()         {}
func (Omulh) implOperation()        {}
func (Odiv) implOperation()         {}
func (Omod) implOperation()         {}
func (Oand) implOperation()         {}
func (Oor) implOperation()          {}
func (Oxor) implOperation()         {}
func (Olsl) implOperation()         {}
func (Olsr) implOperation()         {}
func (Oasr) implOperation()         {}
func (Ocomp) implOperation()        {}
func (Oaddv) implOperation()        {}
func (Oadda) implOperation()        {}
func (Ocmpa) implOperation()        {}
func (Onegf) implOperation()        {}
func (Oabsf) implOperation()        {}
func (Oaddf) implOperation()        {}
func (Osubf) implOperation()        {}
func (Omulf) implOperation()        {}
func (Odivf) implOperation()        {}
func (Ofloatofint) implOperation()  {}
func (Ointoffloat) implOperation()  {}
func (Ocmpf) implOperation()        {}
func (Omuladdf) implOperation()     {}
func (Omulsubf) implOperation()     {}
func (Ocheckbound) implOperation()  {}
func (Oclz) implOperation()         {}
func (Octz) implOperation()         {}
func (Opopcnt) implOperation()      {}
func (Oprefetch) implOperation()    {}
