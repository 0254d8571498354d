// Package mach defines the machine intermediate representation.
// Mach is the register-level IR the backend works on after instruction
// selection: operations over pseudo-registers, explicit calls, explicit
// heap allocation, and explicit stack adjustment. Register allocation
// rewrites pseudo-registers to the target's hard registers and stack
// slots; the target description (pkg/s390x) supplies the register
// catalog, calling conventions, and clobber sets it consults.
package mach

import "fmt"

// Typ is the machine type of a value.
type Typ int

const (
	// Tval is a pointer-sized word that may point into the GC heap.
	Tval Typ = iota
	// Tint is a pointer-sized integer, never a heap pointer.
	Tint
	// Taddr is a pointer-sized address that never points into the heap
	// (out-of-heap data, code pointers, derived pointers).
	Taddr
	// Tfloat is a 64-bit floating point value.
	Tfloat
)

func (t Typ) String() string {
	switch t {
	case Tval:
		return "val"
	case Tint:
		return "int"
	case Taddr:
		return "addr"
	case Tfloat:
		return "float"
	}
	return fmt.Sprintf("Typ(%d)", int(t))
}

// Reg represents a pseudo-register (positive integer, infinite supply)
type Reg int

// Register is one hard register of the target. The target description
// owns the canonical instances; consumers compare them by pointer and
// must not construct their own.
type Register struct {
	ID   int    // flat machine id; the target decides the class split
	Name string // assembly-level name, e.g. "%r2"
	Typ  Typ    // Tint for the integer file, Tfloat for the float file
}

func (r *Register) String() string {
	return r.Name
}

// Label represents a branch target.
// Labels are positive integers, with 0 indicating no label.
type Label int

// Valid returns true if this is a valid label (positive)
func (l Label) Valid() bool {
	return l > 0
}

// Cond is an integer or float comparison predicate.
type Cond int

const (
	Ceq Cond = iota // ==
	Cne             // !=
	Clt             // < (signed)
	Cle             // <= (signed)
	Cgt             // > (signed)
	Cge             // >= (signed)
)

// Chunk describes the size and extension behavior of a memory access.
type Chunk int

const (
	Mint8signed Chunk = iota
	Mint8unsigned
	Mint16signed
	Mint16unsigned
	Mint32
	Mint64
	Mfloat32
	Mfloat64
)

// --- Addressing modes ---
// The addressing modes the target's load/store encodings support.

// AddressingMode is the interface for addressing modes
type AddressingMode interface {
	implAddressingMode()
}

// Abased addresses a global symbol plus displacement: sym + ofs
type Abased struct {
	Sym string
	Ofs int64
}

// Aindexed addresses base register plus displacement: arg0 + ofs
type Aindexed struct {
	Ofs int64
}

// Aindexed2 addresses base plus index plus displacement: arg0 + arg1 + ofs
type Aindexed2 struct {
	Ofs int64
}

func (Abased) implAddressingMode()    {}
func (Aindexed) implAddressingMode()  {}
func (Aindexed2) implAddressingMode() {}

// Sig represents a function signature
type Sig struct {
	Args []Typ // argument machine types, in order
	Res  []Typ // result machine types, in order
}

// --- Function Reference ---

// FunRef represents a function reference (either register or symbol)
type FunRef interface {
	implFunRef()
}

// FunReg is a function pointer in a register
type FunReg struct {
	Reg Reg
}

// FunSymbol is a named function symbol
type FunSymbol struct {
	Name string
}

func (FunReg) implFunRef()    {}
func (FunSymbol) implFunRef() {}
