package s390x

import (
	"fmt"

	"github.com/quillc/quill/pkg/mach"
)

// Register classes. Every machine type maps to exactly one class and
// the allocator keeps one pool per class.
const (
	ClassInt   = 0 // general registers
	ClassFloat = 1 // floating point registers
	// NumRegisterClasses is the number of register classes.
	NumRegisterClasses = 2
)

// Hard register ids form one flat integer space: the integer file
// starts at 0, the float file at floatRegBase.
const floatRegBase = 100

// Integer registers available for allocation, in allocation order.
// The others are pinned: %r0/%r1 are assembler and runtime
// temporaries, %r10 holds the domain state, %r11 the trap pointer,
// %r13 the allocation pointer, %r14 the return address and %r15 the
// stack pointer.
var intRegNames = [...]string{
	"%r2", "%r3", "%r4", "%r5", "%r6", "%r7", "%r8", "%r9", "%r12",
}

// Float registers in allocation order. The convention registers
// %f0-%f7 come first (even before odd, matching the argument order),
// then the callee-saved %f8-%f15.
var floatRegNames = [...]string{
	"%f0", "%f2", "%f4", "%f6", "%f1", "%f3", "%f5", "%f7",
	"%f8", "%f9", "%f10", "%f11", "%f12", "%f13", "%f14", "%f15",
}

// NumAvailableRegisters is the number of registers the allocator may
// use, per class. The last float register %f15 is reserved as the
// code emitter's scratch register.
var NumAvailableRegisters = [NumRegisterClasses]int{9, 15}

// FirstAvailableRegister is the first hard register id of each class.
var FirstAvailableRegister = [NumRegisterClasses]int{0, floatRegBase}

// RegisterClass maps a machine type to the class that can hold it.
func RegisterClass(t mach.Typ) int {
	switch t {
	case mach.Tval, mach.Tint, mach.Taddr:
		return ClassInt
	case mach.Tfloat:
		return ClassFloat
	}
	panic(fmt.Sprintf("unhandled machine type: %v", t))
}

// RegisterName returns the assembly name of a hard register id.
func RegisterName(id int) string {
	switch {
	case id >= 0 && id < len(intRegNames):
		return intRegNames[id]
	case id >= floatRegBase && id < floatRegBase+len(floatRegNames):
		return floatRegNames[id-floatRegBase]
	}
	panic(fmt.Sprintf("unknown register id: %d", id))
}

// The canonical hard register values. Everything downstream compares
// registers by pointer, so these slices are built once at load time
// and PhysReg always hands out the same instance for an id.
var (
	hardIntRegs   = makeRegs(intRegNames[:], 0, mach.Tint)
	hardFloatRegs = makeRegs(floatRegNames[:], floatRegBase, mach.Tfloat)

	// AllPhysRegs lists every catalog register, integer file first.
	AllPhysRegs = append(append([]*mach.Register{}, hardIntRegs...), hardFloatRegs...)
)

func makeRegs(names []string, base int, ty mach.Typ) []*mach.Register {
	regs := make([]*mach.Register, len(names))
	for i, name := range names {
		regs[i] = &mach.Register{ID: base + i, Name: name, Typ: ty}
	}
	return regs
}

// PhysReg returns the canonical instance for a hard register id.
func PhysReg(id int) *mach.Register {
	switch {
	case id >= 0 && id < len(hardIntRegs):
		return hardIntRegs[id]
	case id >= floatRegBase && id < floatRegBase+len(hardFloatRegs):
		return hardFloatRegs[id-floatRegBase]
	}
	panic(fmt.Sprintf("unknown register id: %d", id))
}

// RegsAreVolatile reports whether the given registers can change value
// spontaneously between instructions. No s390x register does; the
// query exists because the allocator asks it on every target.
func RegsAreVolatile(regs []*mach.Register) bool {
	return false
}

// DWARF register numbering from the ELF ABI supplement. The float
// table follows the catalog's allocation order, which is why it is
// not monotonic: the ABI numbers the registers in hardware pair
// order.
var (
	intDwarfNumbers   = [...]int{2, 3, 4, 5, 6, 7, 8, 9, 12}
	floatDwarfNumbers = [...]int{
		16, 17, 18, 19, 20, 21, 22, 23,
		24, 28, 25, 29, 26, 30, 27, 31,
	}
)

// StackPtrDwarfRegisterNumber is the DWARF number of %r15.
const StackPtrDwarfRegisterNumber = 15

// DwarfRegisterNumbers returns the DWARF numbers of a class's catalog
// registers, in catalog order.
func DwarfRegisterNumbers(class int) []int {
	switch class {
	case ClassInt:
		return intDwarfNumbers[:]
	case ClassFloat:
		return floatDwarfNumbers[:]
	}
	panic(fmt.Sprintf("unknown register class: %d", class))
}
