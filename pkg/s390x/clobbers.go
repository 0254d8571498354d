package s390x

import "github.com/quillc/quill/pkg/mach"

// DestroyedAtCCall lists the registers the C calling convention does
// not preserve: the argument registers %r2-%r6 and the caller-saved
// float registers %f0-%f7.
var DestroyedAtCCall = regsByID(
	0, 1, 2, 3, 4,
	100, 101, 102, 103, 104, 105, 106, 107,
)

// DestroyedAtRaise is what unwinding to an exception handler may
// clobber: everything.
var DestroyedAtRaise = AllPhysRegs

func regsByID(ids ...int) []*mach.Register {
	regs := make([]*mach.Register, len(ids))
	for i, id := range ids {
		regs[i] = PhysReg(id)
	}
	return regs
}

// DestroyedBy returns the registers an instruction clobbers beyond
// its declared results. Native calls and allocating external calls
// can reach the GC and destroy everything; a non-allocating external
// call only loses what the C convention does not preserve.
func DestroyedBy(inst mach.Instruction) []*mach.Register {
	switch i := inst.(type) {
	case mach.Mcall, mach.Mtailcall:
		return AllPhysRegs
	case mach.Mextcall:
		if i.Alloc {
			return AllPhysRegs
		}
		return DestroyedAtCCall
	}
	return nil
}

// SafeRegisterPressure is how many integer-class registers the
// allocator can keep live across inst without forcing spills.
func SafeRegisterPressure(inst mach.Instruction) int {
	if _, ok := inst.(mach.Mextcall); ok {
		return 4
	}
	return 9
}

// MaxRegisterPressure bounds, per class, how many registers survive
// inst. Around an external call only the call-preserved registers do.
func MaxRegisterPressure(inst mach.Instruction) []int {
	if _, ok := inst.(mach.Mextcall); ok {
		return []int{4, 7}
	}
	return []int{9, 15}
}

// IsPure reports whether an instruction has no effect beyond writing
// its results, so it may be deleted when the results are unused.
func IsPure(inst mach.Instruction) bool {
	switch i := inst.(type) {
	case mach.Mcall, mach.Mtailcall, mach.Mextcall, mach.Mstackoffset,
		mach.Mstore, mach.Malloc, mach.Mraise, mach.Mprobe:
		return false
	case mach.Mop:
		switch i.Op.(type) {
		case mach.Ocheckbound:
			return false
		case mach.Omuladdf, mach.Omulsubf:
			return true
		}
		return true
	}
	return true
}
