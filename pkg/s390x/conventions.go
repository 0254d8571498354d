package s390x

import (
	"fmt"

	"github.com/quillc/quill/pkg/mach"
)

// Calling conventions.
//
// Native calls:
//
//	first integer and pointer arguments in %r2...%r6
//	first float arguments in %f0, %f2, %f4, %f6
//	remaining arguments on the stack
//	results in the same registers, never on the stack
//
// C calls use the same argument registers but start their stack
// arguments above the 160-byte register save area the z/Linux ABI
// makes the caller reserve; results come back in %r2 or %f0 only.
//
// The integer and float cursors advance independently: a float
// argument never consumes an integer register and vice versa.

const (
	// stackAlignment pads every argument area to a 16-byte multiple.
	stackAlignment = 16

	// ExternalReservedAreaSize is the register save area at the
	// bottom of the outgoing area on C calls; their stack arguments
	// start above it.
	ExternalReservedAreaSize = 160
)

// Last argument register id per class: %r6 and %f6.
const (
	lastIntArgReg   = 4
	lastFloatArgReg = floatRegBase + 3
)

// assignLocations gives each value in args a location: registers from
// the class's range while any remain, then stack slots built by
// makeStack starting at startOfs. Returns the locations and the final
// stack size rounded up to stackAlignment.
func assignLocations(args []mach.Typ, firstInt, lastInt, firstFloat, lastFloat int, makeStack mach.StackBuilder, startOfs int64) ([]mach.Loc, int64) {
	locs := make([]mach.Loc, len(args))
	intReg := firstInt
	floatReg := firstFloat
	ofs := startOfs
	for i, ty := range args {
		switch ty {
		case mach.Tval, mach.Tint, mach.Taddr:
			if intReg <= lastInt {
				locs[i] = mach.R{Reg: PhysReg(intReg)}
				intReg++
			} else {
				locs[i] = makeStack(ofs, ty)
				ofs += WordSize
			}
		case mach.Tfloat:
			if floatReg <= lastFloat {
				locs[i] = mach.R{Reg: PhysReg(floatReg)}
				floatReg++
			} else {
				locs[i] = makeStack(ofs, mach.Tfloat)
				ofs += FloatSize
			}
		default:
			panic(fmt.Sprintf("unhandled machine type: %v", ty))
		}
	}
	return locs, alignUp(ofs, stackAlignment)
}

// ArgumentLocations assigns outgoing locations for the arguments of a
// native call and returns the outgoing stack space the call needs.
func ArgumentLocations(args []mach.Typ) ([]mach.Loc, int64) {
	return assignLocations(args, 0, lastIntArgReg, floatRegBase, lastFloatArgReg, mach.MakeOutgoing, 0)
}

// ParameterLocations is the callee's view of ArgumentLocations: the
// same assignment, with the overflow read from the incoming area.
func ParameterLocations(params []mach.Typ) []mach.Loc {
	locs, _ := assignLocations(params, 0, lastIntArgReg, floatRegBase, lastFloatArgReg, mach.MakeIncoming, 0)
	return locs
}

// ResultLocations assigns locations for a function's results. A
// signature whose results overflow the registers cannot be compiled.
func ResultLocations(res []mach.Typ) []mach.Loc {
	locs, _ := assignLocations(res, 0, lastIntArgReg, floatRegBase, lastFloatArgReg, mach.MakeStackNotSupported, 0)
	return locs
}

// ExternalArgumentLocations assigns locations for a call to an
// external C function and returns the full outgoing stack space
// including the reserved area. Each element of args is one C argument
// flattened to machine types; on this target a C argument must occupy
// exactly one machine word.
func ExternalArgumentLocations(args [][]mach.Typ) ([][]mach.Loc, int64) {
	flat := make([]mach.Typ, len(args))
	for i, arg := range args {
		if len(arg) != 1 {
			panic(fmt.Sprintf("external argument %d occupies %d machine words", i, len(arg)))
		}
		flat[i] = arg[0]
	}
	locs, size := assignLocations(flat, 0, lastIntArgReg, floatRegBase, lastFloatArgReg, mach.MakeOutgoing, ExternalReservedAreaSize)
	grouped := make([][]mach.Loc, len(locs))
	for i, loc := range locs {
		grouped[i] = []mach.Loc{loc}
	}
	return grouped, size
}

// ExternalResultLocations assigns locations for an external call's
// results: %r2 or %f0, at most one of each.
func ExternalResultLocations(res []mach.Typ) []mach.Loc {
	locs, _ := assignLocations(res, 0, 0, floatRegBase, floatRegBase, mach.MakeStackNotSupported, 0)
	return locs
}

// ExceptionBucketReg holds a raised exception value: %r2.
var ExceptionBucketReg = PhysReg(0)

// alignUp rounds n up to the nearest multiple of align
func alignUp(n, align int64) int64 {
	if align == 0 {
		return n
	}
	return ((n + align - 1) / align) * align
}
