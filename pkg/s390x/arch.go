// Package s390x is the machine description for the IBM Z (64-bit
// z/Architecture, Linux ELF ABI) target: register catalog, calling
// conventions, clobber sets, frame policy, and the glue that drives
// the system assembler. Everything the register allocator, spiller,
// and emitter need to know about the target lives here; they consult
// this package and contain no z/Architecture knowledge of their own.
package s390x

// Machine parameters.
const (
	// BigEndian: z/Architecture is big-endian.
	BigEndian = true

	// WordSize is the size in bytes of an integer or pointer.
	WordSize = 8
	// AddrSize is the size in bytes of an out-of-heap address.
	AddrSize = 8
	// FloatSize is the size in bytes of a float.
	FloatSize = 8

	// AllowUnalignedAccess: unaligned loads and stores trap on some
	// models, so the emitter never produces them.
	AllowUnalignedAccess = false

	// DivisionCrashesOnOverflow: dividing the most negative integer
	// by -1 traps, so division is guarded when the divisor is not a
	// known-safe constant.
	DivisionCrashesOnOverflow = true

	// MaxArgumentsForTailcalls bounds the arguments a call may have
	// and still be turned into a tail call: exactly the integer
	// argument registers, so tail calls never touch the stack.
	MaxArgumentsForTailcalls = 5
)
