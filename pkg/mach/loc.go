package mach

import "fmt"

// Loc is a location assigned to a value: a hard register or a stack
// slot. The calling-convention and spilling code deal in Locs.
type Loc interface {
	implLoc()
}

// R is a location in a hard register
type R struct {
	Reg *Register
}

// S is a location in a stack slot
type S struct {
	Slot SlotKind // which stack area the slot lives in
	Ofs  int64    // byte offset within the area
	Ty   Typ      // type of the value stored there
}

func (R) implLoc() {}
func (S) implLoc() {}

func (l R) String() string { return l.Reg.Name }

func (l S) String() string { return fmt.Sprintf("%s+%d", l.Slot, l.Ofs) }

// SlotKind identifies a stack area. Offsets are relative to the start
// of the area; the frame layout decides where each area sits.
type SlotKind int

const (
	// SlotLocal is the function's own spill area.
	SlotLocal SlotKind = iota
	// SlotIncoming is the caller-written parameter area, read-only to
	// the callee.
	SlotIncoming
	// SlotOutgoing is the outgoing argument area at the bottom of the
	// frame, clobbered by any call.
	SlotOutgoing
)

func (k SlotKind) String() string {
	switch k {
	case SlotLocal:
		return "local"
	case SlotIncoming:
		return "incoming"
	case SlotOutgoing:
		return "outgoing"
	}
	return fmt.Sprintf("SlotKind(%d)", int(k))
}

// StackBuilder makes the stack location for a value that did not fit
// in registers. Each calling-convention shape picks the builder for
// the area its overflow belongs to.
type StackBuilder func(ofs int64, ty Typ) Loc

// MakeIncoming builds a slot in the incoming parameter area.
func MakeIncoming(ofs int64, ty Typ) Loc {
	return S{Slot: SlotIncoming, Ofs: ofs, Ty: ty}
}

// MakeOutgoing builds a slot in the outgoing argument area.
func MakeOutgoing(ofs int64, ty Typ) Loc {
	return S{Slot: SlotOutgoing, Ofs: ofs, Ty: ty}
}

// MakeStackNotSupported reports a calling-convention shape that must
// never overflow to the stack. Reaching it means the compiler produced
// a signature the target cannot represent.
func MakeStackNotSupported(ofs int64, ty Typ) Loc {
	panic(fmt.Sprintf("location %d of type %s cannot be on the stack here", ofs, ty))
}
