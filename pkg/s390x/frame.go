package s390x

import "github.com/quillc/quill/pkg/mach"

// FrameRequired reports whether a function needs a stack frame: any
// function that contains calls or spills to the stack does. Leaf
// functions that fit entirely in registers run frameless.
func FrameRequired(f *mach.Function) bool {
	if f.ContainsCalls {
		return true
	}
	for _, n := range f.NumStackSlots {
		if n > 0 {
			return true
		}
	}
	return false
}

// PrologueRequired reports whether a function needs a prologue. Today
// that is exactly FrameRequired, but callers must ask the right
// question: shrink-wrapping moves prologues without changing whether
// a frame exists.
func PrologueRequired(f *mach.Function) bool {
	return FrameRequired(f)
}
