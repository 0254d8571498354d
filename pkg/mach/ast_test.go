package mach

import "testing"

func TestLabelValid(t *testing.T) {
	tests := []struct {
		label Label
		want  bool
	}{
		{Label(0), false},
		{Label(1), true},
		{Label(100), true},
		{Label(-1), false},
	}
	for _, tt := range tests {
		if got := tt.label.Valid(); got != tt.want {
			t.Errorf("Label(%d).Valid() = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestInstructionTypes(t *testing.T) {
	// Verify all instruction types implement the Instruction interface
	var _ Instruction = Mop{}
	var _ Instruction = Mload{}
	var _ Instruction = Mstore{}
	var _ Instruction = Mcall{}
	var _ Instruction = Mtailcall{}
	var _ Instruction = Mextcall{}
	var _ Instruction = Mstackoffset{}
	var _ Instruction = Malloc{}
	var _ Instruction = Mraise{}
	var _ Instruction = Mprobe{}
	var _ Instruction = Mlabel{}
	var _ Instruction = Mgoto{}
	var _ Instruction = Mcond{}
	var _ Instruction = Mreturn{}
}

func TestFunRefTypes(t *testing.T) {
	// Verify FunRef implementations
	var _ FunRef = FunReg{}
	var _ FunRef = FunSymbol{}
}

func TestMop(t *testing.T) {
	inst := Mop{
		Op:   Oadd{},
		Args: []Reg{1, 2},
		Dest: 3,
	}
	if _, ok := inst.Op.(Oadd); !ok {
		t.Errorf("Mop.Op is not Oadd")
	}
	if len(inst.Args) != 2 {
		t.Errorf("Mop.Args length = %d, want 2", len(inst.Args))
	}
}

func TestMload(t *testing.T) {
	inst := Mload{
		Chunk: Mint64,
		Addr:  Aindexed{Ofs: 8},
		Args:  []Reg{1},
		Dest:  2,
	}
	if inst.Chunk != Mint64 {
		t.Errorf("Mload.Chunk = %v, want Mint64", inst.Chunk)
	}
	if a, ok := inst.Addr.(Aindexed); !ok || a.Ofs != 8 {
		t.Errorf("Mload.Addr = %v, want Aindexed{8}", inst.Addr)
	}
}

func TestMcall(t *testing.T) {
	inst := Mcall{
		Sig: Sig{},
		Fn:  FunSymbol{Name: "foo"},
	}
	if sym, ok := inst.Fn.(FunSymbol); !ok || sym.Name != "foo" {
		t.Errorf("Mcall.Fn = %v, want FunSymbol{foo}", inst.Fn)
	}
}

func TestMcallReg(t *testing.T) {
	inst := Mcall{
		Sig: Sig{},
		Fn:  FunReg{Reg: 8},
	}
	if reg, ok := inst.Fn.(FunReg); !ok || reg.Reg != 8 {
		t.Errorf("Mcall.Fn = %v, want FunReg{8}", inst.Fn)
	}
}

func TestMextcall(t *testing.T) {
	inst := Mextcall{
		Fn:    "quill_sqrt",
		Sig:   Sig{Args: []Typ{Tfloat}, Res: []Typ{Tfloat}},
		Alloc: false,
		Args:  []Reg{1},
		Dest:  2,
	}
	if inst.Fn != "quill_sqrt" {
		t.Errorf("Mextcall.Fn = %s, want quill_sqrt", inst.Fn)
	}
	if inst.Alloc {
		t.Error("Mextcall.Alloc should be false")
	}
}

func TestAddressingModeTypes(t *testing.T) {
	var _ AddressingMode = Abased{}
	var _ AddressingMode = Aindexed{}
	var _ AddressingMode = Aindexed2{}
}

func TestTypString(t *testing.T) {
	tests := []struct {
		ty   Typ
		want string
	}{
		{Tval, "val"},
		{Tint, "int"},
		{Taddr, "addr"},
		{Tfloat, "float"},
	}
	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.want {
			t.Errorf("Typ.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewFunction(t *testing.T) {
	fn := NewFunction("test_func", Sig{}, 2)
	if fn.Name != "test_func" {
		t.Errorf("Function.Name = %s, want test_func", fn.Name)
	}
	if fn.Code == nil {
		t.Error("Function.Code is nil")
	}
	if len(fn.NumStackSlots) != 2 {
		t.Errorf("len(NumStackSlots) = %d, want 2", len(fn.NumStackSlots))
	}
	if fn.ContainsCalls {
		t.Error("new function should not contain calls")
	}
}

func TestFunctionAppend(t *testing.T) {
	fn := NewFunction("test", Sig{}, 2)
	fn.Append(Mlabel{Lbl: Label(1)})
	fn.Append(Mop{Op: Oadd{}, Args: []Reg{1, 2}, Dest: 3})
	fn.Append(Mreturn{})

	if len(fn.Code) != 3 {
		t.Errorf("len(fn.Code) = %d, want 3", len(fn.Code))
	}
	if fn.ContainsCalls {
		t.Error("straight-line code should not contain calls")
	}
}

func TestFunctionAppendTracksCalls(t *testing.T) {
	tests := []struct {
		name string
		inst Instruction
		want bool
	}{
		{"op", Mop{Op: Omove{}}, false},
		{"tailcall", Mtailcall{Fn: FunSymbol{Name: "f"}}, false},
		{"call", Mcall{Fn: FunSymbol{Name: "f"}}, true},
		{"extcall noalloc", Mextcall{Fn: "quill_hash"}, true},
		{"extcall alloc", Mextcall{Fn: "quill_make_array", Alloc: true}, true},
		{"alloc", Malloc{Bytes: 24, Dest: 1}, true},
		{"raise", Mraise{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := NewFunction("test", Sig{}, 2)
			fn.Append(tt.inst)
			if fn.ContainsCalls != tt.want {
				t.Errorf("ContainsCalls = %v, want %v", fn.ContainsCalls, tt.want)
			}
		})
	}
}
