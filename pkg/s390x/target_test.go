package s390x

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/quillc/quill/pkg/config"
	"github.com/quillc/quill/pkg/mach"
)

// Every operation, with whether this target can lower it.
var operationSupport = []struct {
	name string
	op   mach.Operation
	want bool
}{
	{"move", mach.Omove{}, true},
	{"intconst", mach.Ointconst{V: 1}, true},
	{"floatconst", mach.Ofloatconst{V: 1}, true},
	{"symbolconst", mach.Osymbolconst{Sym: "s"}, true},
	{"add", mach.Oadd{}, true},
	{"sub", mach.Osub{}, true},
	{"mul", mach.Omul{}, true},
	{"mulh", mach.Omulh{}, true},
	{"div", mach.Odiv{}, true},
	{"mod", mach.Omod{}, true},
	{"and", mach.Oand{}, true},
	{"or", mach.Oor{}, true},
	{"xor", mach.Oxor{}, true},
	{"lsl", mach.Olsl{}, true},
	{"lsr", mach.Olsr{}, true},
	{"asr", mach.Oasr{}, true},
	{"comp", mach.Ocomp{C: mach.Ceq}, true},
	{"addv", mach.Oaddv{}, true},
	{"adda", mach.Oadda{}, true},
	{"cmpa", mach.Ocmpa{C: mach.Ceq}, true},
	{"negf", mach.Onegf{}, true},
	{"absf", mach.Oabsf{}, true},
	{"addf", mach.Oaddf{}, true},
	{"subf", mach.Osubf{}, true},
	{"mulf", mach.Omulf{}, true},
	{"divf", mach.Odivf{}, true},
	{"floatofint", mach.Ofloatofint{}, true},
	{"intoffloat", mach.Ointoffloat{}, true},
	{"cmpf", mach.Ocmpf{C: mach.Ceq}, true},
	{"muladdf", mach.Omuladdf{}, true},
	{"mulsubf", mach.Omulsubf{}, true},
	{"checkbound", mach.Ocheckbound{}, true},
	{"clz", mach.Oclz{}, false},
	{"ctz", mach.Octz{}, false},
	{"popcnt", mach.Opopcnt{}, false},
	{"prefetch", mach.Oprefetch{}, false},
}

func TestOperationSupported(t *testing.T) {
	unsupported := 0
	for _, tt := range operationSupport {
		t.Run(tt.name, func(t *testing.T) {
			if got := OperationSupported(tt.op); got != tt.want {
				t.Errorf("OperationSupported(%T) = %v, want %v", tt.op, got, tt.want)
			}
		})
		if !tt.want {
			unsupported++
		}
	}
	if unsupported != 4 {
		t.Errorf("%d unsupported operations, want 4", unsupported)
	}
}

// unknownOp satisfies Operation through embedding but matches none of
// the known variants.
type unknownOp struct{ mach.Omove }

func TestOperationSupportedUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown operation did not panic")
		}
	}()
	OperationSupported(unknownOp{})
}

func TestAssembleArgs(t *testing.T) {
	t.Setenv("BUILD_PATH_PREFIX_MAP", "")
	cfg := &config.Config{
		Asm:            "as",
		AsmFlags:       []string{"-m", "64", "-march=z13"},
		DebugPrefixMap: []string{"/build/quill=/src"},
	}

	got := assembleArgs(cfg, "fib.s", "fib.o")
	want := []string{
		"-m", "64", "-march=z13",
		"--debug-prefix-map", "/build/quill=/src",
		"-o", "fib.o", "fib.s",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("assembleArgs = %v, want %v", got, want)
	}
}

func TestAssembleMissingAssembler(t *testing.T) {
	cfg := config.Default()
	cfg.Asm = filepath.Join(t.TempDir(), "no-such-as")

	err := Assemble(cfg, "fib.s", "fib.o")
	if err == nil {
		t.Fatal("Assemble with a missing assembler should fail")
	}
	if !strings.Contains(err.Error(), "assembling fib.s failed") {
		t.Errorf("error = %q, want mention of the input file", err)
	}
}

func TestAssembleReportsStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the assembler")
	}

	tmpDir := t.TempDir()
	script := filepath.Join(tmpDir, "fake-as")
	body := "#!/bin/sh\necho 'bad mnemonic' >&2\nexit 1\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Asm: script}
	err := Assemble(cfg, "fib.s", "fib.o")
	if err == nil {
		t.Fatal("Assemble should propagate the assembler's failure")
	}
	if !strings.Contains(err.Error(), "bad mnemonic") {
		t.Errorf("error = %q, want assembler stderr included", err)
	}
}

func TestAssembleSucceeds(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the assembler")
	}

	t.Setenv("BUILD_PATH_PREFIX_MAP", "")
	tmpDir := t.TempDir()
	script := filepath.Join(tmpDir, "fake-as")
	out := filepath.Join(tmpDir, "out.o")
	// Copies the input to the -o target like an assembler would.
	body := "#!/bin/sh\nwhile [ $# -gt 3 ]; do shift; done\ncp \"$3\" \"$2\"\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}
	in := filepath.Join(tmpDir, "in.s")
	if err := os.WriteFile(in, []byte("\t.text\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Asm: script}
	if err := Assemble(cfg, in, out); err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if string(data) != "\t.text\n" {
		t.Errorf("output = %q, want the assembled input", data)
	}
}
