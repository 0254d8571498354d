package s390x

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/quillc/quill/pkg/config"
	"github.com/quillc/quill/pkg/mach"
)

// OperationSupported reports whether the instruction selector may use
// an operation on this target. The bit counting instructions arrived
// with later machine generations than the baseline we emit for, and
// there is no useful prefetch, so those lower through runtime calls
// instead.
func OperationSupported(op mach.Operation) bool {
	switch op.(type) {
	case mach.Oclz, mach.Octz, mach.Opopcnt, mach.Oprefetch:
		return false
	case mach.Omove, mach.Ointconst, mach.Ofloatconst, mach.Osymbolconst,
		mach.Oadd, mach.Osub, mach.Omul, mach.Omulh, mach.Odiv, mach.Omod,
		mach.Oand, mach.Oor, mach.Oxor, mach.Olsl, mach.Olsr, mach.Oasr,
		mach.Ocomp, mach.Oaddv, mach.Oadda, mach.Ocmpa,
		mach.Onegf, mach.Oabsf, mach.Oaddf, mach.Osubf, mach.Omulf, mach.Odivf,
		mach.Ofloatofint, mach.Ointoffloat, mach.Ocmpf,
		mach.Omuladdf, mach.Omulsubf, mach.Ocheckbound:
		return true
	}
	panic(fmt.Sprintf("unhandled operation: %T", op))
}

// assembleArgs builds the assembler's argument list: configured flags,
// then path rewrites, then the files.
func assembleArgs(cfg *config.Config, infile, outfile string) []string {
	args := append([]string{}, cfg.AsmFlags...)
	args = append(args, cfg.DebugPrefixMapFlags()...)
	args = append(args, "-o", outfile, infile)
	return args
}

// Assemble runs the configured assembler over infile, producing the
// object file outfile. The assembler's stderr comes back in the error.
func Assemble(cfg *config.Config, infile, outfile string) error {
	if cfg == nil {
		cfg = config.Default()
	}

	cmd := exec.Command(cfg.Asm, assembleArgs(cfg, infile, outfile)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("assembling %s failed: %v\n%s", infile, err, stderr.String())
	}
	return nil
}
