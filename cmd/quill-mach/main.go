package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quillc/quill/pkg/config"
	"github.com/quillc/quill/pkg/mach"
	"github.com/quillc/quill/pkg/s390x"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Debug flags for dumping parts of the machine description
var (
	dRegs     bool
	dClobbers bool
	dConv     sigFlag
	dCconv    sigFlag
)

// Assembler options
var (
	outputFile string
	configFile string
	asmCmd     string
)

// sigFlag is a pflag.Value holding a function signature written as
// "int,float->float": argument types before the arrow, result types
// after, either side possibly empty.
type sigFlag struct {
	sig mach.Sig
	set bool
}

func (f *sigFlag) String() string {
	if !f.set {
		return ""
	}
	return formatTypList(f.sig.Args) + "->" + formatTypList(f.sig.Res)
}

func (f *sigFlag) Set(s string) error {
	sig, err := parseSig(s)
	if err != nil {
		return err
	}
	f.sig = sig
	f.set = true
	return nil
}

func (f *sigFlag) Type() string {
	return "sig"
}

func parseSig(s string) (mach.Sig, error) {
	before, after, found := strings.Cut(s, "->")
	if !found {
		return mach.Sig{}, fmt.Errorf("signature %q needs -> between arguments and results", s)
	}
	args, err := parseTypList(before)
	if err != nil {
		return mach.Sig{}, err
	}
	res, err := parseTypList(after)
	if err != nil {
		return mach.Sig{}, err
	}
	return mach.Sig{Args: args, Res: res}, nil
}

func parseTypList(s string) ([]mach.Typ, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var types []mach.Typ
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "val":
			types = append(types, mach.Tval)
		case "int":
			types = append(types, mach.Tint)
		case "addr":
			types = append(types, mach.Taddr)
		case "float":
			types = append(types, mach.Tfloat)
		default:
			return nil, fmt.Errorf("unknown type %q in signature", strings.TrimSpace(name))
		}
	}
	return types, nil
}

func formatTypList(types []mach.Typ) string {
	names := make([]string, len(types))
	for i, ty := range types {
		names[i] = ty.String()
	}
	return strings.Join(names, ",")
}

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Normalize single-dash flags like -dregs to --dregs for pflag compatibility
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists all debug flags that should accept single-dash style
var debugFlagNames = []string{"dregs", "dclobbers", "dconv", "dcconv"}

// normalizeFlags converts single-dash flags like -dregs to --dregs
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName || strings.HasPrefix(arg, "-"+flagName+"=") {
				result[i] = "-" + arg
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quill-mach [file.s]",
		Short: "quill-mach inspects the s390x machine description and drives the assembler",
		Long: `quill-mach exposes the s390x machine description used by the
compiler back end: the register catalog, the calling conventions and
the call clobber sets. Given an assembly file it runs the configured
system assembler to produce the object file.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dumped := false
			if dRegs {
				dumpRegisters(out)
				dumped = true
			}
			if dClobbers {
				dumpClobbers(out)
				dumped = true
			}
			if dConv.set {
				dumpConvention(out, dConv.sig)
				dumped = true
			}
			if dCconv.set {
				dumpExternalConvention(out, dCconv.sig)
				dumped = true
			}

			if len(args) == 0 {
				if !dumped {
					cmd.Help()
				}
				return nil
			}
			return doAssemble(args[0], out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Add debug flags
	rootCmd.Flags().BoolVarP(&dRegs, "dregs", "", false, "Dump the register catalog")
	rootCmd.Flags().BoolVarP(&dClobbers, "dclobbers", "", false, "Dump the call clobber sets")
	rootCmd.Flags().Var(&dConv, "dconv", "Dump call locations for a signature like int,float->float")
	rootCmd.Flags().Var(&dCconv, "dcconv", "Dump C call locations for a signature like int,float->float")

	// Add assembler flags
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Object file to write (default: input with .o)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Read toolchain configuration from a TOML file")
	rootCmd.Flags().StringVar(&asmCmd, "asm", "", "Assembler command, overriding the configuration")

	return rootCmd
}

// loadToolConfig builds the toolchain configuration from the --config
// file, if any, with --asm applied on top.
func loadToolConfig(errOut io.Writer) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(errOut, "quill-mach: %v\n", err)
			return nil, err
		}
		cfg = loaded
	}
	if asmCmd != "" {
		cfg.Asm = asmCmd
	}
	return cfg, nil
}

// dumpRegisters writes the register catalog: one line per register
// with its flat id, class and DWARF number.
func dumpRegisters(out io.Writer) {
	fmt.Fprintf(out, "%d registers, %d int and %d float available for allocation\n",
		len(s390x.AllPhysRegs),
		s390x.NumAvailableRegisters[s390x.ClassInt],
		s390x.NumAvailableRegisters[s390x.ClassFloat])
	for class := 0; class < s390x.NumRegisterClasses; class++ {
		dwarf := s390x.DwarfRegisterNumbers(class)
		base := s390x.FirstAvailableRegister[class]
		for i, n := range dwarf {
			reg := s390x.PhysReg(base + i)
			fmt.Fprintf(out, "%-5s id=%-3d class=%d dwarf=%d\n", reg.Name, reg.ID, class, n)
		}
	}
}

// dumpClobbers writes the registers destroyed by C calls and by
// exception raising.
func dumpClobbers(out io.Writer) {
	fmt.Fprintf(out, "destroyed at C call (%d): %s\n",
		len(s390x.DestroyedAtCCall), registerNames(s390x.DestroyedAtCCall))
	fmt.Fprintf(out, "destroyed at raise (%d): %s\n",
		len(s390x.DestroyedAtRaise), registerNames(s390x.DestroyedAtRaise))
}

func registerNames(regs []*mach.Register) string {
	names := make([]string, len(regs))
	for i, reg := range regs {
		names[i] = reg.Name
	}
	return strings.Join(names, " ")
}

// dumpConvention writes the argument and result locations a signature
// gets on a native call.
func dumpConvention(out io.Writer, sig mach.Sig) {
	locs, size := s390x.ArgumentLocations(sig.Args)
	fmt.Fprintf(out, "arguments (%d bytes of outgoing stack):\n", size)
	for i, loc := range locs {
		fmt.Fprintf(out, "  %d: %s %s\n", i, sig.Args[i], loc)
	}
	results := s390x.ResultLocations(sig.Res)
	fmt.Fprintln(out, "results:")
	for i, loc := range results {
		fmt.Fprintf(out, "  %d: %s %s\n", i, sig.Res[i], loc)
	}
}

// dumpExternalConvention writes the locations a signature gets on a
// call to an external C function.
func dumpExternalConvention(out io.Writer, sig mach.Sig) {
	args := make([][]mach.Typ, len(sig.Args))
	for i, ty := range sig.Args {
		args[i] = []mach.Typ{ty}
	}
	locs, size := s390x.ExternalArgumentLocations(args)
	fmt.Fprintf(out, "arguments (%d bytes of outgoing stack):\n", size)
	for i, group := range locs {
		fmt.Fprintf(out, "  %d: %s %s\n", i, sig.Args[i], group[0])
	}
	results := s390x.ExternalResultLocations(sig.Res)
	fmt.Fprintln(out, "results:")
	for i, loc := range results {
		fmt.Fprintf(out, "  %d: %s %s\n", i, sig.Res[i], loc)
	}
}

// doAssemble runs the configured assembler on filename
func doAssemble(filename string, out, errOut io.Writer) error {
	cfg, err := loadToolConfig(errOut)
	if err != nil {
		return err
	}

	outputFilename := outputFile
	if outputFilename == "" {
		outputFilename = objectOutputFilename(filename)
	}

	if err := s390x.Assemble(cfg, filename, outputFilename); err != nil {
		fmt.Fprintf(errOut, "quill-mach: %v\n", err)
		return err
	}
	return nil
}

// objectOutputFilename returns the object filename for an assembly input
// input.s -> input.o
func objectOutputFilename(filename string) string {
	ext := ".s"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".o"
	}
	return filename + ".o"
}
