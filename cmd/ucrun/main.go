package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	unicorn "github.com/loqix/unicorn-net"
	"github.com/loqix/unicorn-net/emulator"
)

var (
	archName   string
	base       uint64
	memSize    uint64
	until      uint64
	trace      bool
	traceBegin uint64
	traceEnd   uint64
)

var rootCmd = &cobra.Command{
	Use:   "ucrun <binary>",
	Short: "Run a flat binary under the engine with memory-access tracing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arch, err := parseArch(archName)
		if err != nil {
			return err
		}
		code, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return run(cmd, arch, code)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&archName, "arch", "a", "x86", "guest architecture (arm, arm64, x86, x86_64)")
	rootCmd.Flags().Uint64VarP(&base, "base", "b", 0x1000000, "load address")
	rootCmd.Flags().Uint64VarP(&memSize, "size", "s", 2*1024*1024, "mapped memory size")
	rootCmd.Flags().Uint64VarP(&until, "until", "u", 0, "stop address (default: end of code)")
	rootCmd.Flags().BoolVarP(&trace, "trace", "t", false, "trace every memory access")
	rootCmd.Flags().Uint64Var(&traceBegin, "trace-begin", emulator.HOOK_RANGE_ALL_BEGIN, "first address traced")
	rootCmd.Flags().Uint64Var(&traceEnd, "trace-end", emulator.HOOK_RANGE_ALL_END, "last address traced")
}

func parseArch(name string) (emulator.Arch, error) {
	for _, arch := range []emulator.Arch{emulator.ARCH_ARM, emulator.ARCH_ARM64, emulator.ARCH_X86, emulator.ARCH_X86_64} {
		if arch.String() == name {
			return arch, nil
		}
	}
	return emulator.ARCH_UNKNOWN, fmt.Errorf("unknown architecture %q", name)
}

func run(cmd *cobra.Command, arch emulator.Arch, code []byte) error {
	emu, err := unicorn.New(arch)
	if err != nil {
		return err
	}
	defer emu.Close()
	size := memSize
	if rem := size % emu.PageSize(); rem != 0 {
		size += emu.PageSize() - rem
	}
	if err := emu.MemMap(base, size, emulator.MEM_PROT_ALL); err != nil {
		return err
	}
	if err := emu.MemWrite(base, code); err != nil {
		return err
	}

	hooks := emulator.MemoryHooks(emu)
	if trace {
		hook, err := hooks.AddRange(emulator.HOOK_TYPE_MEM_ALL, func(access emulator.MemAccess, addr, size, value uint64, data any) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %016x size=%d value=%x\n", access, addr, size, value)
		}, nil, traceBegin, traceEnd)
		if err != nil {
			return err
		}
		defer hook.Close()
	}
	hook, err := hooks.AddEvent(emulator.HOOK_TYPE_MEM_INVALID, func(access emulator.MemAccess, addr, size, value uint64, data any) bool {
		fmt.Fprintf(cmd.ErrOrStderr(), "fault: %s at %016x size=%d value=%x\n", access, addr, size, value)
		return false
	}, nil)
	if err != nil {
		return err
	}
	defer hook.Close()

	stop := until
	if stop == 0 {
		stop = base + uint64(len(code))
	}
	runErr := emu.Start(base, stop)
	dumpRegs(cmd, emu)
	return runErr
}

func dumpRegs(cmd *cobra.Command, emu emulator.Emulator) {
	var regs []emulator.Reg
	var names []string
	switch emu.Arch() {
	case emulator.ARCH_ARM:
		regs = []emulator.Reg{emulator.REG_ARM_R0, emulator.REG_ARM_R1, emulator.REG_ARM_SP, emulator.REG_ARM_PC}
		names = []string{"r0", "r1", "sp", "pc"}
	case emulator.ARCH_ARM64:
		regs = []emulator.Reg{emulator.REG_ARM64_X0, emulator.REG_ARM64_X1, emulator.REG_ARM64_SP, emulator.REG_ARM64_PC}
		names = []string{"x0", "x1", "sp", "pc"}
	case emulator.ARCH_X86:
		regs = []emulator.Reg{emulator.REG_X86_EAX, emulator.REG_X86_ECX, emulator.REG_X86_EDX, emulator.REG_X86_ESP, emulator.REG_X86_EIP}
		names = []string{"eax", "ecx", "edx", "esp", "eip"}
	case emulator.ARCH_X86_64:
		regs = []emulator.Reg{emulator.REG_X86_64_RAX, emulator.REG_X86_64_RCX, emulator.REG_X86_64_RDX, emulator.REG_X86_64_RSP, emulator.REG_X86_64_RIP}
		names = []string{"rax", "rcx", "rdx", "rsp", "rip"}
	}
	vals, err := emu.RegReadBatch(regs...)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "register read: %v\n", err)
		return
	}
	for i, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s %016x\n", name, vals[i])
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
