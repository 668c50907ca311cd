package emulator

// Reg names a guest register. The values are engine-neutral; the concrete
// binding maps them to the native engine's own register constants.
type Reg int

const (
	REG_INVALID Reg = iota

	REG_ARM_R0
	REG_ARM_R1
	REG_ARM_R2
	REG_ARM_R3
	REG_ARM_R4
	REG_ARM_R5
	REG_ARM_R6
	REG_ARM_R7
	REG_ARM_R8
	REG_ARM_R9
	REG_ARM_R10
	REG_ARM_R11
	REG_ARM_R12
	REG_ARM_SP
	REG_ARM_LR
	REG_ARM_PC
	REG_ARM_CPSR

	REG_ARM64_X0
	REG_ARM64_X1
	REG_ARM64_X2
	REG_ARM64_X3
	REG_ARM64_X4
	REG_ARM64_X5
	REG_ARM64_X6
	REG_ARM64_X7
	REG_ARM64_X8
	REG_ARM64_X9
	REG_ARM64_X10
	REG_ARM64_X11
	REG_ARM64_X12
	REG_ARM64_X13
	REG_ARM64_X14
	REG_ARM64_X15
	REG_ARM64_X16
	REG_ARM64_X17
	REG_ARM64_X18
	REG_ARM64_X19
	REG_ARM64_X20
	REG_ARM64_X21
	REG_ARM64_X22
	REG_ARM64_X23
	REG_ARM64_X24
	REG_ARM64_X25
	REG_ARM64_X26
	REG_ARM64_X27
	REG_ARM64_X28
	REG_ARM64_X29
	REG_ARM64_X30
	REG_ARM64_SP
	REG_ARM64_PC
	REG_ARM64_NZCV

	REG_X86_EAX
	REG_X86_EBX
	REG_X86_ECX
	REG_X86_EDX
	REG_X86_ESI
	REG_X86_EDI
	REG_X86_EBP
	REG_X86_ESP
	REG_X86_EIP
	REG_X86_EFLAGS

	REG_X86_64_RAX
	REG_X86_64_RBX
	REG_X86_64_RCX
	REG_X86_64_RDX
	REG_X86_64_RSI
	REG_X86_64_RDI
	REG_X86_64_RBP
	REG_X86_64_RSP
	REG_X86_64_RIP
	REG_X86_64_RFLAGS
	REG_X86_64_R8
	REG_X86_64_R9
	REG_X86_64_R10
	REG_X86_64_R11
	REG_X86_64_R12
	REG_X86_64_R13
	REG_X86_64_R14
	REG_X86_64_R15
)
