package emulator

/*
#include <unicorn/unicorn.h>
*/
import "C"

import "github.com/loqix/unicorn-net/emulator"

// nativeConst pins the exposed enumeration values to the engine header.
// The coupling is checked by tests instead of relying on transitive value
// equality.
var nativeConst = map[string][2]int64{
	"HOOK_TYPE_INTR":               {int64(emulator.HOOK_TYPE_INTR), C.UC_HOOK_INTR},
	"HOOK_TYPE_INSN":               {int64(emulator.HOOK_TYPE_INSN), C.UC_HOOK_INSN},
	"HOOK_TYPE_CODE":               {int64(emulator.HOOK_TYPE_CODE), C.UC_HOOK_CODE},
	"HOOK_TYPE_BLOCK":              {int64(emulator.HOOK_TYPE_BLOCK), C.UC_HOOK_BLOCK},
	"HOOK_TYPE_MEM_READ_UNMAPPED":  {int64(emulator.HOOK_TYPE_MEM_READ_UNMAPPED), C.UC_HOOK_MEM_READ_UNMAPPED},
	"HOOK_TYPE_MEM_WRITE_UNMAPPED": {int64(emulator.HOOK_TYPE_MEM_WRITE_UNMAPPED), C.UC_HOOK_MEM_WRITE_UNMAPPED},
	"HOOK_TYPE_MEM_FETCH_UNMAPPED": {int64(emulator.HOOK_TYPE_MEM_FETCH_UNMAPPED), C.UC_HOOK_MEM_FETCH_UNMAPPED},
	"HOOK_TYPE_MEM_READ_PROT":      {int64(emulator.HOOK_TYPE_MEM_READ_PROT), C.UC_HOOK_MEM_READ_PROT},
	"HOOK_TYPE_MEM_WRITE_PROT":     {int64(emulator.HOOK_TYPE_MEM_WRITE_PROT), C.UC_HOOK_MEM_WRITE_PROT},
	"HOOK_TYPE_MEM_FETCH_PROT":     {int64(emulator.HOOK_TYPE_MEM_FETCH_PROT), C.UC_HOOK_MEM_FETCH_PROT},
	"HOOK_TYPE_MEM_READ":           {int64(emulator.HOOK_TYPE_MEM_READ), C.UC_HOOK_MEM_READ},
	"HOOK_TYPE_MEM_WRITE":          {int64(emulator.HOOK_TYPE_MEM_WRITE), C.UC_HOOK_MEM_WRITE},
	"HOOK_TYPE_MEM_FETCH":          {int64(emulator.HOOK_TYPE_MEM_FETCH), C.UC_HOOK_MEM_FETCH},
	"HOOK_TYPE_MEM_READ_AFTER":     {int64(emulator.HOOK_TYPE_MEM_READ_AFTER), C.UC_HOOK_MEM_READ_AFTER},
	"HOOK_TYPE_INSN_INVALID":       {int64(emulator.HOOK_TYPE_INSN_INVALID), C.UC_HOOK_INSN_INVALID},

	"MEM_ACCESS_READ":           {int64(emulator.MEM_ACCESS_READ), C.UC_MEM_READ},
	"MEM_ACCESS_WRITE":          {int64(emulator.MEM_ACCESS_WRITE), C.UC_MEM_WRITE},
	"MEM_ACCESS_FETCH":          {int64(emulator.MEM_ACCESS_FETCH), C.UC_MEM_FETCH},
	"MEM_ACCESS_READ_UNMAPPED":  {int64(emulator.MEM_ACCESS_READ_UNMAPPED), C.UC_MEM_READ_UNMAPPED},
	"MEM_ACCESS_WRITE_UNMAPPED": {int64(emulator.MEM_ACCESS_WRITE_UNMAPPED), C.UC_MEM_WRITE_UNMAPPED},
	"MEM_ACCESS_FETCH_UNMAPPED": {int64(emulator.MEM_ACCESS_FETCH_UNMAPPED), C.UC_MEM_FETCH_UNMAPPED},
	"MEM_ACCESS_WRITE_PROT":     {int64(emulator.MEM_ACCESS_WRITE_PROT), C.UC_MEM_WRITE_PROT},
	"MEM_ACCESS_READ_PROT":      {int64(emulator.MEM_ACCESS_READ_PROT), C.UC_MEM_READ_PROT},
	"MEM_ACCESS_FETCH_PROT":     {int64(emulator.MEM_ACCESS_FETCH_PROT), C.UC_MEM_FETCH_PROT},
	"MEM_ACCESS_READ_AFTER":     {int64(emulator.MEM_ACCESS_READ_AFTER), C.UC_MEM_READ_AFTER},

	"MEM_PROT_NONE":  {int64(emulator.MEM_PROT_NONE), C.UC_PROT_NONE},
	"MEM_PROT_READ":  {int64(emulator.MEM_PROT_READ), C.UC_PROT_READ},
	"MEM_PROT_WRITE": {int64(emulator.MEM_PROT_WRITE), C.UC_PROT_WRITE},
	"MEM_PROT_EXEC":  {int64(emulator.MEM_PROT_EXEC), C.UC_PROT_EXEC},
	"MEM_PROT_ALL":   {int64(emulator.MEM_PROT_ALL), C.UC_PROT_ALL},
}
