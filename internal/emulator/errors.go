package emulator

/*
#include <unicorn/unicorn.h>
*/
import "C"

import "fmt"

// Error wraps a native engine failure code. Codes are surfaced unchanged;
// the message comes from the engine's own strerror.
type Error int

func errOf(code C.uc_err) error {
	if code == C.UC_ERR_OK {
		return nil
	}
	return Error(code)
}

func (e Error) Error() string {
	return fmt.Sprintf("uc: %s (%d)", C.GoString(C.uc_strerror(C.uc_err(e))), int(e))
}

func (e Error) Code() int {
	return int(e)
}
