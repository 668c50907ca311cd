package emulator

import "errors"

var (
	ErrArchUnsupported  = errors.New("architecture unsupported")
	ErrArchMismatch     = errors.New("architecture mismatch")
	ErrEmulatorClosed   = errors.New("emulator closed")
	ErrNilCallback      = errors.New("nil hook callback")
	ErrHookCallbackType = errors.New("hook callback type exception")
	ErrHookType         = errors.New("hook type out of range")
	ErrRegUnsupported   = errors.New("register unsupported")
)
