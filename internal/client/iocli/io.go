// Package iocli abstracts terminal input/output so commands can be tested
// with a scripted fake.
package iocli

// IO is the terminal surface the commands talk to
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
}
