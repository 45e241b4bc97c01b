package brainfuck

import (
	"github.com/slightlynybbled/brainfuck/bfi"
)

// Execute loads source on a fresh interpreter, evaluates it and returns the
// produced output. It is a stateless composition of bfi.New, Load and
// Evaluate; use those directly to reuse a loaded program or to catch
// bracket faults separately from runtime faults.
func Execute(source string, opts ...bfi.Option) (string, error) {
	mod, err := bfi.New(opts...).Load(source)
	if err != nil {
		return "", err
	}
	return mod.Evaluate()
}
