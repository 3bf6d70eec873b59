package random

import "io"

// SetDefaultReaderForTesting replaces the reader returned by Default.
// This is intended for testing only. Returns a function to restore the original reader.
// Since this package is internal, this function cannot be accessed by external code.
func SetDefaultReaderForTesting(r io.Reader) func() {
	original := defaultReader
	defaultReader = r
	return func() { defaultReader = original }
}
