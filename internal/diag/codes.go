package diag

import "fmt"

// Code is the numeric diagnostic identifier. Codes are assigned by the type
// checker; suppression comments reference them (`pyre-fixme[7]`). This layer
// owns exactly one code of its own.
type Code uint16

// UnusedIgnore flags a suppression comment that suppressed nothing.
const UnusedIgnore Code = 0

func (c Code) String() string {
	return fmt.Sprintf("[%d]", uint16(c))
}

// Describe returns the stable human-readable name for codes this layer owns
// and a generic label for everything else.
func Describe(c Code) string {
	if c == UnusedIgnore {
		return "Unused ignore"
	}
	return "Type error"
}
