package response

import (
	"github.com/jinzhu/copier"
)

// copyInto maps a read model onto a response type by field name.
// Both sides are owned by this module, so a failure is a programming error.
func copyInto[T any](from any) T {
	var to T
	if err := copier.Copy(&to, from); err != nil {
		panic("response mapping failed: " + err.Error())
	}
	return to
}
