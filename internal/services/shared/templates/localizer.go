package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer resolves message keys for the active language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T localizes key, formatting args directly when loc is nil.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf(key, args...)
	}
	return loc.Sprintf(key, args...)
}
