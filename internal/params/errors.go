package params

import (
	"fmt"
	"strings"
)

// ValidationError reports parameters that are missing or outside their
// physically valid range. It is raised before any geometry is built;
// a request that fails validation produces nothing partial.
type ValidationError struct {
	// Params lists the offending parameter names in the order the
	// checks ran, without duplicates.
	Params []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid bridge parameters: %s", strings.Join(e.Params, ", "))
}

// Has reports whether the named parameter is among the offenders.
func (e *ValidationError) Has(name string) bool {
	for _, p := range e.Params {
		if p == name {
			return true
		}
	}
	return false
}
