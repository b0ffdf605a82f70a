package sync

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/aisync/internal/model"
)

// DomainError reports the domain whose read or write failed and the domains
// that finished before it. Writes in completed domains are not rolled back.
type DomainError struct {
	Domain    model.Domain
	Completed []model.Domain
	Err       error
}

func (e *DomainError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("syncing %s: %v", e.Domain, e.Err)
	}
	done := make([]string, len(e.Completed))
	for i, d := range e.Completed {
		done[i] = string(d)
	}
	return fmt.Sprintf("syncing %s (completed: %s): %v", e.Domain, strings.Join(done, ", "), e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
