package outcome

import "github.com/ib-77/outcome/pkg/outcome/kind"

// Kinded is the enrichment capability a success value may implement to
// report a more specific kind than plain Success, e.g. Created after an
// insert or Unchanged after an idempotent update. Absence implies Success.
type Kinded interface {
	OutcomeKind() kind.Kind
}
