package recovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taurusgroup/share-recovery/pkg/share"
)

var ErrInconsistentShare = errors.New("recovery: share does not lie on the interpolated polynomial")

// InconsistentError lists the shares beyond the threshold that disagree with the
// polynomial interpolated from the first k shares.
type InconsistentError struct {
	Indices share.IndexSlice
}

func (e *InconsistentError) Error() string {
	ids := make([]string, len(e.Indices))
	for i, idx := range e.Indices {
		ids[i] = idx.String()
	}
	return fmt.Sprintf("%s: %s", ErrInconsistentShare, strings.Join(ids, ", "))
}

// Is makes errors.Is(err, ErrInconsistentShare) hold for every InconsistentError.
func (e *InconsistentError) Is(target error) bool {
	return target == ErrInconsistentShare
}
