package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erp/backoffice/internal/domain/shared"
)

// NextCode derives the code following last in a prefix + zero-padded sequence.
// An empty last starts the sequence at 1. width is the number of digits after the prefix.
func NextCode(last, prefix string, width int) (string, error) {
	n := 0
	if last != "" {
		suffix, ok := strings.CutPrefix(last, prefix)
		if !ok || suffix == "" {
			return "", shared.NewInvalidSequenceStateError(last)
		}
		parsed, err := strconv.Atoi(suffix)
		if err != nil || parsed < 0 {
			return "", shared.NewInvalidSequenceStateError(last)
		}
		n = parsed
	}
	return fmt.Sprintf("%s%0*d", prefix, width, n+1), nil
}
