// SPDX-License-Identifier: MIT

package normalize

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned by ParseMethod and Apply for a method that is
// neither CPM nor Log2CPM.
var ErrUnknownMethod = errors.New("normalize: unknown method")

// normalizeErrorf wraps an underlying error with the given operation tag.
func normalizeErrorf(op string, err error) error {
	return fmt.Errorf("normalize.%s: %w", op, err)
}
