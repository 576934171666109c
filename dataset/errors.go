// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSignal reports input/target buffers that fail shape or
	// length-equality checks at construction.
	ErrInvalidSignal = errors.New("invalid signal pair")

	// ErrInvalidConfig reports window geometry or trim parameters that are
	// inconsistent with the signal lengths.
	ErrInvalidConfig = errors.New("invalid dataset configuration")

	// ErrIndexOutOfRange reports an example index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError is returned by At when the requested example index is outside
// the dataset. It carries the offending index and the dataset length.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("attempted to access datum %d, but len is %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
