// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src into a single buffer. It reads until io.EOF and
// returns every sample produced, in stream order.
//
// For long material this holds the whole signal in memory, which is what
// dataset construction needs anyway.
func Collect(src Source, bufferSize int) ([]float64, error) {
	var out []float64
	buf := make([]float64, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}
