// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtListing  = "Row %d, Column %d = %g\n"
)

// WriteTo writes the element listing of m, one "Row r, Column c = v" line per
// element in row-major order. It implements io.WriterTo.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			n, err := fmt.Fprintf(w, _fmtListing, i+1, j+1, m.data[i*m.c+j])
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}

	return total, nil
}

// String renders m as bracketed rows, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
