// internal/output/phylip.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"biogenesis-core/distance"
)

// WritePHYLIP writes m as a square PHYLIP distance matrix: the taxon count,
// then one row per taxon of label followed by its distances.
func WritePHYLIP(w io.Writer, m *distance.Matrix) error {
	if _, err := fmt.Fprintf(w, "%d\n", m.Len()); err != nil {
		return err
	}
	var sb strings.Builder
	for i, l := range m.Labels() {
		sb.Reset()
		sb.WriteString(l)
		for j := 0; j < m.Len(); j++ {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(m.At(i, j), 'f', 6, 64))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// ReadPHYLIP parses a square PHYLIP distance matrix. Labels are the first
// whitespace-separated field of each row; rows may wrap across lines.
// The result is validated like distance.FromRows.
func ReadPHYLIP(r io.Reader) (*distance.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("phylip: %w", err)
			}
			return "", fmt.Errorf("phylip: unexpected end of input reading %s", what)
		}
		return sc.Text(), nil
	}

	tok, err := next("taxon count")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("phylip: bad taxon count %q", tok)
	}
	// n comes from the file; storage grows with the tokens actually read.
	capHint := min(n, 1024)
	labels := make([]string, 0, capHint)
	rows := make([][]float64, 0, capHint)
	for i := 0; i < n; i++ {
		label, err := next("label")
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
		row := make([]float64, 0, capHint)
		for j := 0; j < n; j++ {
			tok, err := next(fmt.Sprintf("d[%d][%d]", i, j))
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("phylip: bad distance %q for %s", tok, label)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if sc.Scan() {
		return nil, fmt.Errorf("phylip: trailing input %q", sc.Text())
	}
	return distance.FromRows(rows, labels)
}
