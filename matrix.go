/* Copyright (C) 2021 The bwCorrelate Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package bwcorrelate

/* -------------------------------------------------------------------------- */

import "bufio"
import "bytes"
import "fmt"
import "io"
import "strconv"

import . "github.com/pbenner/gonetics"

import "gonum.org/v1/gonum/mat"

/* -------------------------------------------------------------------------- */

// ScoreMatrix holds the final files x retained-units matrix. Row i
// corresponds to Labels[i] and to the i-th input file, column j to
// Units row j.
type ScoreMatrix struct {
  Values *mat.Dense
  Units   GRanges
  Labels []string
}

/* -------------------------------------------------------------------------- */

// AssembleMatrix compresses the per-file score vectors from planned to
// retained units and stacks them into a matrix. Fewer than two retained
// units yield an InsufficientDataError, since downstream correlation is
// meaningless below that.
func AssembleMatrix(values [][]float64, keep []bool, units GRanges, labels []string) (ScoreMatrix, error) {
  m := len(values)
  n := units.Length()

  if len(labels) != m {
    return ScoreMatrix{}, ConfigurationError{fmt.Sprintf("number of labels (%d) does not match the number of score vectors (%d)", len(labels), m)}
  }
  if len(keep) != n {
    return ScoreMatrix{}, ConfigurationError{fmt.Sprintf("keep mask has length %d but there are %d units", len(keep), n)}
  }
  idx := []int{}
  for j := 0; j < n; j++ {
    if keep[j] {
      idx = append(idx, j)
    }
  }
  if len(idx) < 2 {
    return ScoreMatrix{}, InsufficientDataError{len(idx)}
  }
  data := make([]float64, m*len(idx))
  for i := 0; i < m; i++ {
    for j, k := range idx {
      data[i*len(idx)+j] = values[i][k]
    }
  }
  return ScoreMatrix{mat.NewDense(m, len(idx), data), units.Subset(idx), labels}, nil
}

/* -------------------------------------------------------------------------- */

// WriteTable writes the raw per-unit scores as a tab separated table
// with one row per retained unit and one column per file.
func (matrix ScoreMatrix) WriteTable(writer io.Writer) error {
  w := bufio.NewWriter(writer)

  fmt.Fprintf(w, "#chrom\tstart\tend")
  for _, label := range matrix.Labels {
    fmt.Fprintf(w, "\t%s", label)
  }
  fmt.Fprintf(w, "\n")

  for j := 0; j < matrix.Units.Length(); j++ {
    fmt.Fprintf(w, "%s\t%d\t%d",
      matrix.Units.Seqnames[j],
      matrix.Units.Ranges  [j].From,
      matrix.Units.Ranges  [j].To)
    for i := 0; i < len(matrix.Labels); i++ {
      fmt.Fprintf(w, "\t%s", strconv.FormatFloat(matrix.Values.At(i, j), 'f', -1, 64))
    }
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

func (matrix ScoreMatrix) ExportTable(filename string, compress bool) error {
  var buffer bytes.Buffer

  if err := matrix.WriteTable(&buffer); err != nil {
    return err
  }
  return writeFile(filename, &buffer, compress)
}
