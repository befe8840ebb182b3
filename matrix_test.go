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

import "bytes"
import "testing"

import . "github.com/pbenner/gonetics"

/* -------------------------------------------------------------------------- */

func TestAssembleMatrix1(t *testing.T) {

  units := NewGRanges(
    []string{"chr1", "chr1", "chr1"},
    []int   {    0, 10000, 20000},
    []int   {10000, 20000, 30000}, nil)

  values := [][]float64{
    {1, 0, 3},
    {0, 0, 4}}
  keep := []bool{true, false, true}

  matrix, err := AssembleMatrix(values, keep, units, []string{"a", "b"})
  if err != nil {
    t.Error(err)
  }
  if r, c := matrix.Values.Dims(); r != 2 || c != 2 {
    t.Error("TestAssembleMatrix1 failed!")
  }
  if matrix.Values.At(0, 0) != 1 || matrix.Values.At(0, 1) != 3 ||
     matrix.Values.At(1, 0) != 0 || matrix.Values.At(1, 1) != 4 {
    t.Error("TestAssembleMatrix1 failed!")
  }
  checkUnits(t, matrix.Units,
    []string{"chr1", "chr1"},
    []int   {    0, 20000},
    []int   {10000, 30000})
}

func TestAssembleMatrix2(t *testing.T) {

  units := NewGRanges(
    []string{"chr1"},
    []int   {  100},
    []int   {  200}, nil)

  values := [][]float64{{1}, {2}}
  keep   := []bool{true}

  // a single retained unit is not sufficient for any downstream analysis
  if _, err := AssembleMatrix(values, keep, units, []string{"a", "b"}); err == nil {
    t.Error("TestAssembleMatrix2 failed!")
  } else
  if e, ok := err.(InsufficientDataError); !ok || e.Retained != 1 {
    t.Error("TestAssembleMatrix2 failed!")
  }
}

func TestAssembleMatrix3(t *testing.T) {

  units := NewGRanges(
    []string{"chr1", "chr1"},
    []int   {    0,  100},
    []int   {  100,  200}, nil)

  values := [][]float64{
    {1, 2},
    {3, 4}}
  keep := []bool{true, true}

  if _, err := AssembleMatrix(values, keep, units, []string{"a"}); err == nil {
    t.Error("TestAssembleMatrix3 failed!")
  } else
  if _, ok := err.(ConfigurationError); !ok {
    t.Error("TestAssembleMatrix3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestWriteTable(t *testing.T) {

  units := NewGRanges(
    []string{"chr1", "chr2"},
    []int   {    0,  500},
    []int   {  100, 1000}, nil)

  values := [][]float64{
    {1.5, 2},
    {0,   4}}
  keep := []bool{true, true}

  matrix, err := AssembleMatrix(values, keep, units, []string{"a.bw", "b.bw"})
  if err != nil {
    t.Error(err)
  }
  buffer := bytes.Buffer{}
  if err := matrix.WriteTable(&buffer); err != nil {
    t.Error(err)
  }
  expected :=
    "#chrom\tstart\tend\ta.bw\tb.bw\n" +
    "chr1\t0\t100\t1.5\t0\n"           +
    "chr2\t500\t1000\t2\t4\n"
  if buffer.String() != expected {
    t.Errorf("expected table\n%sbut got\n%s", expected, buffer.String())
  }
}
