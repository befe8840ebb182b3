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

import "fmt"
import "math"
import "reflect"
import "testing"

import . "github.com/pbenner/gonetics"

/* -------------------------------------------------------------------------- */

// synthetic signal file holding one value per base, math.NaN() marks
// positions without data
type testSignalFile struct {
  genome Genome
  data   map[string][]float64
}

func (file testSignalFile) Genome() Genome {
  return file.genome
}

func (file testSignalFile) Summarize(seqname string, from, to int) (Summary, error) {
  summary := NewSummary()
  values  := file.data[seqname]
  for i := from; i < to && i < len(values); i++ {
    if !math.IsNaN(values[i]) {
      summary.AddValue(values[i])
    }
  }
  return summary, nil
}

func (file testSignalFile) Close() error {
  return nil
}

/* -------------------------------------------------------------------------- */

func constantSignal(genome Genome, seqname string, value float64) testSignalFile {
  data := make(map[string][]float64)
  for i := 0; i < genome.Length(); i++ {
    values := make([]float64, genome.Lengths[i])
    for j := 0; j < len(values); j++ {
      if genome.Seqnames[i] == seqname {
        values[j] = value
      } else {
        values[j] = math.NaN()
      }
    }
    data[genome.Seqnames[i]] = values
  }
  return testSignalFile{genome, data}
}

func testOpener(files map[string]SignalFile) func(string) (SignalFile, error) {
  return func(filename string) (SignalFile, error) {
    if file, ok := files[filename]; ok {
      return file, nil
    }
    return nil, FileAccessError{filename, fmt.Errorf("no such file")}
  }
}

/* -------------------------------------------------------------------------- */

func TestScoreFiles1(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{30000})

  units, err := BinUnits(genome, 10000, 0, nil, GenomicRegion{})
  if err != nil {
    t.Error(err)
  }
  // both files have data on the first two units only
  data1 := make([]float64, 30000)
  data2 := make([]float64, 30000)
  for i := 0; i < 30000; i++ {
    data1[i] = math.NaN()
    data2[i] = math.NaN()
  }
  for i := 0; i < 20000; i++ {
    data1[i] = 2.0
    data2[i] = 4.0
  }
  files := map[string]SignalFile{
    "a.bw": testSignalFile{genome, map[string][]float64{"chr1": data1}},
    "b.bw": testSignalFile{genome, map[string][]float64{"chr1": data2}}}

  values, keep, err := ScoreFiles([]string{"a.bw", "b.bw"}, units, ScoreOptions{Open: testOpener(files)})
  if err != nil {
    t.Error(err)
  }
  if !reflect.DeepEqual(values[0], []float64{2, 2, 0}) {
    t.Error("TestScoreFiles1 failed!")
  }
  if !reflect.DeepEqual(values[1], []float64{4, 4, 0}) {
    t.Error("TestScoreFiles1 failed!")
  }
  // the third unit has no signal in either file
  if !reflect.DeepEqual(keep, []bool{true, true, false}) {
    t.Error("TestScoreFiles1 failed!")
  }
}

func TestScoreFiles2(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{30000})

  units, err := BinUnits(genome, 10000, 0, nil, GenomicRegion{})
  if err != nil {
    t.Error(err)
  }
  // one file with signal on a unit is sufficient to retain it
  data := make([]float64, 30000)
  for i := 0; i < len(data); i++ {
    data[i] = math.NaN()
  }
  for i := 10000; i < 20000; i++ {
    data[i] = 1.0
  }
  empty := constantSignal(genome, "", 0)
  files := map[string]SignalFile{
    "a.bw": empty,
    "b.bw": empty,
    "c.bw": testSignalFile{genome, map[string][]float64{"chr1": data}}}

  _, keep, err := ScoreFiles([]string{"a.bw", "b.bw", "c.bw"}, units, ScoreOptions{Open: testOpener(files)})
  if err != nil {
    t.Error(err)
  }
  if !reflect.DeepEqual(keep, []bool{false, true, false}) {
    t.Error("TestScoreFiles2 failed!")
  }
}

func TestScoreFilesDeterminism(t *testing.T) {

  genome := NewGenome([]string{"chr1", "chr2"}, []int{100000, 50000})

  units, err := BinUnits(genome, 1000, 0, nil, GenomicRegion{})
  if err != nil {
    t.Error(err)
  }
  data := make(map[string][]float64)
  for i := 0; i < genome.Length(); i++ {
    values := make([]float64, genome.Lengths[i])
    for j := 0; j < len(values); j++ {
      values[j] = float64(j % 17)
    }
    data[genome.Seqnames[i]] = values
  }
  files := map[string]SignalFile{
    "a.bw": testSignalFile{genome, data},
    "b.bw": constantSignal(genome, "chr2", 3.5)}

  filenames := []string{"a.bw", "b.bw"}

  values1, keep1, err := ScoreFiles(filenames, units, ScoreOptions{
    Threads: 1, ChunkSize: 7, Open: testOpener(files)})
  if err != nil {
    t.Error(err)
  }
  values4, keep4, err := ScoreFiles(filenames, units, ScoreOptions{
    Threads: 4, ChunkSize: 3, Open: testOpener(files)})
  if err != nil {
    t.Error(err)
  }
  if !reflect.DeepEqual(values1, values4) {
    t.Error("results depend on the number of threads")
  }
  if !reflect.DeepEqual(keep1, keep4) {
    t.Error("results depend on the number of threads")
  }
}

func TestScoreFilesMissingChromosome(t *testing.T) {

  genome1 := NewGenome([]string{"chr1", "chr2"}, []int{20000, 20000})
  genome2 := NewGenome([]string{"chr1"},         []int{20000})

  units, err := BinUnits(genome1, 10000, 0, nil, GenomicRegion{})
  if err != nil {
    t.Error(err)
  }
  files := map[string]SignalFile{
    "a.bw": constantSignal(genome1, "chr2", 2.0),
    "b.bw": constantSignal(genome2, "chr1", 1.0)}

  // chr2 is missing from b.bw, which must not abort the run
  values, keep, err := ScoreFiles([]string{"a.bw", "b.bw"}, units, ScoreOptions{
    Threads: 2, Open: testOpener(files)})
  if err != nil {
    t.Error(err)
  }
  if !reflect.DeepEqual(values[0], []float64{0, 0, 2, 2}) {
    t.Error("TestScoreFilesMissingChromosome failed!")
  }
  if !reflect.DeepEqual(values[1], []float64{1, 1, 0, 0}) {
    t.Error("TestScoreFilesMissingChromosome failed!")
  }
  if !reflect.DeepEqual(keep, []bool{true, true, true, true}) {
    t.Error("TestScoreFilesMissingChromosome failed!")
  }
}

func TestScoreFilesOpenError(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{30000})

  units, err := BinUnits(genome, 10000, 0, nil, GenomicRegion{})
  if err != nil {
    t.Error(err)
  }
  files := map[string]SignalFile{
    "a.bw": constantSignal(genome, "chr1", 1.0)}

  // a single unreadable file must fail the whole run
  _, _, err = ScoreFiles([]string{"a.bw", "missing.bw"}, units, ScoreOptions{
    Threads: 2, Open: testOpener(files)})
  if err == nil {
    t.Error("TestScoreFilesOpenError failed!")
  } else
  if _, ok := err.(FileAccessError); !ok {
    t.Error("TestScoreFilesOpenError failed!")
  }
}
