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
import "io"
import "os"
import "strings"

import . "github.com/pbenner/gonetics"
import   "github.com/pbenner/gonetics/lib/seekinghttp"

/* -------------------------------------------------------------------------- */

// SignalFile gives access to one genome-wide signal file. The scoring
// engine has no knowledge of the underlying container format, any type
// that can report its chromosomes and summarize a half-open range
// satisfies the contract. Implementations are not required to be safe
// for concurrent use, every worker owns its handles exclusively.
type SignalFile interface {
  Genome   () Genome
  Summarize(seqname string, from, to int) (Summary, error)
  Close    () error
}

/* -------------------------------------------------------------------------- */

type bigWigSignalFile struct {
  reader *BigWigReader
  closer  io.Closer
}

// OpenSignalFile opens a bigWig file from a local path or a http/https
// URL. Remote files are accessed through range requests, no local copy
// is made.
func OpenSignalFile(filename string) (SignalFile, error) {
  var raw    io.ReadSeeker
  var closer io.Closer

  if isRemoteFile(filename) {
    if strings.HasPrefix(filename, "ftp://") {
      return nil, FileAccessError{filename, fmt.Errorf("ftp is not supported, use http or https")}
    }
    raw = seekinghttp.New(filename)
  } else {
    f, err := os.Open(filename)
    if err != nil {
      return nil, FileAccessError{filename, err}
    }
    raw    = f
    closer = f
  }
  reader, err := NewBigWigReader(raw)
  if err != nil {
    if closer != nil {
      closer.Close()
    }
    return nil, FileAccessError{filename, err}
  }
  return &bigWigSignalFile{reader, closer}, nil
}

func (file *bigWigSignalFile) Genome() Genome {
  return file.reader.Genome
}

func (file *bigWigSignalFile) Summarize(seqname string, from, to int) (Summary, error) {
  summary := NewSummary()
  if to <= from {
    return summary, nil
  }
  for record := range file.reader.Query(seqname, from, to, to-from) {
    if record.Error != nil {
      return summary, record.Error
    }
    if record.Valid > 0 {
      summary.Add(Summary{
        Valid     : record.Valid,
        Min       : record.Min,
        Max       : record.Max,
        Sum       : record.Sum,
        SumSquares: record.SumSquares })
    }
  }
  return summary, nil
}

func (file *bigWigSignalFile) Close() error {
  if file.closer != nil {
    return file.closer.Close()
  }
  return nil
}
