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

import "log"
import "sync/atomic"

import . "github.com/pbenner/gonetics"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type ScoreOptions struct {
  // number of parallel workers, capped by the amount of work
  Threads   int
  // number of units per work item, 0 selects a value that keeps all
  // workers busy while amortizing the per-job overhead
  ChunkSize int
  // statistic mapping the signal of a unit to its score [SummaryMean]
  Statistic SummaryStatistic
  // called after each completed (file, chunk) pair
  Progress  func(completed, total int)
  // opens a signal file [OpenSignalFile]; tests use this seam to
  // substitute synthetic signals
  Open      func(filename string) (SignalFile, error)
  // receives warnings about units or chromosomes without signal
  Logger    *log.Logger
}

/* -------------------------------------------------------------------------- */

type unitChunk struct {
  from, to int
}

func planChunks(n, chunkSize int) []unitChunk {
  chunks := []unitChunk{}
  for p := 0; p < n; p += chunkSize {
    chunks = append(chunks, unitChunk{p, iMin(p+chunkSize, n)})
  }
  return chunks
}

/* -------------------------------------------------------------------------- */

// ScoreFiles computes one score vector per file over the given units,
// distributing (file, chunk) pairs across a bounded worker pool. Every
// worker keeps its own signal file handles, results are written to
// disjoint slices of preallocated per-file vectors, so the merged
// vectors preserve unit order regardless of scheduling. The returned
// mask marks units where at least one file has a non-zero score. If any
// file fails the whole run fails, outstanding work is dropped.
func ScoreFiles(filenames []string, units GRanges, options ScoreOptions) ([][]float64, []bool, error) {
  n := units.Length()
  m := len(filenames)

  if m == 0 {
    return nil, nil, ConfigurationError{"no signal files given"}
  }
  statistic := options.Statistic
  if statistic == nil {
    statistic = SummaryMean
  }
  open := options.Open
  if open == nil {
    open = OpenSignalFile
  }
  threads := iMax(options.Threads, 1)

  chunkSize := options.ChunkSize
  if chunkSize <= 0 {
    chunkSize = iMax(divIntUp(n, 8*threads), 1)
  }
  chunks := planChunks(n, chunkSize)
  // do not spawn more workers than there are work items
  threads = iMax(iMin(threads, m*len(chunks)), 1)

  values := make([][]float64, m)
  for i := 0; i < m; i++ {
    values[i] = make([]float64, n)
  }

  pool := threadpool.New(threads, 100*threads)
  g    := pool.NewJobGroup()

  // one handle per (worker, file) pair, no handle is ever shared
  readers := make([]map[string]SignalFile, pool.NumberOfThreads())
  for i := 0; i < pool.NumberOfThreads(); i++ {
    readers[i] = make(map[string]SignalFile)
  }
  defer func() {
    for i := 0; i < len(readers); i++ {
      for _, file := range readers[i] {
        file.Close()
      }
    }
  }()

  missing := make([]int64, m)
  done    := int64(0)
  total   := m*len(chunks)

  for i_ := 0; i_ < m; i_++ {
    for j_ := 0; j_ < len(chunks); j_++ {
      i := i_
      j := j_
      pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
        // another job failed already, drop the remaining work
        if erf() != nil {
          return nil
        }
        file, ok := readers[pool.GetThreadId()][filenames[i]]
        if !ok {
          f, err := open(filenames[i])
          if err != nil {
            return err
          }
          readers[pool.GetThreadId()][filenames[i]] = f
          file = f
        }
        if k, err := scoreUnits(file, units, chunks[j].from, chunks[j].to, statistic, values[i]); err != nil {
          if _, ok := err.(FileAccessError); ok {
            return err
          }
          return FileAccessError{filenames[i], err}
        } else {
          atomic.AddInt64(&missing[i], int64(k))
        }
        if options.Progress != nil {
          options.Progress(int(atomic.AddInt64(&done, 1)), total)
        }
        return nil
      })
    }
  }
  if err := pool.Wait(g); err != nil {
    return nil, nil, err
  }
  if options.Logger != nil {
    for i := 0; i < m; i++ {
      if missing[i] > 0 {
        options.Logger.Printf("%s: %d of %d units have no signal", filenames[i], missing[i], n)
      }
    }
  }
  keep := make([]bool, n)
  for j := 0; j < n; j++ {
    for i := 0; i < m; i++ {
      if values[i][j] != 0 {
        keep[j] = true
        break
      }
    }
  }
  return values, keep, nil
}
