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

import . "github.com/pbenner/gonetics"

/* -------------------------------------------------------------------------- */

// scoreUnits computes the score of units [from, to) for a single file
// and writes the result to values[from:to]. A chromosome that is absent
// from this particular file is not an error, all of its units score
// zero. The number of units without any signal is returned so that the
// caller can report them.
func scoreUnits(file SignalFile, units GRanges, from, to int, statistic SummaryStatistic, values []float64) (int, error) {
  genome  := file.Genome()
  missing := 0

  for i := from; i < to; i++ {
    seqname := units.Seqnames[i]
    length, err := genome.SeqLength(seqname)
    if err != nil {
      values[i] = 0
      missing++
      continue
    }
    p := units.Ranges[i].From
    q := iMin(units.Ranges[i].To, length)
    if p >= q {
      values[i] = 0
      missing++
      continue
    }
    summary, err := file.Summarize(seqname, p, q)
    if err != nil {
      return missing, err
    }
    if summary.Valid <= 0 {
      missing++
    }
    values[i] = statistic(summary)
  }
  return missing, nil
}
