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

/* -------------------------------------------------------------------------- */

// Summary collects the signal over one genomic unit. A summary with
// Valid == 0 means that the unit has no overlapping data, which is
// distinct from a summary over values that happen to be zero.
type Summary struct {
  Valid      float64
  Min        float64
  Max        float64
  Sum        float64
  SumSquares float64
}

func NewSummary() Summary {
  summary := Summary{}
  summary.Reset()
  return summary
}

func (summary *Summary) Reset() {
  summary.Valid      = 0
  summary.Min        = math.Inf( 1)
  summary.Max        = math.Inf(-1)
  summary.Sum        = 0
  summary.SumSquares = 0
}

func (summary *Summary) AddValue(x float64) {
  summary.Valid      += 1
  summary.Sum        += x
  summary.SumSquares += x*x
  if x < summary.Min {
    summary.Min = x
  }
  if x > summary.Max {
    summary.Max = x
  }
}

func (summary *Summary) Add(t Summary) {
  if t.Valid <= 0 {
    return
  }
  summary.Valid      += t.Valid
  summary.Sum        += t.Sum
  summary.SumSquares += t.SumSquares
  if t.Min < summary.Min {
    summary.Min = t.Min
  }
  if t.Max > summary.Max {
    summary.Max = t.Max
  }
}

/* -------------------------------------------------------------------------- */

// SummaryStatistic maps the summary of a unit to a single score. Units
// without data map to zero for every statistic.
type SummaryStatistic func(summary Summary) float64

func SummaryMean(summary Summary) float64 {
  if summary.Valid <= 0 {
    return 0
  }
  return summary.Sum/summary.Valid
}

func SummaryMin(summary Summary) float64 {
  if summary.Valid <= 0 {
    return 0
  }
  return summary.Min
}

func SummaryMax(summary Summary) float64 {
  if summary.Valid <= 0 {
    return 0
  }
  return summary.Max
}

func SummaryStatisticFromString(str string) (SummaryStatistic, error) {
  switch str {
  case "mean":
    return SummaryMean, nil
  case "min":
    return SummaryMin, nil
  case "max":
    return SummaryMax, nil
  }
  return nil, ConfigurationError{fmt.Sprintf("invalid bin summary statistic `%s'", str)}
}
