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

import "testing"

/* -------------------------------------------------------------------------- */

func TestSummary1(t *testing.T) {

  summary := NewSummary()
  summary.AddValue( 2.0)
  summary.AddValue( 4.0)
  summary.AddValue(-1.0)

  if summary.Valid != 3 {
    t.Error("TestSummary1 failed!")
  }
  if SummaryMean(summary) != 5.0/3.0 {
    t.Error("TestSummary1 failed!")
  }
  if SummaryMin(summary) != -1.0 {
    t.Error("TestSummary1 failed!")
  }
  if SummaryMax(summary) != 4.0 {
    t.Error("TestSummary1 failed!")
  }
}

func TestSummary2(t *testing.T) {

  // a unit without data scores zero for every statistic
  summary := NewSummary()

  if SummaryMean(summary) != 0 || SummaryMin(summary) != 0 || SummaryMax(summary) != 0 {
    t.Error("TestSummary2 failed!")
  }
}

func TestSummary3(t *testing.T) {

  summary := NewSummary()
  partial := NewSummary()
  partial.AddValue(1.0)
  partial.AddValue(3.0)

  summary.Add(partial)
  summary.Add(NewSummary())

  if summary.Valid != 2 || SummaryMean(summary) != 2.0 {
    t.Error("TestSummary3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestSummaryStatisticFromString(t *testing.T) {

  for _, str := range []string{"mean", "min", "max"} {
    if _, err := SummaryStatisticFromString(str); err != nil {
      t.Error("TestSummaryStatisticFromString failed!")
    }
  }
  if _, err := SummaryStatisticFromString("median"); err == nil {
    t.Error("TestSummaryStatisticFromString failed!")
  } else
  if _, ok := err.(ConfigurationError); !ok {
    t.Error("TestSummaryStatisticFromString failed!")
  }
}
