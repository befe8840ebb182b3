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
import "strconv"
import "strings"

import . "github.com/pbenner/gonetics"

/* -------------------------------------------------------------------------- */

// CommonGenome intersects the chromosome lists of all signal files. A
// chromosome missing from any file is dropped, conflicting lengths are
// resolved by taking the minimum. Both conditions are reported as
// warnings, the chromosome order of the first genome is preserved.
func CommonGenome(genomes []Genome) (Genome, []string) {
  if len(genomes) == 0 {
    return Genome{}, nil
  }
  warnings := []string{}
  seqnames := []string{}
  lengths  := []int{}

  first := genomes[0]

  for i := 0; i < first.Length(); i++ {
    name   := first.Seqnames[i]
    length := first.Lengths [i]
    shared := true
    for _, genome := range genomes[1:] {
      if l, err := genome.SeqLength(name); err != nil {
        warnings = append(warnings, fmt.Sprintf("chromosome `%s' is not present in all files and was dropped", name))
        shared   = false
        break
      } else
      if l != length {
        warnings = append(warnings, fmt.Sprintf("chromosome `%s' has conflicting lengths, using the minimum", name))
        length   = iMin(length, l)
      }
    }
    if shared {
      seqnames = append(seqnames, name)
      lengths  = append(lengths,  length)
    }
  }
  return NewGenome(seqnames, lengths), warnings
}

/* -------------------------------------------------------------------------- */

func filterGenome(genome Genome, skipChroms []string) Genome {
  if len(skipChroms) == 0 {
    return genome
  }
  skip := make(map[string]bool)
  for _, name := range skipChroms {
    skip[name] = true
  }
  seqnames := []string{}
  lengths  := []int{}
  for i := 0; i < genome.Length(); i++ {
    if skip[genome.Seqnames[i]] {
      continue
    }
    seqnames = append(seqnames, genome.Seqnames[i])
    lengths  = append(lengths,  genome.Lengths [i])
  }
  return NewGenome(seqnames, lengths)
}

/* -------------------------------------------------------------------------- */

// GenomicRegion restricts the analysis to a single genomic window. The
// zero value means no restriction, To == 0 means until the end of the
// chromosome.
type GenomicRegion struct {
  Seqname string
  From    int
  To      int
}

func (region GenomicRegion) isEmpty() bool {
  return region.Seqname == ""
}

func (region GenomicRegion) overlaps(seqname string, from, to int) bool {
  if region.isEmpty() {
    return true
  }
  if region.Seqname != seqname {
    return false
  }
  if region.To > 0 && from >= region.To {
    return false
  }
  return to > region.From
}

// ParseRegion parses a region string of the form `chr' or `chr:from-to'
// with half-open, zero-based coordinates.
func ParseRegion(str string) (GenomicRegion, error) {
  region := GenomicRegion{}
  if str == "" {
    return region, nil
  }
  parts := strings.SplitN(str, ":", 2)
  region.Seqname = parts[0]
  if region.Seqname == "" {
    return GenomicRegion{}, ConfigurationError{fmt.Sprintf("invalid region `%s'", str)}
  }
  if len(parts) == 2 {
    r := strings.SplitN(parts[1], "-", 2)
    if len(r) != 2 {
      return GenomicRegion{}, ConfigurationError{fmt.Sprintf("invalid region `%s'", str)}
    }
    t1, e1 := strconv.ParseInt(r[0], 10, 64)
    t2, e2 := strconv.ParseInt(r[1], 10, 64)
    if e1 != nil || e2 != nil || t1 < 0 || t2 <= t1 {
      return GenomicRegion{}, ConfigurationError{fmt.Sprintf("invalid region `%s'", str)}
    }
    region.From = int(t1)
    region.To   = int(t2)
  }
  return region, nil
}
