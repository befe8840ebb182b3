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

import . "github.com/pbenner/gonetics"

/* -------------------------------------------------------------------------- */

// BinUnits partitions the genome into consecutive bins of length binSize,
// where the start of adjacent bins is binSize + binDistance apart. The
// last bin of every chromosome is clipped to the chromosome length and
// dropped if nothing remains. The resulting order is the alignment key
// for all score vectors and must not be changed afterwards.
func BinUnits(genome Genome, binSize, binDistance int, skipChroms []string, region GenomicRegion) (GRanges, error) {
  if binSize <= 0 {
    return GRanges{}, ConfigurationError{fmt.Sprintf("invalid bin size `%d'", binSize)}
  }
  if binDistance < 0 {
    return GRanges{}, ConfigurationError{fmt.Sprintf("invalid distance between bins `%d'", binDistance)}
  }
  genome = filterGenome(genome, skipChroms)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}

  step := binSize + binDistance

  for i := 0; i < genome.Length(); i++ {
    seqname := genome.Seqnames[i]
    limit   := genome.Lengths [i]
    start   := 0
    if !region.isEmpty() {
      if region.Seqname != seqname {
        continue
      }
      start = region.From
      if region.To > 0 {
        limit = iMin(limit, region.To)
      }
    }
    for p := start; p < limit; p += step {
      q := iMin(p+binSize, limit)
      seqnames = append(seqnames, seqname)
      from     = append(from,     p)
      to       = append(to,       q)
    }
  }
  return NewGRanges(seqnames, from, to, nil), nil
}

/* -------------------------------------------------------------------------- */

// RegionUnits takes externally supplied regions as analysis units,
// preserving their input order. Regions on skipped chromosomes are
// dropped, and if a genomic restriction is given only overlapping
// regions are kept.
func RegionUnits(regions GRanges, skipChroms []string, region GenomicRegion) (GRanges, error) {
  if regions.Length() == 0 {
    return GRanges{}, ConfigurationError{"the region list is empty"}
  }
  skip := make(map[string]bool)
  for _, name := range skipChroms {
    skip[name] = true
  }
  idx := []int{}
  for i := 0; i < regions.Length(); i++ {
    if skip[regions.Seqnames[i]] {
      continue
    }
    if !region.overlaps(regions.Seqnames[i], regions.Ranges[i].From, regions.Ranges[i].To) {
      continue
    }
    idx = append(idx, i)
  }
  return regions.Subset(idx), nil
}
