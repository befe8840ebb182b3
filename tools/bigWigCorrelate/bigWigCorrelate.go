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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "strings"

import . "github.com/compbiolab/bwcorrelate"
import   "github.com/compbiolab/bwcorrelate/lib/npz"

import . "github.com/pbenner/gonetics"
import   "github.com/pbenner/gonetics/lib/progress"

import   "github.com/pborman/getopt"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose     int
  Threads     int
  BinSize     int
  BinDistance int
  Status      bool
  SkipChroms  []string
  Region      GenomicRegion
  Statistic   SummaryStatistic
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importBed3(config Config, filename string) GRanges {
  granges := GRanges{}
  PrintStderr(config, 1, "Reading bed file `%s'... ", filename)
  if err := granges.ImportBed3(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  } else {
    PrintStderr(config, 1, "done\n")
  }
  return granges
}

func importGenomes(config Config, filenames []string) []Genome {
  genomes := []Genome{}
  for _, filename := range filenames {
    PrintStderr(config, 1, "Reading chromosomes from `%s'... ", filename)
    f, err := OpenSignalFile(filename)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    genomes = append(genomes, f.Genome())
    f.Close()
  }
  return genomes
}

/* -------------------------------------------------------------------------- */

func planUnits(config Config, filenames []string, filenameBed string) GRanges {
  var units GRanges
  var err   error

  if filenameBed != "" {
    regions := importBed3(config, filenameBed)
    units, err = RegionUnits(regions, config.SkipChroms, config.Region)
  } else {
    genome, warnings := CommonGenome(importGenomes(config, filenames))
    for _, warning := range warnings {
      PrintStderr(config, 1, "%s\n", warning)
    }
    units, err = BinUnits(genome, config.BinSize, config.BinDistance, config.SkipChroms, config.Region)
  }
  if err != nil {
    log.Fatal(err)
  }
  return units
}

func correlate(config Config, filenames, labels []string, filenameBed, filenameOut, filenameRaw string) {

  units := planUnits(config, filenames, filenameBed)

  options := ScoreOptions{}
  options.Threads   = config.Threads
  options.Statistic = config.Statistic
  if config.Verbose > 0 {
    options.Logger = log.New(os.Stderr, "", 0)
  }
  if config.Status {
    options.Progress = func(i, n int) {
      progress.New(n, 1000).PrintStderr(i)
    }
  } else {
    PrintStderr(config, 1, "Scoring %d units in %d files... ", units.Length(), len(filenames))
  }
  values, keep, err := ScoreFiles(filenames, units, options)
  if err != nil {
    if !config.Status {
      PrintStderr(config, 1, "failed\n")
    }
    log.Fatal(err)
  }
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }
  matrix, err := AssembleMatrix(values, keep, units, labels)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Retained %d of %d units\n", matrix.Units.Length(), units.Length())

  PrintStderr(config, 1, "Writing matrix to `%s'... ", filenameOut)
  if err := npz.WriteFile(filenameOut, matrix.Values, matrix.Labels); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if filenameRaw != "" {
    PrintStderr(config, 1, "Writing raw scores to `%s'... ", filenameRaw)
    if err := matrix.ExportTable(filenameRaw, strings.HasSuffix(filenameRaw, ".gz")); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optBed         := options. StringLong("bed",               0 , "",     "compute scores over regions from this bed file instead of genome-wide bins")
  optBinSize     := options.    IntLong("bin-size",          0 ,  10000, "size in bases of the sampled bins")
  optBinDistance := options.    IntLong("bin-distance",      0 ,      0, "distance between adjacent bins, larger values reduce the number of bins")
  optBinStat     := options. StringLong("bin-summary",       0 , "mean", "bin summary statistic [mean (default), min, max]")
  optSkipChroms  := options. StringLong("skip-chromosomes",  0 , "",     "comma separated list of chromosomes to skip")
  optLabels      := options. StringLong("labels",            0 , "",     "comma separated list of labels [default: file names]")
  optRegion      := options. StringLong("region",            0 , "",     "restrict the analysis to one region [CHR or CHR:FROM-TO]")
  optRawCounts   := options. StringLong("raw-counts",        0 , "",     "write raw per-unit scores to this file")
  optThreads     := options.    IntLong("threads",           0 ,      1, "number of threads")
  optStatus      := options.   BoolLong("status",            0 ,         "show status bar")
  optVerbose     := options.CounterLong("verbose",          'v',         "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",             'h',         "print help")

  options.SetParameters("<INPUT1.bw> <INPUT2.bw> [INPUT3.bw ...] <OUTPUT.npz>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  n := len(options.Args())
  filenames   := options.Args()[0:n-1]
  filenameOut := options.Args()[n-1]

  if len(filenames) < 2 {
    log.Fatal("please specify at least two bigWig files")
  }
  config.Verbose     = *optVerbose
  config.Threads     = *optThreads
  config.BinSize     = *optBinSize
  config.BinDistance = *optBinDistance
  config.Status      = *optStatus

  if *optSkipChroms != "" {
    config.SkipChroms = strings.Split(*optSkipChroms, ",")
  }
  if region, err := ParseRegion(*optRegion); err != nil {
    log.Fatal(err)
  } else {
    config.Region = region
  }
  if statistic, err := SummaryStatisticFromString(*optBinStat); err != nil {
    log.Fatal(err)
  } else {
    config.Statistic = statistic
  }
  var labels []string
  if *optLabels != "" {
    labels = strings.Split(*optLabels, ",")
    // check before any file is opened
    if err := CheckLabels(filenames, labels); err != nil {
      log.Fatal(err)
    }
  } else {
    labels = DefaultLabels(filenames)
  }
  correlate(config, filenames, labels, *optBed, filenameOut, *optRawCounts)
}
