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

// Package npz writes score matrices as numpy npz containers, i.e. zip
// archives holding one npy entry per array. The layout matches what
// numpy.savez_compressed produces for a float matrix and a string array
// of labels, so the output can be loaded directly by numpy-based
// correlation and PCA tooling.
package npz

/* -------------------------------------------------------------------------- */

import "archive/zip"
import "bytes"
import "encoding/binary"
import "fmt"
import "io"
import "os"
import "regexp"
import "strconv"
import "strings"

import "github.com/klauspost/compress/flate"
import "github.com/sbinet/npyio"

import "gonum.org/v1/gonum/mat"

/* -------------------------------------------------------------------------- */

// Write stores the matrix under the key `matrix' and the labels under
// the key `labels'.
func Write(w io.Writer, matrix *mat.Dense, labels []string) error {
  z := zip.NewWriter(w)
  z.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
    return flate.NewWriter(out, flate.DefaultCompression)
  })
  if f, err := z.Create("matrix.npy"); err != nil {
    return err
  } else {
    if err := npyio.Write(f, matrix); err != nil {
      return err
    }
  }
  if f, err := z.Create("labels.npy"); err != nil {
    return err
  } else {
    if err := writeStrings(f, labels); err != nil {
      return err
    }
  }
  return z.Close()
}

func WriteFile(filename string, matrix *mat.Dense, labels []string) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  return Write(f, matrix, labels)
}

/* -------------------------------------------------------------------------- */

// ReadFile loads a container written by Write.
func ReadFile(filename string) (*mat.Dense, []string, error) {
  z, err := zip.OpenReader(filename)
  if err != nil {
    return nil, nil, err
  }
  defer z.Close()

  var matrix *mat.Dense
  var labels []string

  for _, file := range z.File {
    rc, err := file.Open()
    if err != nil {
      return nil, nil, err
    }
    switch file.Name {
    case "matrix.npy":
      m := mat.Dense{}
      if err := npyio.Read(rc, &m); err != nil {
        rc.Close()
        return nil, nil, err
      }
      matrix = &m
    case "labels.npy":
      if labels, err = readStrings(rc); err != nil {
        rc.Close()
        return nil, nil, err
      }
    }
    rc.Close()
  }
  if matrix == nil {
    return nil, nil, fmt.Errorf("%s: no matrix entry found", filename)
  }
  if labels == nil {
    return nil, nil, fmt.Errorf("%s: no labels entry found", filename)
  }
  return matrix, labels, nil
}

/* npy string arrays
 * -------------------------------------------------------------------------- */

// npyio does not support string data, numpy `<U' arrays are therefore
// encoded here directly: every element occupies a fixed number of
// UTF-32 little-endian code points, padded with zeros.

var npyMagic = []byte("\x93NUMPY")

func writeStrings(w io.Writer, labels []string) error {
  width := 1
  runes := make([][]rune, len(labels))
  for i, label := range labels {
    runes[i] = []rune(label)
    if len(runes[i]) > width {
      width = len(runes[i])
    }
  }
  header := fmt.Sprintf("{'descr': '<U%d', 'fortran_order': False, 'shape': (%d,), }", width, len(labels))
  // pad the header with spaces such that the preamble and the header
  // together are a multiple of 64 bytes, terminated by a newline
  if r := (10 + len(header) + 1) % 64; r != 0 {
    header += strings.Repeat(" ", 64-r)
  }
  header += "\n"

  if _, err := w.Write(npyMagic); err != nil {
    return err
  }
  if _, err := w.Write([]byte{1, 0}); err != nil {
    return err
  }
  if err := binary.Write(w, binary.LittleEndian, uint16(len(header))); err != nil {
    return err
  }
  if _, err := w.Write([]byte(header)); err != nil {
    return err
  }
  element := make([]uint32, width)
  for i := 0; i < len(labels); i++ {
    for j := 0; j < width; j++ {
      if j < len(runes[i]) {
        element[j] = uint32(runes[i][j])
      } else {
        element[j] = 0
      }
    }
    if err := binary.Write(w, binary.LittleEndian, element); err != nil {
      return err
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

var npyStringHeader = regexp.MustCompile(`'descr':\s*'<U(\d+)'.*'shape':\s*\((\d+),\)`)

func readStrings(r io.Reader) ([]string, error) {
  preamble := make([]byte, 10)
  if _, err := io.ReadFull(r, preamble); err != nil {
    return nil, err
  }
  if !bytes.Equal(preamble[0:6], npyMagic) {
    return nil, fmt.Errorf("not an npy entry")
  }
  if preamble[6] != 1 {
    return nil, fmt.Errorf("unsupported npy version %d.%d", preamble[6], preamble[7])
  }
  n := int(binary.LittleEndian.Uint16(preamble[8:10]))

  header := make([]byte, n)
  if _, err := io.ReadFull(r, header); err != nil {
    return nil, err
  }
  m := npyStringHeader.FindStringSubmatch(string(header))
  if m == nil {
    return nil, fmt.Errorf("invalid npy string header")
  }
  width, _ := strconv.Atoi(m[1])
  count, _ := strconv.Atoi(m[2])

  labels  := make([]string, count)
  element := make([]uint32, width)

  for i := 0; i < count; i++ {
    if err := binary.Read(r, binary.LittleEndian, element); err != nil {
      return nil, err
    }
    runes := []rune{}
    for j := 0; j < width; j++ {
      if element[j] == 0 {
        break
      }
      runes = append(runes, rune(element[j]))
    }
    labels[i] = string(runes)
  }
  return labels, nil
}
