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
import "path/filepath"
import "strings"

/* -------------------------------------------------------------------------- */

// DefaultLabels derives one label per signal file, the base name for
// local paths and the last path segment for URLs.
func DefaultLabels(filenames []string) []string {
  labels := make([]string, len(filenames))
  for i, filename := range filenames {
    if isRemoteFile(filename) {
      parts := strings.Split(filename, "/")
      labels[i] = parts[len(parts)-1]
    } else {
      labels[i] = filepath.Base(filename)
    }
  }
  return labels
}

// CheckLabels verifies that there is exactly one label per signal file.
// This is checked before any file is opened.
func CheckLabels(filenames, labels []string) error {
  if len(labels) != len(filenames) {
    return ConfigurationError{fmt.Sprintf("number of labels (%d) does not match the number of signal files (%d)", len(labels), len(filenames))}
  }
  return nil
}
