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

/* -------------------------------------------------------------------------- */

// ConfigurationError reports contradictory or invalid parameters. It is
// always raised before any signal file is opened.
type ConfigurationError struct {
  Reason string
}

func (err ConfigurationError) Error() string {
  return err.Reason
}

/* -------------------------------------------------------------------------- */

// FileAccessError reports a signal file that could not be opened or read.
// Any occurrence aborts the run, since a matrix over a partial file set
// would not be aligned.
type FileAccessError struct {
  Filename string
  Err      error
}

func (err FileAccessError) Error() string {
  return fmt.Sprintf("%s: %v", err.Filename, err.Err)
}

func (err FileAccessError) Unwrap() error {
  return err.Err
}

/* -------------------------------------------------------------------------- */

// InsufficientDataError reports that fewer than two units survived the
// all-zero filter.
type InsufficientDataError struct {
  Retained int
}

func (err InsufficientDataError) Error() string {
  return fmt.Sprintf("only %d units with signal were retained, at least two are required", err.Retained)
}
