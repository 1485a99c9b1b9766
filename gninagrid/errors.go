/*
 * errors.go, part of gochemgrid.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package gninagrid

import (
	"errors"
	"fmt"

	chem "github.com/rmera/gochemgrid"
)

//Error is a configuration or processing error of the driver.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, or an empty string
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var err2 chem.Errorer
	if errors.As(err, &err2) {
		err2.Decorate(caller)
	}
	return err
}

//ExitMessage returns the message to print before exiting because of err.
//For files that can't be opened, it gives the path and whether the file was to be read or written.
func ExitMessage(err error) string {
	var ferr *chem.FileError
	if errors.As(err, &ferr) {
		return fmt.Sprintf("Error: could not open \"%s\" for %s.", ferr.FileName(), ferr.Direction())
	}
	return fmt.Sprintf("Error: %v", err)
}
