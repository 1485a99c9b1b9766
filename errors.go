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

package chem

import (
	"errors"
	"fmt"
)

//Error is the general structure for errors in this package. It fullfills the chem.Errorer interface.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
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
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, or an empty string.
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

//FileError is returned when a file can't be opened, or created.
//It carries the path of the file and whether it was to be read or written.
type FileError struct {
	path    string
	writing bool
	deco    []string
	err     error
}

//NewFileError returns a FileError for the file path. writing is true if the file was
//to be written, false if it was to be read. err is the underlying error, and can be nil.
func NewFileError(path string, writing bool, err error, caller string) *FileError {
	return &FileError{path: path, writing: writing, deco: []string{caller}, err: err}
}

func (err *FileError) Error() string {
	return fmt.Sprintf("could not open \"%s\" for %s", err.path, err.Direction())
}

//FileName returns the path of the file that could not be opened.
func (err *FileError) FileName() string { return err.path }

//Direction returns "writing" or "reading".
func (err *FileError) Direction() string {
	if err.writing {
		return "writing"
	}
	return "reading"
}

//Critical always returns true. There is nothing to do without the file.
func (err *FileError) Critical() bool { return true }

//Decorate adds new information to the error
func (err *FileError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Unwrap returns the underlying error, usually from the os package.
func (err *FileError) Unwrap() error { return err.err }

//errDecorate is a helper function that decorates the error with the caller's name before
//returning it, if the error implements chem.Errorer. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var err2 Errorer
	if errors.As(err, &err2) {
		err2.Decorate(caller)
	}
	return err
}
