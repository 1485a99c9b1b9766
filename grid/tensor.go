/*
 * tensor.go, part of gochemgrid.
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

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//Tensor is a multi-channel cubic grid of occupancies. Data is laid out
//channel, x, y, z, with z changing fastest.
type Tensor struct {
	Channels int
	N        int
	Data     []float32
}

//NewTensor returns a zero-filled tensor with the given number of channels and
//n points per axis.
func NewTensor(channels, n int) *Tensor {
	return &Tensor{Channels: channels, N: n, Data: make([]float32, channels*n*n*n)}
}

//Index returns the position in Data of the value for channel c at grid point i, j, k.
func (T *Tensor) Index(c, i, j, k int) int {
	return ((c*T.N+i)*T.N+j)*T.N + k
}

//At returns the value for channel c at the grid point i, j, k.
func (T *Tensor) At(c, i, j, k int) float32 {
	return T.Data[T.Index(c, i, j, k)]
}

//Set sets the value for channel c at the grid point i, j, k
func (T *Tensor) Set(c, i, j, k int, v float32) {
	T.Data[T.Index(c, i, j, k)] = v
}

//Channel returns a view of the values in channel c. Changes in the view are reflected in T.
func (T *Tensor) Channel(c int) []float32 {
	n3 := T.N * T.N * T.N
	return T.Data[c*n3 : (c+1)*n3]
}

//Zero sets all the values of T to 0.
func (T *Tensor) Zero() {
	clear(T.Data)
}

//Shape returns the number of channels and the three grid dimensions.
func (T *Tensor) Shape() [4]int {
	return [4]int{T.Channels, T.N, T.N, T.N}
}

//Stats returns the smallest and largest values in the channel c, and the fraction
//of the grid points in that channel with non-zero occupancy.
func (T *Tensor) Stats(c int) (min, max, occupied float64) {
	ch := T.Channel(c)
	if len(ch) == 0 {
		return 0, 0, 0
	}
	vals := make([]float64, len(ch))
	nonzero := 0
	for i, v := range ch {
		vals[i] = float64(v)
		if v != 0 {
			nonzero++
		}
	}
	return floats.Min(vals), floats.Max(vals), float64(nonzero) / float64(len(vals))
}

//Sum returns the sum of all the occupancies in T.
func (T *Tensor) Sum() float64 {
	vals := make([]float64, len(T.Data))
	for i, v := range T.Data {
		vals[i] = float64(v)
	}
	return floats.Sum(vals)
}

//Concat returns a new tensor with the channels of all the tensors given, in order.
//All the tensors must have the same number of points per axis.
func Concat(tensors ...*Tensor) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, &Error{"no tensors to concatenate", "", []string{"Concat"}, true}
	}
	n := tensors[0].N
	channels := 0
	for _, t := range tensors {
		if t.N != n {
			return nil, &Error{fmt.Sprintf("tensors with %d and %d points per axis can't be concatenated", n, t.N), "", []string{"Concat"}, true}
		}
		channels += t.Channels
	}
	ret := NewTensor(channels, n)
	pos := 0
	for _, t := range tensors {
		pos += copy(ret.Data[pos:], t.Data)
	}
	return ret, nil
}
