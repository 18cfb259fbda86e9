// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lazytensors

import (
	"fmt"

	"github.com/nlpodyssey/lazytensors/dtype"
)

// ConvertShapes creates one Shape per pair of corresponding elements
// from a list of scalar types and a parallel list of dimension sizes,
// preserving their order.
//
// The two lists must have the same length: a mismatch indicates a bug
// in the caller, and makes the function panic without producing any
// partial result.
func ConvertShapes(dTypes []dtype.DType, sizes [][]int64) []Shape {
	if len(dTypes) != len(sizes) {
		panic(fmt.Sprintf("lazytensors: ConvertShapes requires parallel lists: %d scalar types, %d size lists", len(dTypes), len(sizes)))
	}

	shapes := make([]Shape, len(dTypes))
	for i, dt := range dTypes {
		shapes[i] = New(dt, sizes[i]...)
	}
	return shapes
}
