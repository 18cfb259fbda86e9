// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lazytensors provides metadata value types describing tensors
// of a lazy-evaluation tensor runtime.
package lazytensors

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nlpodyssey/lazytensors/dtype"
)

// Shape describes the structure of a tensor: the scalar type of its
// elements, paired with the size of each of its dimensions in axis order.
// An empty list of sizes describes a scalar.
//
// A Shape is immutable after construction and safe to share across
// concurrent readers.
type Shape struct {
	scalarType dtype.DType
	sizes      []int64
}

// New creates a Shape from a scalar type and dimension sizes.
// The sizes are copied, so later modifications to the given slice do not
// affect the Shape.
//
// Size values are stored as-is, without validation: see Shape.Validate.
func New(st dtype.DType, sizes ...int64) Shape {
	s := make([]int64, len(sizes))
	copy(s, sizes)
	return Shape{scalarType: st, sizes: s}
}

// ScalarType returns the scalar type of the tensor elements.
func (s Shape) ScalarType() dtype.DType {
	return s.scalarType
}

// Sizes returns a copy of the dimension sizes, in axis order.
func (s Shape) Sizes() []int64 {
	sizes := make([]int64, len(s.sizes))
	copy(sizes, s.sizes)
	return sizes
}

// Size returns the size of the dimension with the given index.
// It panics if dim is out of range.
func (s Shape) Size(dim int) int64 {
	return s.sizes[dim]
}

// Dim returns the number of dimensions (zero for a scalar).
func (s Shape) Dim() int {
	return len(s.sizes)
}

// Equal reports whether two shapes have the same scalar type and the
// same dimension sizes, compared element-wise in order.
func (s Shape) Equal(other Shape) bool {
	if s.scalarType != other.scalarType || len(s.sizes) != len(other.sizes) {
		return false
	}
	for i, size := range s.sizes {
		if size != other.sizes[i] {
			return false
		}
	}
	return true
}

// String returns the textual representation of the Shape, in the form
// "Float[2,3]". A scalar renders with empty brackets, like "Long[]".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteString(s.scalarType.String())
	sb.WriteByte('[')
	for i, size := range s.sizes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(size, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Numel returns the number of elements of a tensor with this Shape,
// that is, the product of all dimension sizes (an empty shape counts
// as 1 scalar value).
// It returns an error if a size is negative, or in case of overflow.
func (s Shape) Numel() (uint64, error) {
	numel := uint64(1)
	for i, size := range s.sizes {
		if size < 0 {
			return 0, fmt.Errorf("negative size %d at dimension %d", size, i)
		}
		var err error
		numel, err = checkedMul(numel, uint64(size))
		if err != nil {
			return 0, fmt.Errorf("failed to compute num elements from shape: %w", err)
		}
	}
	return numel, nil
}

// ByteSize returns the number of bytes needed to store a tensor with
// this Shape: the number of elements multiplied by the scalar type size.
// It returns an error if the scalar type is invalid, a size is negative,
// or in case of overflow.
func (s Shape) ByteSize() (uint64, error) {
	if err := s.scalarType.Validate(); err != nil {
		return 0, err
	}
	numel, err := s.Numel()
	if err != nil {
		return 0, err
	}
	byteSize, err := checkedMul(numel, uint64(s.scalarType.Size()))
	if err != nil {
		return 0, fmt.Errorf("failed to compute num bytes from num elements: %w", err)
	}
	return byteSize, nil
}

// Validate checks whether the Shape has a valid scalar type and no
// negative dimension sizes, returning an error if a problem is
// encountered, otherwise nil.
func (s Shape) Validate() error {
	if err := s.scalarType.Validate(); err != nil {
		return err
	}
	for i, size := range s.sizes {
		if size < 0 {
			return fmt.Errorf("negative size %d at dimension %d", size, i)
		}
	}
	return nil
}

// shapeJSON is the JSON object form of a Shape.
type shapeJSON struct {
	DType dtype.DType `json:"dtype"`
	Shape []int64     `json:"shape"`
}

// MarshalJSON satisfies json.Marshaler interface. A Shape is rendered
// as an object, like {"dtype":"Float","shape":[2,3]}; a scalar Shape
// has an empty "shape" array, never "null".
func (s Shape) MarshalJSON() ([]byte, error) {
	sizes := s.sizes
	if sizes == nil {
		sizes = []int64{}
	}
	return json.Marshal(shapeJSON{DType: s.scalarType, Shape: sizes})
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (s *Shape) UnmarshalJSON(b []byte) error {
	var raw shapeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("failed to JSON-unmarshal Shape: %w", err)
	}
	*s = New(raw.DType, raw.Shape...)
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface, producing
// the same representation as Shape.String.
func (s Shape) MarshalText() ([]byte, error) {
	if err := s.scalarType.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface, parsing
// the representation produced by Shape.String.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// checkedMul multiplies a and b and checks for overflow.
func checkedMul(a, b uint64) (uint64, error) {
	c := a * b
	if a > 1 && b > 1 && c/a != b {
		return c, fmt.Errorf("multiplication overflow: %d * %d", a, b)
	}
	return c, nil
}
