// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtype enumerates the scalar element types a tensor can hold.
package dtype

import (
	"fmt"
)

// DType identifies the scalar type of every element of a tensor.
// The zero value is invalid.
type DType uint8

const (
	// Byte represents an 8-bit unsigned integer type.
	Byte DType = iota + 1
	// Char represents an 8-bit signed integer type.
	Char
	// Short represents a 16-bit signed integer type.
	Short
	// Int represents a 32-bit signed integer type.
	Int
	// Long represents a 64-bit signed integer type.
	Long
	// Half represents a 16-bit half-precision floating point type.
	Half
	// Float represents a 32-bit floating point type.
	Float
	// Double represents a 64-bit floating point type.
	Double
	// Bool represents an 8-bit boolean type.
	Bool
	// BFloat16 represents a 16-bit brain floating point type.
	BFloat16
)

var (
	dTypeToString = [...]string{
		Byte:     "Byte",
		Char:     "Char",
		Short:    "Short",
		Int:      "Int",
		Long:     "Long",
		Half:     "Half",
		Float:    "Float",
		Double:   "Double",
		Bool:     "Bool",
		BFloat16: "BFloat16",
	}
	dTypeToSize = [...]int{
		Byte:     1,
		Char:     1,
		Short:    2,
		Int:      4,
		Long:     8,
		Half:     2,
		Float:    4,
		Double:   8,
		Bool:     1,
		BFloat16: 2,
	}
	stringToDType = map[string]DType{
		"Byte":     Byte,
		"Char":     Char,
		"Short":    Short,
		"Int":      Int,
		"Long":     Long,
		"Half":     Half,
		"Float":    Float,
		"Double":   Double,
		"Bool":     Bool,
		"BFloat16": BFloat16,
	}
)

// Parse converts a canonical display name into a DType value.
func Parse(s string) (DType, error) {
	dt, ok := stringToDType[s]
	if !ok {
		return 0, fmt.Errorf("invalid DType string value %q", s)
	}
	return dt, nil
}

// Validate returns an error if the DType is not valid, otherwise nil.
func (dt DType) Validate() error {
	if dt == 0 || dt > BFloat16 {
		return fmt.Errorf("invalid DType(%d)", dt)
	}
	return nil
}

// String returns the canonical display name of a DType.
func (dt DType) String() string {
	if err := dt.Validate(); err != nil {
		return err.Error()
	}
	return dTypeToString[dt]
}

// Size returns the size in bytes of one element of this data type,
// or -1 if the DType value is invalid.
func (dt DType) Size() int {
	if err := dt.Validate(); err != nil {
		return -1
	}
	return dTypeToSize[dt]
}

// MarshalJSON satisfies json.Marshaler interface.
func (dt DType) MarshalJSON() ([]byte, error) {
	if err := dt.Validate(); err != nil {
		return nil, err
	}
	return []byte(`"` + dTypeToString[dt] + `"`), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (dt *DType) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("failed to JSON-unmarshal DType from value %q", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return fmt.Errorf("failed to JSON-unmarshal DType from value %q", s)
	}
	*dt = parsed
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (dt DType) MarshalText() ([]byte, error) {
	if err := dt.Validate(); err != nil {
		return nil, err
	}
	return []byte(dTypeToString[dt]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (dt *DType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("failed to text-unmarshal DType from value %q", text)
	}
	*dt = parsed
	return nil
}
