// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"encoding"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ json.Marshaler           = DType(0)
	_ json.Unmarshaler         = new(DType)
	_ encoding.TextMarshaler   = DType(0)
	_ encoding.TextUnmarshaler = new(DType)
	_ fmt.Stringer             = DType(0)
)

var (
	validValues = []struct {
		dType  DType
		size   int
		string string
		json   string
	}{
		{Byte, 1, "Byte", `"Byte"`},
		{Char, 1, "Char", `"Char"`},
		{Short, 2, "Short", `"Short"`},
		{Int, 4, "Int", `"Int"`},
		{Long, 8, "Long", `"Long"`},
		{Half, 2, "Half", `"Half"`},
		{Float, 4, "Float", `"Float"`},
		{Double, 8, "Double", `"Double"`},
		{Bool, 1, "Bool", `"Bool"`},
		{BFloat16, 2, "BFloat16", `"BFloat16"`},
	}
	invalidValues = []DType{0, 11, 12, 13, 254, 255}
)

func TestParse(t *testing.T) {
	for _, tc := range validValues {
		dt, err := Parse(tc.string)
		assert.NoError(t, err)
		assert.Equal(t, tc.dType, dt)
	}

	for _, s := range []string{"", "float", "FLOAT", "Float32", "foo"} {
		dt, err := Parse(s)
		assert.EqualError(t, err, fmt.Sprintf("invalid DType string value %q", s))
		assert.Equal(t, DType(0), dt)
	}
}

func TestDType_Validate(t *testing.T) {
	for _, tc := range validValues {
		assert.NoError(t, tc.dType.Validate())
	}

	for _, dt := range invalidValues {
		assert.EqualError(t, dt.Validate(), fmt.Sprintf("invalid DType(%d)", dt))
	}
}

func TestDType_String(t *testing.T) {
	for _, tc := range validValues {
		assert.Equal(t, tc.string, tc.dType.String())
	}

	for _, dt := range invalidValues {
		assert.Equal(t, fmt.Sprintf("invalid DType(%d)", dt), dt.String())
	}
}

func TestDType_Size(t *testing.T) {
	for _, tc := range validValues {
		assert.Equal(t, tc.size, tc.dType.Size())
	}

	for _, dt := range invalidValues {
		assert.Equal(t, -1, dt.Size())
	}
}

func TestDType_MarshalJSON(t *testing.T) {
	for _, tc := range validValues {
		b, err := tc.dType.MarshalJSON()
		assert.NoError(t, err)
		assert.Equal(t, []byte(tc.json), b)
	}

	for _, dt := range invalidValues {
		b, err := dt.MarshalJSON()
		assert.EqualError(t, err, fmt.Sprintf("invalid DType(%d)", dt))
		assert.Nil(t, b)
	}
}

func TestDType_UnmarshalJSON(t *testing.T) {
	for _, tc := range validValues {
		var dt DType
		err := dt.UnmarshalJSON([]byte(tc.json))
		assert.NoError(t, err)
		assert.Equal(t, tc.dType, dt)
	}

	var dt DType
	assert.EqualError(t, dt.UnmarshalJSON(nil), `failed to JSON-unmarshal DType from value ""`)
	assert.EqualError(t, dt.UnmarshalJSON([]byte{}), `failed to JSON-unmarshal DType from value ""`)
	assert.EqualError(t, dt.UnmarshalJSON([]byte("foo")), `failed to JSON-unmarshal DType from value "foo"`)
	assert.EqualError(t, dt.UnmarshalJSON([]byte(`"foo"`)), `failed to JSON-unmarshal DType from value "\"foo\""`)
}

func TestDType_MarshalText(t *testing.T) {
	for _, tc := range validValues {
		b, err := tc.dType.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, []byte(tc.string), b)
	}

	for _, dt := range invalidValues {
		b, err := dt.MarshalText()
		assert.EqualError(t, err, fmt.Sprintf("invalid DType(%d)", dt))
		assert.Nil(t, b)
	}
}

func TestDType_UnmarshalText(t *testing.T) {
	for _, tc := range validValues {
		var dt DType
		err := dt.UnmarshalText([]byte(tc.string))
		assert.NoError(t, err)
		assert.Equal(t, tc.dType, dt)
	}

	var dt DType
	assert.EqualError(t, dt.UnmarshalText(nil), `failed to text-unmarshal DType from value ""`)
	assert.EqualError(t, dt.UnmarshalText([]byte{}), `failed to text-unmarshal DType from value ""`)
	assert.EqualError(t, dt.UnmarshalText([]byte("foo")), `failed to text-unmarshal DType from value "foo"`)
}
