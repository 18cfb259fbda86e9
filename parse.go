// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lazytensors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nlpodyssey/lazytensors/dtype"
)

// Parse converts the textual representation produced by Shape.String
// (for example "Float[2,3]", or "Long[]" for a scalar) back into a Shape.
func Parse(raw string) (Shape, error) {
	open := strings.IndexByte(raw, '[')
	if open < 0 || raw[len(raw)-1] != ']' {
		return Shape{}, fmt.Errorf("invalid Shape string value %q", raw)
	}

	st, err := dtype.Parse(raw[:open])
	if err != nil {
		return Shape{}, fmt.Errorf("failed to parse Shape from value %q: %w", raw, err)
	}

	inner := raw[open+1 : len(raw)-1]
	if inner == "" {
		return New(st), nil
	}

	parts := strings.Split(inner, ",")
	sizes := make([]int64, len(parts))
	for i, part := range parts {
		size, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return Shape{}, fmt.Errorf("failed to parse size %q of Shape value %q: %w", part, raw, err)
		}
		sizes[i] = size
	}

	return Shape{scalarType: st, sizes: sizes}, nil
}
