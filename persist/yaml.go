// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gosketch/sketch2d/sketch"
	"gopkg.in/yaml.v3"
)

// EncodeYAML renders sk as a human-authored/editable sketch file.
func EncodeYAML(sk *sketch.Sketch) ([]byte, error) {
	doc, err := Encode(sk)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, chk.Err("persist: yaml marshal failed: %v", err)
	}
	return out, nil
}

// DecodeYAML parses a sketch file previously written by EncodeYAML.
func DecodeYAML(data []byte) (*sketch.Sketch, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, chk.Err("persist: yaml unmarshal failed: %v", err)
	}
	return Decode(&doc)
}
