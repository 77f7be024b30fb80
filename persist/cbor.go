// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"github.com/cpmech/gosl/chk"
	"github.com/fxamacker/cbor/v2"
	"github.com/gosketch/sketch2d/sketch"
	"github.com/gosketch/sketch2d/solver"
)

// Checkpoint is a compact binary snapshot of an in-progress solve: the
// sketch's current state plus the solver's loss history, so a
// long-running BFGS solve can be paused and resumed without starting
// over.
type Checkpoint struct {
	Document Document       `cbor:"document"`
	History  solver.History `cbor:"history"`
}

// EncodeCheckpointCBOR snapshots sk and hist (hist may be nil if the
// solver wasn't recording) into a compact binary checkpoint.
func EncodeCheckpointCBOR(sk *sketch.Sketch, hist *solver.History) ([]byte, error) {
	doc, err := Encode(sk)
	if err != nil {
		return nil, err
	}
	cp := Checkpoint{Document: *doc}
	if hist != nil {
		cp.History = *hist
	}
	out, err := cbor.Marshal(cp)
	if err != nil {
		return nil, chk.Err("persist: cbor marshal failed: %v", err)
	}
	return out, nil
}

// DecodeCheckpointCBOR restores a sketch and its recorded history from
// a binary checkpoint previously written by EncodeCheckpointCBOR.
func DecodeCheckpointCBOR(data []byte) (*sketch.Sketch, *solver.History, error) {
	var cp Checkpoint
	if err := cbor.Unmarshal(data, &cp); err != nil {
		return nil, nil, chk.Err("persist: cbor unmarshal failed: %v", err)
	}
	sk, err := Decode(&cp.Document)
	if err != nil {
		return nil, nil, err
	}
	return sk, &cp.History, nil
}
