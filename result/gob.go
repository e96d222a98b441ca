// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result

import (
	"bytes"
	"encoding/gob"
)

// snapshot is the portable form a Result marshals to: PortRef keys flattened
// to plain strings/ints (a port.Handle would be meaningless outside the
// circuit that minted it), and each LightSample's interface variant
// collapsed to a concrete, gob-friendly struct.
type snapshot struct {
	Times   []float64
	Entries []snapshotEntry
}

type snapshotEntry struct {
	Component string
	Index     int
	Samples   []encodedSample
}

// encodedSample is a gob-safe stand-in for the LightSample interface: gob
// cannot encode an interface field without a concrete registration, so the
// two variants are flattened into one struct tagged by Coherent.
type encodedSample struct {
	Coherent bool
	Single   CoherentLight
	Multi    []CoherentLight
}

func toEncoded(s LightSample) encodedSample {
	switch v := s.(type) {
	case CoherentLight:
		return encodedSample{Coherent: true, Single: v}
	case IncoherentLight:
		return encodedSample{Coherent: false, Multi: v.Components}
	default:
		return encodedSample{Coherent: true}
	}
}

func (e encodedSample) toLightSample() LightSample {
	if e.Coherent {
		return e.Single
	}
	return IncoherentLight{Components: e.Multi}
}

// GobEncode implements gob.GobEncoder, letting a Result be written directly
// with an encoding/gob.Encoder (e.g. to a file) for later replay without
// re-solving.
func (r *Result) GobEncode() ([]byte, error) {
	snap := snapshot{Times: r.times}
	for k, samples := range r.samples {
		enc := make([]encodedSample, len(samples))
		for i, s := range samples {
			enc[i] = toEncoded(s)
		}
		snap.Entries = append(snap.Entries, snapshotEntry{Component: k.component, Index: k.index, Samples: enc})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. The decoded Result has no circuit
// back-reference, so alias-based PortRef lookups fail — callers that need
// aliases should resolve them to an Index-based PortRef before encoding, or
// query only by index after decode.
func (r *Result) GobDecode(data []byte) error {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return err
	}
	r.src = nil
	r.times = snap.Times
	r.samples = make(map[ref][]LightSample, len(snap.Entries))
	for _, e := range snap.Entries {
		samples := make([]LightSample, len(e.Samples))
		for i, enc := range e.Samples {
			samples[i] = enc.toLightSample()
		}
		r.samples[ref{e.Component, e.Index}] = samples
	}
	return nil
}
