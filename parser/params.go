// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

const (
	MaxParams        = 32
	MaxIntermediates = 2
)

// Params holds the numeric parameters of a CSI sequence. Values are stored
// flat and split into groups: a semicolon starts a new group, a colon adds a
// sub-parameter to the current one. A sequence without parameter bytes has
// no groups at all.
//
// The parser reuses one Params for every sequence, so a handler which wants to
// keep the values must copy them.
type Params struct {
	values  [MaxParams]uint16
	starts  [MaxParams]uint8 // index into values where each group begins
	nValues int
	nGroups int
	open    bool // the last group accepts more sub-parameters
}

// Len returns the number of parameter groups.
func (p *Params) Len() int { return p.nGroups }

func (p *Params) IsEmpty() bool { return p.nGroups == 0 }

// Group returns the values of the i-th group. The first value is the
// parameter itself, the rest are its colon separated sub-parameters.
func (p *Params) Group(i int) []uint16 {
	if i < 0 || i >= p.nGroups {
		return nil
	}

	end := p.nValues
	if i+1 < p.nGroups {
		end = int(p.starts[i+1])
	}
	return p.values[p.starts[i]:end]
}

func (p *Params) isFull() bool { return p.nValues == MaxParams }

func (p *Params) clear() {
	p.nValues = 0
	p.nGroups = 0
	p.open = false
}

// push adds v and closes the current group.
func (p *Params) push(v uint16) { p.add(v, true) }

// extend adds v and keeps the current group open for sub-parameters.
func (p *Params) extend(v uint16) { p.add(v, false) }

func (p *Params) add(v uint16, closes bool) {
	if p.isFull() {
		return
	}
	if !p.open {
		p.starts[p.nGroups] = uint8(p.nValues)
		p.nGroups++
	}
	p.values[p.nValues] = v
	p.nValues++
	p.open = !closes
}
