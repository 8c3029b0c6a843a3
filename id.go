package idtree

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeID identifies a node within a Tree.
//
// A NodeID names an arena slot together with the generation the slot had
// when the node was inserted. Once the node is removed the slot's generation
// moves on, so the old NodeID stops resolving even after the slot is reused.
// The zero NodeID never resolves and stands for "no node" in link accessors.
type NodeID struct {
	index      uint32
	generation uint32
}

// IsZero reports whether id is the zero NodeID (no node).
func (id NodeID) IsZero() bool {
	return id.generation == 0
}

// String renders the id as "index:generation", or "-" for the zero id.
func (id NodeID) String() string {
	if id.IsZero() {
		return "-"
	}
	return strconv.FormatUint(uint64(id.index), 10) + ":" + strconv.FormatUint(uint64(id.generation), 10)
}

// ParseNodeID parses the form produced by String. "-" parses to the zero id.
func ParseNodeID(s string) (NodeID, error) {
	if s == "-" {
		return NodeID{}, nil
	}
	indexPart, genPart, ok := strings.Cut(s, ":")
	if !ok {
		return NodeID{}, fmt.Errorf("%w: %q is not index:generation", ErrHandleInvalid, s)
	}
	index, err := strconv.ParseUint(indexPart, 10, 32)
	if err != nil {
		return NodeID{}, fmt.Errorf("%w: bad index in %q", ErrHandleInvalid, s)
	}
	gen, err := strconv.ParseUint(genPart, 10, 32)
	if err != nil || gen == 0 {
		return NodeID{}, fmt.Errorf("%w: bad generation in %q", ErrHandleInvalid, s)
	}
	return NodeID{index: uint32(index), generation: uint32(gen)}, nil
}
