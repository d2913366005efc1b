// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seed

import (
	"errors"
	"fmt"
	"strings"
)

// Direction selects a child at one step of a descent into the source tree.
type Direction byte

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Path is a coordinate into the source tree: the sequence of directions
// taken from the root to reach a node.
type Path []Direction

// String renders the path in the compact form consumed by ParsePath, e.g.
// "LRRL". The empty path renders as the empty string.
func (p Path) String() string {
	sb := strings.Builder{}
	sb.Grow(len(p))
	for _, d := range p {
		sb.WriteString(d.String())
	}
	return sb.String()
}

var errInvalidDirection = errors.New("invalid path direction")

// ParsePath inverts Path.String.
func ParsePath(s string) (Path, error) {
	path := make(Path, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'L':
			path = append(path, Left)
		case 'R':
			path = append(path, Right)
		default:
			return nil, fmt.Errorf("%w %q at offset %d", errInvalidDirection, s[i], i)
		}
	}
	return path, nil
}

// FollowPath re-derives the node of [src]'s tree addressed by [path],
// taking the first component of each split at Left and the second at Right.
// An empty path returns [src] unchanged. The walk discards the words of the
// intermediate nodes; it is a pure function of its arguments, so a recorded
// path replays the same sub-source from the same root.
func FollowPath(path Path, src Source) Source {
	for _, d := range path {
		left, right := src.Split()
		if d == Left {
			src = left
		} else {
			src = right
		}
	}
	return src
}
