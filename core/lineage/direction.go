package lineage

import (
	"fmt"
	"strings"
)

// Direction is the wire value of a lineage traversal direction.
type Direction string

const (
	DirectionUpstream   Direction = "INPUT"
	DirectionDownstream Direction = "OUTPUT"
	DirectionBoth       Direction = "BOTH"
)

func (dir Direction) IsValid() bool {
	switch dir {
	case DirectionUpstream, DirectionDownstream, DirectionBoth:
		return true
	default:
		return false
	}
}

func (dir Direction) String() string {
	switch dir {
	case DirectionUpstream:
		return "upstream"
	case DirectionDownstream:
		return "downstream"
	case DirectionBoth:
		return "both"
	default:
		return string(dir)
	}
}

// ParseDirection accepts either the wire value or the lowercase name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upstream", "input":
		return DirectionUpstream, nil
	case "downstream", "output":
		return DirectionDownstream, nil
	case "both":
		return DirectionBoth, nil
	}
	return "", fmt.Errorf("invalid lineage direction %q, only support \"upstream downstream both\"", s)
}
