package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StatValue is a stat entry of a card definition. It is either a constant
// that applies at every level or a sequence indexed by zero-based level.
// The zero value is the constant 0.
type StatValue struct {
	value   int
	levels  []int
	leveled bool
}

// Scalar returns a stat that resolves to v at every level.
func Scalar(v int) StatValue {
	return StatValue{value: v}
}

// Leveled returns a stat with one value per level, starting at level 1.
// The sequence is never nil, so an empty one still encodes as a list.
func Leveled(values ...int) StatValue {
	return StatValue{levels: append([]int{}, values...), leveled: true}
}

func (s StatValue) IsLeveled() bool {
	return s.leveled
}

// Levels returns the length of a leveled stat, 0 for a constant.
func (s StatValue) Levels() int {
	return len(s.levels)
}

// At resolves the stat for a zero-based level. A constant ignores the
// level; a leveled stat indexes its sequence without clamping, so the
// caller must keep the level inside Levels().
func (s StatValue) At(level int) int {
	if !s.leveled {
		return s.value
	}
	return s.levels[level]
}

func (s StatValue) String() string {
	if s.leveled {
		return fmt.Sprint(s.levels)
	}
	return fmt.Sprint(s.value)
}

func (s StatValue) MarshalJSON() ([]byte, error) {
	if s.leveled {
		return json.Marshal(s.levels)
	}
	return json.Marshal(s.value)
}

func (s *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = StatValue{}
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var levels []int
		if err := json.Unmarshal(data, &levels); err != nil {
			return fmt.Errorf("leveled stat: %w", err)
		}
		*s = Leveled(levels...)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("scalar stat: %w", err)
	}
	*s = Scalar(v)
	return nil
}

func (s StatValue) MarshalYAML() (interface{}, error) {
	if s.leveled {
		return s.levels, nil
	}
	return s.value, nil
}

func (s *StatValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var levels []int
		if err := node.Decode(&levels); err != nil {
			return fmt.Errorf("leveled stat: %w", err)
		}
		*s = Leveled(levels...)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = StatValue{}
			return nil
		}
		var v int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("scalar stat: %w", err)
		}
		*s = Scalar(v)
	default:
		return fmt.Errorf("stat at line %d: expected a number or a list", node.Line)
	}
	return nil
}
