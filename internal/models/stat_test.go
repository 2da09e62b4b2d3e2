package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatValue_At(t *testing.T) {
	tests := []struct {
		name  string
		stat  StatValue
		level int
		want  int
	}{
		{"zero value", StatValue{}, 4, 0},
		{"scalar ignores level", Scalar(5), 0, 5},
		{"scalar high level", Scalar(5), 9, 5},
		{"leveled first", Leveled(1, 2, 3), 0, 1},
		{"leveled last", Leveled(1, 2, 3), 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stat.At(tt.level))
		})
	}
}

func TestStatValue_LeveledCopiesInput(t *testing.T) {
	values := []int{1, 2, 3}
	stat := Leveled(values...)
	values[0] = 99

	assert.Equal(t, 1, stat.At(0))
	assert.Equal(t, 3, stat.Levels())
	assert.True(t, stat.IsLeveled())
	assert.False(t, Scalar(1).IsLeveled())
	assert.Zero(t, Scalar(1).Levels())
}

func TestStatValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    StatValue
		wantErr bool
	}{
		{"number", `7`, Scalar(7), false},
		{"list", `[1, 2, 3]`, Leveled(1, 2, 3), false},
		{"null", `null`, StatValue{}, false},
		{"string", `"7"`, StatValue{}, true},
		{"list of strings", `["a"]`, StatValue{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StatValue
			err := json.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatValue_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Speed  StatValue `yaml:"speed"`
		Health StatValue `yaml:"health"`
		Magic  StatValue `yaml:"magic"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("speed: [1, 2]\nhealth: 4\nmagic: ~\n"), &doc))

	assert.Equal(t, Leveled(1, 2), doc.Speed)
	assert.Equal(t, Scalar(4), doc.Health)
	assert.Equal(t, StatValue{}, doc.Magic)

	err := yaml.Unmarshal([]byte("speed: {a: 1}\n"), &doc)
	assert.Error(t, err)
}

func TestStatValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A StatValue `json:"a"`
		B StatValue `json:"b"`
	}{Scalar(3), Leveled(4, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 3, "b": [4, 5]}`, string(data))
}

func TestStatValue_EmptyLeveledKeepsItsShape(t *testing.T) {
	data, err := json.Marshal(Leveled())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	var fromJSON StatValue
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.True(t, fromJSON.IsLeveled())
	assert.Zero(t, fromJSON.Levels())

	var fromFile StatValue
	require.NoError(t, json.Unmarshal([]byte(`[]`), &fromFile))
	again, err := json.Marshal(fromFile)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(again))

	out, err := yaml.Marshal(struct {
		Speed StatValue `yaml:"speed"`
	}{Leveled()})
	require.NoError(t, err)

	var doc struct {
		Speed StatValue `yaml:"speed"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.True(t, doc.Speed.IsLeveled())
}
