package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMapSetGet(t *testing.T) {
	m := NewMap[int]()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))

	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("z")
	assert.False(t, ok)
}

func TestMapReplaceKeepsPosition(t *testing.T) {
	m := NewMap[string]()
	m.Set("first", "1")
	m.Set("second", "2")
	m.Set("first", "one")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"first", "second"}, m.Keys())

	v, _ := m.Get("first")
	assert.Equal(t, "one", v)
}

func TestMapZeroValueUsable(t *testing.T) {
	var m Map[int]
	m.Set("x", 1)
	assert.True(t, m.Has("x"))
}

func TestMapNilSafe(t *testing.T) {
	var m *Map[int]
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.False(t, m.Has("x"))
}

func TestMapYAMLOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "zebra: 1\napple: 2\nmango: 3\n", string(out))
}

func TestMapJSONOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":2,"mango":3}`, string(out))
}

func TestMapNested(t *testing.T) {
	inner := NewMap[int]()
	inner.Set("y", 2)
	inner.Set("x", 1)

	outer := NewMap[*Map[int]]()
	outer.Set("point", inner)

	yout, err := yaml.Marshal(outer)
	require.NoError(t, err)
	assert.Equal(t, "point:\n    y: 2\n    x: 1\n", string(yout))

	jout, err := json.Marshal(outer)
	require.NoError(t, err)
	assert.Equal(t, `{"point":{"y":2,"x":1}}`, string(jout))
}

func TestEmptyMapRendersEmptyMapping(t *testing.T) {
	m := NewMap[int]()

	yout, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(yout))

	jout, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(jout))
}
