package material_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stillife-renderer/internal/material"
	"stillife-renderer/internal/mathutil"
)

func TestAddAndFind(t *testing.T) {
	reg := material.NewRegistry()
	require.NoError(t, reg.Add(material.Material{
		Tag:       "clay",
		Diffuse:   mathutil.Vec3{1, 1, 1},
		Specular:  mathutil.Vec3{0.25, 0.25, 0.25},
		Shininess: 16,
	}))

	m, ok := reg.Find("clay")
	require.True(t, ok)
	assert.Equal(t, 16.0, m.Shininess)
}

func TestFindMissOnEmptyRegistry(t *testing.T) {
	reg := material.NewRegistry()
	m, ok := reg.Find("anything")
	assert.False(t, ok)
	assert.Zero(t, m)
}

func TestFindMiss(t *testing.T) {
	reg := material.NewRegistry()
	require.NoError(t, reg.Add(material.Material{Tag: "clay", Shininess: 16}))

	_, ok := reg.Find("velvet")
	assert.False(t, ok)
}

func TestDuplicateRejected(t *testing.T) {
	reg := material.NewRegistry()
	require.NoError(t, reg.Add(material.Material{Tag: "clay"}))
	require.Error(t, reg.Add(material.Material{Tag: "clay"}))
	assert.Equal(t, 1, reg.Len())
}

func TestEmptyTagRejected(t *testing.T) {
	reg := material.NewRegistry()
	require.Error(t, reg.Add(material.Material{}))
}

func TestDefault(t *testing.T) {
	d := material.Default()
	assert.Equal(t, mathutil.Vec3{1, 1, 1}, d.Diffuse)
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, d.Specular)
}
