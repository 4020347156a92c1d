package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxValid(t *testing.T) {
	assert.True(t, (&Box{X1: 0, Y1: 0, X2: 10, Y2: 20}).Valid())

	var absent *Box
	assert.False(t, absent.Valid())
	assert.False(t, (&Box{}).Valid(), "zero extent box is not a detection")
	assert.False(t, (&Box{X1: 10, Y1: 0, X2: 0, Y2: 20}).Valid(), "inverted box")
	assert.False(t, (&Box{X1: math.NaN(), Y1: 0, X2: 10, Y2: 20}).Valid())
	assert.False(t, (&Box{X1: 0, Y1: 0, X2: math.Inf(1), Y2: 20}).Valid())
}

func TestBoxCenter(t *testing.T) {
	c := (&Box{X1: 0, Y1: 0, X2: 10, Y2: 20}).Center()
	require.NotNil(t, c)
	assert.Equal(t, 5.0, c.X)
	assert.Equal(t, 10.0, c.Y)

	var absent *Box
	assert.Nil(t, absent.Center())
	assert.Nil(t, (&Box{X1: 3, Y1: 3, X2: 1, Y2: 1}).Center())
}

func TestCenterDistance(t *testing.T) {
	b1 := &Box{X1: -1, Y1: -1, X2: 1, Y2: 1}  //center (0,0)
	b2 := &Box{X1: 2, Y1: 3, X2: 4, Y2: 5}    //center (3,4)

	d, ok := CenterDistance(b1, b2)
	require.True(t, ok)
	assert.InDelta(t, 5.0, d, 1e-9)

	_, ok = CenterDistance(b1, nil)
	assert.False(t, ok)
	_, ok = CenterDistance(nil, b2)
	assert.False(t, ok)
}
