package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundaryCornerTables(t *testing.T) {
	rp, _ := newUnitProgress()

	forward := []Vec2{{1, 1}, {1, 0}, {0, 0}, {0, 1}}
	for i, want := range forward {
		assert.Equal(t, want, rp.boundaryCorner(i), "forward corner %d", i)
	}

	rp.SetReverseDirection(true)
	reversed := []Vec2{{0, 1}, {0, 0}, {1, 0}, {1, 1}}
	for i, want := range reversed {
		assert.Equal(t, want, rp.boundaryCorner(i), "reversed corner %d", i)
	}

	assert.Equal(t, Vec2{}, rp.boundaryCorner(4))
	assert.Equal(t, Vec2{}, rp.boundaryCorner(-1))
}

func TestAlphaPointMapping(t *testing.T) {
	sp := newStubSprite(200, 100)
	rp := NewRadialProgress(sp)

	// y 轴向上的 alpha 映射到 y 轴向下的本地坐标
	assert.Equal(t, Vec2{0, 100}, rp.VertexFromAlphaPoint(Vec2{0, 0}))
	assert.Equal(t, Vec2{200, 0}, rp.VertexFromAlphaPoint(Vec2{1, 1}))
	assert.Equal(t, Vec2{50, 25}, rp.VertexFromAlphaPoint(Vec2{0.25, 0.75}))

	assert.Equal(t, Vec2{50, 25}, rp.TextureCoordFromAlphaPoint(Vec2{0.25, 0.75}))
}

func TestRotatedTextureSwapsAxes(t *testing.T) {
	sp := newStubSprite(200, 100)
	sp.rotated = true
	rp := NewRadialProgress(sp)

	// 纹理映射交换 x/y，顶点映射不受影响
	assert.Equal(t, Vec2{150, 75}, rp.TextureCoordFromAlphaPoint(Vec2{0.25, 0.75}))
	assert.Equal(t, Vec2{50, 25}, rp.VertexFromAlphaPoint(Vec2{0.25, 0.75}))
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{45, 45},
		{-90, 270},
		{-720, 0},
		{360, 0},
		{450, 90},
		{1000, 280},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, normalizeAngle(tt.in), tolerance, "normalizeAngle(%v)", tt.in)
	}
}

func TestLineIntersect(t *testing.T) {
	s, tt, ok := lineIntersect(Vec2{0, 0}, Vec2{2, 0}, Vec2{1, 1}, Vec2{1, 0})
	assert.True(t, ok)
	assert.InDelta(t, 0.5, s, tolerance)
	assert.InDelta(t, 1.0, tt, tolerance)

	// 平行
	_, _, ok = lineIntersect(Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, Vec2{1, 1})
	assert.False(t, ok)

	// 退化线段
	_, _, ok = lineIntersect(Vec2{0, 0}, Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 1})
	assert.False(t, ok)
}
