package render

import (
	"image/color"
	"testing"

	"github.com/decker502/radialprogress/pkg/progress"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendFanVertices(t *testing.T) {
	cmd := quarterCommand(color.White)
	cmd.Transform = progress.IdentityTransform()
	cmd.Transform[0] = 2 // X 方向放大两倍
	cmd.Transform[2] = 10

	vs := appendFanVertices(nil, cmd)
	require.Len(t, vs, 4)

	// 第一个顶点是中心 (4,4)
	assert.InDelta(t, 18, vs[0].DstX, 1e-3)
	assert.InDelta(t, 4, vs[0].DstY, 1e-3)
	assert.InDelta(t, 4, vs[0].SrcX, 1e-3)
	assert.InDelta(t, 4, vs[0].SrcY, 1e-3)
	assert.Equal(t, float32(1), vs[0].ColorA)
}

func TestEbitenRendererQueue(t *testing.T) {
	r := NewEbitenRenderer()
	cmd := quarterCommand(color.White)

	r.AddCommand(cmd)
	r.AddCommand(cmd)
	assert.Equal(t, 2, r.Pending())
}

func TestShaderForUnknownProgram(t *testing.T) {
	r := NewEbitenRenderer()

	assert.Nil(t, r.shaderFor(""))
	assert.Nil(t, r.shaderFor(progress.ProgramPositionTextureColor))
	assert.Nil(t, r.shaderFor("missing"))
	assert.True(t, r.warnedPrograms["missing"])
}

func TestEbitenBlend(t *testing.T) {
	assert.Equal(t, ebiten.BlendSourceOver, ebitenBlend(progress.BlendNormal))

	additive := ebitenBlend(progress.BlendAdditive)
	assert.Equal(t, ebiten.BlendFactorOne, additive.BlendFactorDestinationRGB)
	assert.Equal(t, ebiten.BlendOperationAdd, additive.BlendOperationRGB)
}

func TestShaderForRegisteredProgram(t *testing.T) {
	r := NewEbitenRenderer()
	shader := &ebiten.Shader{}
	r.RegisterProgram(ProgramGrayscale, shader)

	assert.Same(t, shader, r.shaderFor(ProgramGrayscale))
	assert.False(t, r.warnedPrograms[ProgramGrayscale])
}
