package progress

import (
	"image"
	"image/color"
)

// QuadCorner 四边形的一个角：顶点位置、纹理坐标与颜色
type QuadCorner struct {
	Position Vec2
	TexCoord Vec2
	Color    color.RGBA
}

// Quad 精灵的四个角
// 顶点坐标为本地坐标（y 轴向下，BL 位于 (0, h)，TR 位于 (w, 0)）
// 纹理坐标为源图像像素坐标
type Quad struct {
	BL, BR, TL, TR QuadCorner
}

// BlendMode 混合模式
type BlendMode int

const (
	// BlendNormal 普通 Alpha 混合
	BlendNormal BlendMode = iota
	// BlendAdditive 加法混合（发光效果）
	BlendAdditive
)

// Sprite 被揭示的精灵（外部对象，进度组件只持有引用，不负责其生命周期）
type Sprite interface {
	// Quad 返回当前四个角的顶点、纹理坐标与颜色
	Quad() Quad
	// IsTextureRectRotated 源区域在图集中是否顺时针旋转了 90 度
	IsTextureRectRotated() bool
	// Texture 返回纹理
	Texture() image.Image
	// ContentSize 返回内容尺寸
	ContentSize() Size
	// Color 返回着色（忽略 A 通道）
	Color() color.RGBA
	SetColor(c color.RGBA)
	Opacity() uint8
	SetOpacity(opacity uint8)
	BlendMode() BlendMode
}
