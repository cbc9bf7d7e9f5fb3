package components

import (
	"image"
	"image/color"

	"github.com/decker502/radialprogress/pkg/progress"
)

// SpriteComponent 图像精灵，实现 progress.Sprite
//
// SrcRect 是纹理中的源区域。Rotated 为 true 时，源区域在图集中
// 顺时针旋转了 90 度存放（内容尺寸取源区域的高和宽）。
type SpriteComponent struct {
	Image   image.Image
	SrcRect image.Rectangle
	Rotated bool
	Blend   progress.BlendMode

	tint    color.RGBA
	opacity uint8
}

// NewSpriteComponent 使用整张图片创建精灵
func NewSpriteComponent(img image.Image) *SpriteComponent {
	return NewAtlasSpriteComponent(img, img.Bounds(), false)
}

// NewAtlasSpriteComponent 使用图集中的一块区域创建精灵
func NewAtlasSpriteComponent(img image.Image, src image.Rectangle, rotated bool) *SpriteComponent {
	return &SpriteComponent{
		Image:   img,
		SrcRect: src,
		Rotated: rotated,
		tint:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		opacity: 255,
	}
}

// ContentSize 返回精灵显示尺寸
func (s *SpriteComponent) ContentSize() progress.Size {
	w, h := float32(s.SrcRect.Dx()), float32(s.SrcRect.Dy())
	if s.Rotated {
		w, h = h, w
	}
	return progress.Size{Width: w, Height: h}
}

// Quad 计算四个角的本地顶点、纹理坐标和颜色
func (s *SpriteComponent) Quad() progress.Quad {
	size := s.ContentSize()
	w, h := size.Width, size.Height
	x0, y0 := float32(s.SrcRect.Min.X), float32(s.SrcRect.Min.Y)
	x1, y1 := float32(s.SrcRect.Max.X), float32(s.SrcRect.Max.Y)
	c := color.RGBA{R: s.tint.R, G: s.tint.G, B: s.tint.B, A: s.opacity}

	q := progress.Quad{
		BL: progress.QuadCorner{Position: progress.Vec2{X: 0, Y: h}, Color: c},
		BR: progress.QuadCorner{Position: progress.Vec2{X: w, Y: h}, Color: c},
		TL: progress.QuadCorner{Position: progress.Vec2{X: 0, Y: 0}, Color: c},
		TR: progress.QuadCorner{Position: progress.Vec2{X: w, Y: 0}, Color: c},
	}
	if s.Rotated {
		// 显示的左边对应图集区域的顶行，显示的底边对应图集区域的左列
		q.BL.TexCoord = progress.Vec2{X: x0, Y: y0}
		q.BR.TexCoord = progress.Vec2{X: x0, Y: y1}
		q.TL.TexCoord = progress.Vec2{X: x1, Y: y0}
		q.TR.TexCoord = progress.Vec2{X: x1, Y: y1}
	} else {
		q.BL.TexCoord = progress.Vec2{X: x0, Y: y1}
		q.BR.TexCoord = progress.Vec2{X: x1, Y: y1}
		q.TL.TexCoord = progress.Vec2{X: x0, Y: y0}
		q.TR.TexCoord = progress.Vec2{X: x1, Y: y0}
	}
	return q
}

func (s *SpriteComponent) IsTextureRectRotated() bool    { return s.Rotated }
func (s *SpriteComponent) Texture() image.Image          { return s.Image }
func (s *SpriteComponent) BlendMode() progress.BlendMode { return s.Blend }

// Color 返回着色（A 通道无意义，不透明度见 Opacity）
func (s *SpriteComponent) Color() color.RGBA {
	return s.tint
}

// SetColor 设置着色
func (s *SpriteComponent) SetColor(c color.RGBA) {
	s.tint = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (s *SpriteComponent) Opacity() uint8 {
	return s.opacity
}

func (s *SpriteComponent) SetOpacity(opacity uint8) {
	s.opacity = opacity
}
