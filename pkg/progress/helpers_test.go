package progress

import (
	"image"
	"image/color"
)

// stubSprite 测试用精灵：w×h 的本地四边形，纹理坐标与顶点一一对应
type stubSprite struct {
	w, h    float32
	rotated bool
	tint    color.RGBA
	opacity uint8
	blend   BlendMode
	tex     image.Image
}

func newStubSprite(w, h float32) *stubSprite {
	return &stubSprite{
		w:       w,
		h:       h,
		tint:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		opacity: 255,
		tex:     image.NewRGBA(image.Rect(0, 0, int(w), int(h))),
	}
}

func (s *stubSprite) Quad() Quad {
	c := color.RGBA{R: s.tint.R, G: s.tint.G, B: s.tint.B, A: s.opacity}
	corner := func(x, y float32) QuadCorner {
		return QuadCorner{Position: Vec2{x, y}, TexCoord: Vec2{x, y}, Color: c}
	}
	return Quad{
		BL: corner(0, s.h),
		BR: corner(s.w, s.h),
		TL: corner(0, 0),
		TR: corner(s.w, 0),
	}
}

func (s *stubSprite) IsTextureRectRotated() bool { return s.rotated }
func (s *stubSprite) Texture() image.Image        { return s.tex }
func (s *stubSprite) ContentSize() Size           { return Size{s.w, s.h} }
func (s *stubSprite) Color() color.RGBA           { return s.tint }
func (s *stubSprite) SetColor(c color.RGBA)       { s.tint = c }
func (s *stubSprite) Opacity() uint8              { return s.opacity }
func (s *stubSprite) SetOpacity(o uint8)          { s.opacity = o }
func (s *stubSprite) BlendMode() BlendMode        { return s.blend }

// recordingRenderer 记录收到的绘制命令
type recordingRenderer struct {
	commands []*FanCommand
}

func (r *recordingRenderer) AddCommand(cmd *FanCommand) {
	r.commands = append(r.commands, cmd)
}

// unitAlpha 将单位精灵上的顶点位置还原为 alpha 坐标（y 轴向上）
func unitAlpha(v Vertex) Vec2 {
	return Vec2{v.Position.X, 1 - v.Position.Y}
}

// newUnitProgress 创建挂载 1×1 精灵的进度组件
func newUnitProgress() (*RadialProgress, *stubSprite) {
	sp := newStubSprite(1, 1)
	return NewRadialProgress(sp), sp
}
