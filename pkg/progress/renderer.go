package progress

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f64"
)

// ProgramPositionTextureColor 默认着色程序：位置 + 纹理 + 顶点颜色
const ProgramPositionTextureColor = "position_texture_color"

// Vertex 三角扇的一个顶点
type Vertex struct {
	Position Vec2
	Color    color.RGBA
	TexCoord Vec2
}

// FanCommand 一次三角扇绘制命令
//
// Vertices 与进度组件共享底层数组（不复制），
// 渲染器必须在下一次几何重算之前消费完该命令。
type FanCommand struct {
	Vertices  []Vertex
	Texture   image.Image
	Blend     BlendMode
	Program   string
	Transform f64.Aff3
	GlobalZ   float32
}

// Renderer 接收绘制命令（每帧提交，不关心返回值）
type Renderer interface {
	AddCommand(cmd *FanCommand)
}

// IdentityTransform 单位仿射矩阵
func IdentityTransform() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// TransformPoint 对点应用仿射变换
func TransformPoint(m f64.Aff3, p Vec2) (x, y float64) {
	px, py := float64(p.X), float64(p.Y)
	return m[0]*px + m[1]*py + m[2], m[3]*px + m[4]*py + m[5]
}

// MulAff3 返回 a*b（先应用 b，再应用 a）
func MulAff3(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Triangles 将三角扇展开为三角形索引（0,i,i+1）
// 顶点数少于 3 时返回 nil
func (c *FanCommand) Triangles() []uint16 {
	if len(c.Vertices) < 3 {
		return nil
	}
	return AppendFanIndices(make([]uint16, 0, (len(c.Vertices)-2)*3), len(c.Vertices))
}

// AppendFanIndices 将 count 个顶点的三角扇索引追加到 dst
func AppendFanIndices(dst []uint16, count int) []uint16 {
	for i := 1; i < count-1; i++ {
		dst = append(dst, 0, uint16(i), uint16(i+1))
	}
	return dst
}
