// Package render 提供径向进度三角扇的渲染后端
package render

import (
	"image"
	"image/color"

	"github.com/decker502/radialprogress/pkg/progress"
)

// fanTriangle 变换到设备空间后的一个三角形
// 预先计算重心坐标所需的逆矩阵，用于覆盖测试和纹理坐标插值
type fanTriangle struct {
	p0, d1, d2 progress.Vec2 // 设备空间：起点与两条边向量
	t0, e1, e2 progress.Vec2 // 纹理空间：起点与两条边向量
	invDet     float32
	color      color.RGBA
	minX, minY float32
	maxX, maxY float32
}

// fanTriangles 将三角扇命令展开为设备空间三角形（跳过退化三角形）
func fanTriangles(cmd *progress.FanCommand) []fanTriangle {
	n := len(cmd.Vertices)
	if n < 3 {
		return nil
	}

	device := make([]progress.Vec2, n)
	for i, v := range cmd.Vertices {
		x, y := progress.TransformPoint(cmd.Transform, v.Position)
		device[i] = progress.Vec2{X: float32(x), Y: float32(y)}
	}

	tris := make([]fanTriangle, 0, n-2)
	for i := 1; i < n-1; i++ {
		p0, p1, p2 := device[0], device[i], device[i+1]
		d1, d2 := p1.Sub(p0), p2.Sub(p0)
		det := d1.X*d2.Y - d1.Y*d2.X
		if det == 0 {
			continue
		}
		t0 := cmd.Vertices[0].TexCoord
		tri := fanTriangle{
			p0:     p0,
			d1:     d1,
			d2:     d2,
			t0:     t0,
			e1:     cmd.Vertices[i].TexCoord.Sub(t0),
			e2:     cmd.Vertices[i+1].TexCoord.Sub(t0),
			invDet: 1 / det,
			color:  cmd.Vertices[0].Color,
			minX:   min(p0.X, p1.X, p2.X),
			minY:   min(p0.Y, p1.Y, p2.Y),
			maxX:   max(p0.X, p1.X, p2.X),
			maxY:   max(p0.Y, p1.Y, p2.Y),
		}
		tris = append(tris, tri)
	}
	return tris
}

// barycentric 返回点相对 d1、d2 的重心坐标
func (t *fanTriangle) barycentric(x, y float32) (b1, b2 float32) {
	vx, vy := x-t.p0.X, y-t.p0.Y
	b1 = (vx*t.d2.Y - vy*t.d2.X) * t.invDet
	b2 = (t.d1.X*vy - t.d1.Y*vx) * t.invDet
	return b1, b2
}

// contains 点是否落在三角形内（含边界）
func (t *fanTriangle) contains(x, y float32) bool {
	const eps = 1e-5
	if x < t.minX-eps || x > t.maxX+eps || y < t.minY-eps || y > t.maxY+eps {
		return false
	}
	b1, b2 := t.barycentric(x, y)
	return b1 >= -eps && b2 >= -eps && b1+b2 <= 1+eps
}

// texCoordAt 对设备空间中的点插值纹理坐标
func (t *fanTriangle) texCoordAt(x, y float32) progress.Vec2 {
	b1, b2 := t.barycentric(x, y)
	return t.t0.Add(t.e1.Scale(b1)).Add(t.e2.Scale(b2))
}

// sampleTexture 最近邻采样，经 program 处理后乘以顶点颜色，返回非预乘颜色
func sampleTexture(tex image.Image, uv progress.Vec2, tint color.RGBA, program string) color.NRGBA {
	if tex == nil {
		return color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: tint.A}
	}
	b := tex.Bounds()
	px := clampInt(int(uv.X), b.Min.X, b.Max.X-1)
	py := clampInt(int(uv.Y), b.Min.Y, b.Max.Y-1)
	c := shadeTexel(program, color.NRGBAModel.Convert(tex.At(px, py)).(color.NRGBA))
	return color.NRGBA{
		R: mul8(c.R, tint.R),
		G: mul8(c.G, tint.G),
		B: mul8(c.B, tint.B),
		A: mul8(c.A, tint.A),
	}
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
