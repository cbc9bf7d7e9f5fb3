package progress

import "github.com/chewxy/math32"

// Vec2 二维向量（float32，与顶点缓冲区精度一致）
type Vec2 struct {
	X, Y float32
}

// Size 内容尺寸（宽、高）
type Size struct {
	Width, Height float32
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub 向量相减
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale 向量缩放
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Lerp 线性插值：alpha=0 返回 v，alpha=1 返回 o
func (v Vec2) Lerp(o Vec2, alpha float32) Vec2 {
	return v.Scale(1 - alpha).Add(o.Scale(alpha))
}

// RotateByAngle 绕 pivot 逆时针旋转 angle 弧度
func (v Vec2) RotateByAngle(pivot Vec2, angle float32) Vec2 {
	sin, cos := math32.Sincos(angle)
	d := v.Sub(pivot)
	return pivot.Add(Vec2{d.X*cos - d.Y*sin, d.X*sin + d.Y*cos})
}

// Clamp 将两个分量分别限制在 [lo, hi] 范围内
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clampf(v.X, lo.X, hi.X), clampf(v.Y, lo.Y, hi.Y)}
}

// cross2 计算 AB 与 CD 的二维叉积
func cross2(a, b, c, d Vec2) float32 {
	return (d.Y-c.Y)*(b.X-a.X) - (d.X-c.X)*(b.Y-a.Y)
}

// lineIntersect 求直线 AB 与直线 CD 的交点参数
//
// 返回：
//   - s: 交点在 AB 上的参数（A + s*(B-A)）
//   - t: 交点在 CD 上的参数（C + t*(D-C)）
//   - ok: 任一线段退化为点或两直线平行时返回 false
func lineIntersect(a, b, c, d Vec2) (s, t float32, ok bool) {
	if a == b || c == d {
		return 0, 0, false
	}
	denom := cross2(a, b, c, d)
	if denom == 0 {
		return 0, 0, false
	}
	s = cross2(c, d, c, a) / denom
	t = cross2(a, b, c, a) / denom
	return s, t, true
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
