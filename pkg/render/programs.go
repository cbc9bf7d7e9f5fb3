package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ProgramGrayscale 灰度程序：纹理按亮度去色后再乘以顶点颜色
const ProgramGrayscale = "grayscale"

// grayscaleKage ProgramGrayscale 的 GPU 实现
const grayscaleKage = `//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	l := dot(c.rgb, vec3(0.299, 0.587, 0.114))
	return vec4(l, l, l, c.a) * color
}
`

// RegisterBuiltinPrograms 编译并注册内置着色程序
// 需要在 ebiten 可用的环境中调用（创建窗口之前即可）
func (r *EbitenRenderer) RegisterBuiltinPrograms() error {
	shader, err := ebiten.NewShader([]byte(grayscaleKage))
	if err != nil {
		return fmt.Errorf("failed to compile %s program: %w", ProgramGrayscale, err)
	}
	r.RegisterProgram(ProgramGrayscale, shader)
	return nil
}

// shadeTexel 软件渲染器中的程序实现，未知程序原样返回
func shadeTexel(program string, c color.NRGBA) color.NRGBA {
	switch program {
	case ProgramGrayscale:
		l := uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000)
		return color.NRGBA{R: l, G: l, B: l, A: c.A}
	default:
		return c
	}
}
