package render

import (
	"image"
	"image/color"

	"github.com/decker502/radialprogress/pkg/components"
	"github.com/decker502/radialprogress/pkg/progress"
)

// solidImage 创建纯色测试纹理
func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// quarterCommand 生成 8×8 纯色精灵 25% 进度的三角扇命令（右上象限）
func quarterCommand(c color.Color) *progress.FanCommand {
	sprite := components.NewSpriteComponent(solidImage(8, 8, c))
	rp := progress.NewRadialProgress(sprite)
	rp.SetPercentage(25)

	var captured *progress.FanCommand
	rp.Draw(rendererFunc(func(cmd *progress.FanCommand) { captured = cmd }), progress.IdentityTransform())
	return captured
}

type rendererFunc func(cmd *progress.FanCommand)

func (f rendererFunc) AddCommand(cmd *progress.FanCommand) { f(cmd) }
