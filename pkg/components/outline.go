package components

import "image/color"

// OutlineComponent 标记需要描绘扇形轮廓的进度实体
type OutlineComponent struct {
	Color color.RGBA
	Width float32
}
