// Package progress 实现径向进度（时钟擦除）几何引擎
//
// 给定百分比、旋转中心、起始角和方向，计算揭示精灵对应比例所需的最少三角扇。
package progress

import (
	"image/color"

	"golang.org/x/image/math/f64"
)

// DebugRadial 调试开关（启用后输出每次几何求解的详细日志）
var DebugRadial = false

// RadialProgress 径向进度组件
//
// 持有精灵的引用（不拥有），只拥有自己的顶点缓冲区。
// 所有方法都应在同一个帧循环 goroutine 中调用。
type RadialProgress struct {
	midpoint         Vec2
	percentage       float32
	startAngle       float32
	reverseDirection bool
	sprite           Sprite

	vertexData []Vertex

	// 节点属性
	contentSize Size
	anchorPoint Vec2
	globalZ     float32
	program     string

	// 每帧复用的绘制命令
	command FanCommand
}

// NewRadialProgress 创建径向进度组件
// sprite 可以为 nil，之后通过 SetSprite 设置
func NewRadialProgress(sprite Sprite) *RadialProgress {
	rp := &RadialProgress{
		anchorPoint: Vec2{0.5, 0.5},
		program:     ProgramPositionTextureColor,
	}
	rp.SetMidpoint(Vec2{0.5, 0.5})
	rp.SetSprite(sprite)
	return rp
}

// Percentage 返回当前百分比 [0, 100]
func (rp *RadialProgress) Percentage() float32 {
	return rp.percentage
}

// SetPercentage 设置百分比
// 值未变化时不做任何事；否则限制到 [0,100] 并重新计算几何
func (rp *RadialProgress) SetPercentage(percentage float32) {
	if rp.percentage == percentage {
		return
	}
	rp.percentage = clampf(percentage, 0, 100)
	rp.updateRadial()
}

// StartAngle 返回未规范化的起始角（度）
func (rp *RadialProgress) StartAngle() float32 {
	return rp.startAngle
}

// SetStartAngle 设置起始角（度），总是重新计算几何
func (rp *RadialProgress) SetStartAngle(angle float32) {
	rp.startAngle = angle
	rp.updateRadial()
}

// IsReverseDirection 是否反向扫描
func (rp *RadialProgress) IsReverseDirection() bool {
	return rp.reverseDirection
}

// SetReverseDirection 设置扫描方向
// 方向改变时丢弃顶点缓冲区，不会自动重新计算
func (rp *RadialProgress) SetReverseDirection(reverse bool) {
	if rp.reverseDirection == reverse {
		return
	}
	rp.reverseDirection = reverse
	rp.discardVertexData()
}

// Midpoint 返回旋转中心（alpha 空间）
func (rp *RadialProgress) Midpoint() Vec2 {
	return rp.midpoint
}

// SetMidpoint 设置旋转中心，分量限制在 [0,1]
// 不会自动重新计算，调用方随后应设置百分比或起始角
func (rp *RadialProgress) SetMidpoint(midpoint Vec2) {
	rp.midpoint = midpoint.Clamp(Vec2{0, 0}, Vec2{1, 1})
}

// Sprite 返回当前精灵
func (rp *RadialProgress) Sprite() Sprite {
	return rp.sprite
}

// SetSprite 设置要揭示的精灵
// nil 或相同精灵被忽略；新精灵会更新内容尺寸并丢弃顶点缓冲区（不自动重新计算）
func (rp *RadialProgress) SetSprite(sprite Sprite) {
	if sprite == nil || rp.sprite == sprite {
		return
	}
	rp.sprite = sprite
	rp.contentSize = sprite.ContentSize()
	rp.discardVertexData()
}

// Refresh 立即重新计算几何
// 用于 SetSprite/SetMidpoint/SetReverseDirection 之后
func (rp *RadialProgress) Refresh() {
	rp.updateRadial()
}

// VertexData 返回当前顶点缓冲区（未计算或无精灵时为 nil）
// 返回的切片与组件共享底层数组
func (rp *RadialProgress) VertexData() []Vertex {
	return rp.vertexData
}

// Color 返回精灵着色，无精灵时返回黑色
func (rp *RadialProgress) Color() color.RGBA {
	if rp.sprite == nil {
		return color.RGBA{A: 0xff}
	}
	return rp.sprite.Color()
}

// SetColor 设置精灵着色，只刷新顶点颜色
func (rp *RadialProgress) SetColor(c color.RGBA) {
	if rp.sprite != nil {
		rp.sprite.SetColor(c)
	}
	rp.updateColor()
}

// Opacity 返回精灵不透明度，无精灵时返回 0
func (rp *RadialProgress) Opacity() uint8 {
	if rp.sprite == nil {
		return 0
	}
	return rp.sprite.Opacity()
}

// SetOpacity 设置精灵不透明度，只刷新顶点颜色
func (rp *RadialProgress) SetOpacity(opacity uint8) {
	if rp.sprite != nil {
		rp.sprite.SetOpacity(opacity)
	}
	rp.updateColor()
}

// ContentSize 返回内容尺寸（来自精灵）
func (rp *RadialProgress) ContentSize() Size {
	return rp.contentSize
}

// AnchorPoint 返回锚点（默认 (0.5, 0.5)）
func (rp *RadialProgress) AnchorPoint() Vec2 {
	return rp.anchorPoint
}

// SetAnchorPoint 设置锚点
func (rp *RadialProgress) SetAnchorPoint(anchor Vec2) {
	rp.anchorPoint = anchor
}

// GlobalZOrder 返回全局绘制顺序
func (rp *RadialProgress) GlobalZOrder() float32 {
	return rp.globalZ
}

// SetGlobalZOrder 设置全局绘制顺序
func (rp *RadialProgress) SetGlobalZOrder(z float32) {
	rp.globalZ = z
}

// Program 返回着色程序名
func (rp *RadialProgress) Program() string {
	return rp.program
}

// SetProgram 设置着色程序名（由渲染器解析）
func (rp *RadialProgress) SetProgram(name string) {
	rp.program = name
}

// Draw 向渲染器提交三角扇绘制命令
// 没有顶点数据或精灵时直接返回
func (rp *RadialProgress) Draw(renderer Renderer, transform f64.Aff3) {
	if rp.vertexData == nil || rp.sprite == nil {
		return
	}

	rp.command = FanCommand{
		Vertices:  rp.vertexData,
		Texture:   rp.sprite.Texture(),
		Blend:     rp.sprite.BlendMode(),
		Program:   rp.program,
		Transform: transform,
		GlobalZ:   rp.globalZ,
	}
	renderer.AddCommand(&rp.command)
}
