package components

// PositionComponent 实体在屏幕空间的位置（锚点所在的位置）
type PositionComponent struct {
	X, Y float64
}

// ScaleComponent 进度节点的缩放，可选
// 缩放以锚点为中心，缺省时视为 1
type ScaleComponent struct {
	ScaleX, ScaleY float64
}

// NewUniformScale 创建等比缩放
func NewUniformScale(scale float64) *ScaleComponent {
	return &ScaleComponent{ScaleX: scale, ScaleY: scale}
}
