package components

import "github.com/decker502/radialprogress/pkg/progress"

// RadialProgressComponent 径向进度实体的数据
//
// Progress 持有 SpriteComponent 的引用（同一实体上的精灵），
// 渲染系统每帧通过它提交三角扇。
type RadialProgressComponent struct {
	// Progress 径向进度几何引擎
	Progress *progress.RadialProgress
	// Label 展示用名称
	Label string
}
