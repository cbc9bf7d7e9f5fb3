package systems

import (
	"image/color"

	"github.com/decker502/radialprogress/pkg/components"
	"github.com/decker502/radialprogress/pkg/ecs"
	"github.com/decker502/radialprogress/pkg/progress"
	"golang.org/x/image/math/f64"
)

// FanOutlinePath 一条待描绘的扇形轮廓
type FanOutlinePath struct {
	ID     ecs.EntityID
	Points [][2]float32
	Color  color.RGBA
	Width  float32
}

// RadialOutlineSystem 收集带 OutlineComponent 的进度实体的轮廓
// 只负责几何，描边由调用方用各自的后端完成
type RadialOutlineSystem struct {
	entityManager *ecs.EntityManager
}

// NewRadialOutlineSystem 创建轮廓系统
func NewRadialOutlineSystem(em *ecs.EntityManager) *RadialOutlineSystem {
	return &RadialOutlineSystem{entityManager: em}
}

// Outlines 返回所有轮廓（按实体 ID 顺序），没有顶点数据的实体被跳过
func (s *RadialOutlineSystem) Outlines(camera f64.Aff3) []FanOutlinePath {
	entities := ecs.GetEntitiesWith3[
		*components.RadialProgressComponent,
		*components.PositionComponent,
		*components.OutlineComponent,
	](s.entityManager)

	var paths []FanOutlinePath
	for _, id := range entities {
		rpc, _ := ecs.GetComponent[*components.RadialProgressComponent](s.entityManager, id)
		outline, _ := ecs.GetComponent[*components.OutlineComponent](s.entityManager, id)
		if rpc.Progress == nil {
			continue
		}

		node, ok := entityTransform(s.entityManager, id)
		if !ok {
			continue
		}
		points := FanOutline(rpc.Progress.VertexData(), progress.MulAff3(camera, node))
		if points == nil {
			continue
		}
		paths = append(paths, FanOutlinePath{ID: id, Points: points, Color: outline.Color, Width: outline.Width})
	}
	return paths
}
