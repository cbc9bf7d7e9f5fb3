package systems

import (
	"github.com/decker502/radialprogress/pkg/components"
	"github.com/decker502/radialprogress/pkg/ecs"
	"github.com/decker502/radialprogress/pkg/progress"
	"golang.org/x/image/math/f64"
)

// RadialProgressRenderSystem 每帧把所有径向进度实体提交给渲染器
//
// 节点变换 = 平移(Position) × 缩放(ScaleComponent，可选) × 平移(-锚点×内容尺寸)
type RadialProgressRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRadialProgressRenderSystem 创建一个新的 RadialProgressRenderSystem 实例
func NewRadialProgressRenderSystem(em *ecs.EntityManager) *RadialProgressRenderSystem {
	return &RadialProgressRenderSystem{entityManager: em}
}

// Draw 按实体 ID 顺序提交绘制命令
// 参数:
//   - renderer: 接收三角扇命令的渲染器
//   - camera: 作用在所有节点之上的变换（如窗口偏移）
func (s *RadialProgressRenderSystem) Draw(renderer progress.Renderer, camera f64.Aff3) {
	entities := ecs.GetEntitiesWith2[*components.RadialProgressComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		rpc, _ := ecs.GetComponent[*components.RadialProgressComponent](s.entityManager, id)
		if rpc.Progress == nil {
			continue
		}

		node, _ := s.EntityTransform(id)
		rpc.Progress.Draw(renderer, progress.MulAff3(camera, node))
	}
}

// EntityTransform 返回实体的节点变换（位置、可选缩放、锚点）
// 实体缺少进度或位置组件时返回 false
func (s *RadialProgressRenderSystem) EntityTransform(id ecs.EntityID) (f64.Aff3, bool) {
	return entityTransform(s.entityManager, id)
}

func entityTransform(em *ecs.EntityManager, id ecs.EntityID) (f64.Aff3, bool) {
	rpc, ok := ecs.GetComponent[*components.RadialProgressComponent](em, id)
	if !ok || rpc.Progress == nil {
		return progress.IdentityTransform(), false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return progress.IdentityTransform(), false
	}

	scaleX, scaleY := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
		scaleX, scaleY = scale.ScaleX, scale.ScaleY
	}
	return NodeTransform(rpc.Progress, pos.X, pos.Y, scaleX, scaleY), true
}

// FanOutline 返回扇形轮廓折线：中心点、扫掠边界点，最后回到中心点
func FanOutline(vertices []progress.Vertex, transform f64.Aff3) [][2]float32 {
	if len(vertices) == 0 {
		return nil
	}
	points := make([][2]float32, 0, len(vertices)+1)
	for _, v := range vertices {
		x, y := progress.TransformPoint(transform, v.Position)
		points = append(points, [2]float32{float32(x), float32(y)})
	}
	return append(points, points[0])
}

// NodeTransform 计算进度节点的本地到父空间变换
func NodeTransform(rp *progress.RadialProgress, x, y, scaleX, scaleY float64) f64.Aff3 {
	size := rp.ContentSize()
	anchor := rp.AnchorPoint()
	ax := float64(anchor.X) * float64(size.Width)
	ay := float64(anchor.Y) * float64(size.Height)

	// 本地坐标 y 轴向下，锚点 (0,0) 位于左下角
	offsetY := ay - float64(size.Height)
	return f64.Aff3{
		scaleX, 0, x - scaleX*ax,
		0, scaleY, y + scaleY*offsetY,
	}
}
