package game

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // 支持 JPEG 格式图片
	_ "image/png"
	"log"
	"os"

	"github.com/decker502/radialprogress/pkg/components"
	"github.com/decker502/radialprogress/pkg/config"
	"github.com/decker502/radialprogress/pkg/ecs"
	"github.com/decker502/radialprogress/pkg/progress"
)

// OutlineColor 扇形轮廓颜色
var OutlineColor = color.RGBA{R: 255, G: 255, A: 255}

// ShowcaseScene 由展示配置构建的进度实体集合
// 三个命令（窗口、快照、终端）共用同一套实体
type ShowcaseScene struct {
	EntityManager *ecs.EntityManager

	cells []SceneCell
}

// SceneCell 场景中的一个进度单元
type SceneCell struct {
	ID       ecs.EntityID
	Config   config.RadialCellConfig
	Progress *progress.RadialProgress
}

// NewShowcaseScene 按配置创建实体并叠加全局设置
//
// 参数：
//   - cfg: 展示配置
//   - settings: 全局覆盖设置，可为 nil（使用默认设置）
func NewShowcaseScene(cfg *config.ShowcaseConfig, settings *ShowcaseSettings) (*ShowcaseScene, error) {
	scene := &ShowcaseScene{EntityManager: ecs.NewEntityManager()}
	if err := scene.build(cfg, settings); err != nil {
		return nil, err
	}
	return scene, nil
}

// Reload 销毁现有单元并按新配置重建
// 实体管理器保持不变，持有它的系统无需重新创建
func (s *ShowcaseScene) Reload(cfg *config.ShowcaseConfig, settings *ShowcaseSettings) error {
	// 先加载纹理，失败时保留旧场景
	img, err := LoadSpriteImage(cfg.Sprite.Image, cfg.Sprite.Size)
	if err != nil {
		return err
	}

	for _, cell := range s.cells {
		s.EntityManager.DestroyEntity(cell.ID)
	}
	s.EntityManager.RemoveMarkedEntities()
	s.cells = nil

	s.createCells(cfg, img)
	s.ApplySettings(orDefault(settings))
	log.Printf("[ShowcaseScene] Reloaded %d radial cells", len(s.cells))
	return nil
}

func (s *ShowcaseScene) build(cfg *config.ShowcaseConfig, settings *ShowcaseSettings) error {
	img, err := LoadSpriteImage(cfg.Sprite.Image, cfg.Sprite.Size)
	if err != nil {
		return err
	}

	s.createCells(cfg, img)
	s.ApplySettings(orDefault(settings))
	log.Printf("[ShowcaseScene] Built %d radial cells", len(s.cells))
	return nil
}

func (s *ShowcaseScene) createCells(cfg *config.ShowcaseConfig, img image.Image) {
	for i, cell := range cfg.Cells {
		// 每个单元独立持有精灵，着色互不影响
		sprite := components.NewAtlasSpriteComponent(img, img.Bounds(), cfg.Sprite.Rotated)
		if cell.Additive {
			sprite.Blend = progress.BlendAdditive
		}

		rp := progress.NewRadialProgress(sprite)
		midpoint := cell.MidpointValue()
		rp.SetMidpoint(progress.Vec2{X: midpoint[0], Y: midpoint[1]})
		rp.SetColor(cell.TintColor())
		rp.SetOpacity(cell.OpacityValue())
		rp.SetGlobalZOrder(float32(i))
		if cell.Program != "" {
			rp.SetProgram(cell.Program)
		}

		x, y := cfg.CellOrigin(i)
		id := s.EntityManager.CreateEntity()
		s.EntityManager.AddComponent(id, sprite)
		s.EntityManager.AddComponent(id, &components.PositionComponent{
			X: float64(x) + float64(cfg.Grid.CellWidth)/2,
			Y: float64(y) + float64(cfg.Grid.CellHeight)/2,
		})
		s.EntityManager.AddComponent(id, components.NewUniformScale(cell.Scale))
		s.EntityManager.AddComponent(id, &components.RadialProgressComponent{
			Progress: rp,
			Label:    cell.Name,
		})

		s.cells = append(s.cells, SceneCell{ID: id, Config: cell, Progress: rp})
		rp.SetPercentage(cell.Percentage)
	}
}

func orDefault(settings *ShowcaseSettings) *ShowcaseSettings {
	if settings == nil {
		return DefaultSettings()
	}
	return settings
}

// Cells 返回场景中的单元（按创建顺序）
func (s *ShowcaseScene) Cells() []SceneCell {
	return s.cells
}

// ApplySettings 把全局设置叠加到每个单元
// 起始角的设置总会触发重算，因此方向切换后顶点数据立即可用
func (s *ShowcaseScene) ApplySettings(settings *ShowcaseSettings) {
	for _, cell := range s.cells {
		cell.Progress.SetReverseDirection(settings.EffectiveReverse(cell.Config.Reverse))
		cell.Progress.SetStartAngle(settings.EffectiveStartAngle(cell.Config.StartAngle))

		hasOutline := ecs.HasComponent[*components.OutlineComponent](s.EntityManager, cell.ID)
		switch {
		case settings.ShowOutline && !hasOutline:
			s.EntityManager.AddComponent(cell.ID, &components.OutlineComponent{Color: OutlineColor, Width: 1})
		case !settings.ShowOutline && hasOutline:
			ecs.RemoveComponent[*components.OutlineComponent](s.EntityManager, cell.ID)
		}
	}
}

// StepPercentage 调整所有单元的百分比（结果由进度组件限制在 0 ~ 100）
func (s *ShowcaseScene) StepPercentage(delta float32) {
	for _, cell := range s.cells {
		cell.Progress.SetPercentage(cell.Progress.Percentage() + delta)
	}
}

// ResetPercentages 恢复配置中的百分比
func (s *ShowcaseScene) ResetPercentages() {
	for _, cell := range s.cells {
		cell.Progress.SetPercentage(cell.Config.Percentage)
	}
}

// LoadSpriteImage 加载精灵纹理
// path 为空时生成 size×size 的棋盘格纹理
func LoadSpriteImage(path string, size int) (image.Image, error) {
	if path == "" {
		return CheckerImage(size), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite image %s: %w", path, err)
	}
	return img, nil
}

// CheckerImage 生成带渐变的棋盘格纹理，便于观察纹理坐标
func CheckerImage(size int) *image.RGBA {
	if size <= 0 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / 8
	if cell == 0 {
		cell = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			shade := uint8(160)
			if (x/cell+y/cell)%2 == 0 {
				shade = 230
			}
			img.SetRGBA(x, y, color.RGBA{
				R: shade,
				G: uint8(int(shade) * (size - y) / size),
				B: uint8(int(shade) * x / size),
				A: 255,
			})
		}
	}
	return img
}
