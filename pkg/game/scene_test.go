package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/radialprogress/pkg/components"
	"github.com/decker502/radialprogress/pkg/config"
	"github.com/decker502/radialprogress/pkg/ecs"
	"github.com/decker502/radialprogress/pkg/progress"
)

func testShowcaseConfig(t *testing.T) *config.ShowcaseConfig {
	t.Helper()
	cfg, err := config.ParseShowcaseConfig([]byte(`
grid:
  columns: 2
  cell_width: 100
  cell_height: 100
  padding: 10
sprite:
  size: 16
cells:
  - name: quarter
    percentage: 25
  - name: half_reverse
    percentage: 50
    reverse: true
    start_angle: 90
  - name: empty
    percentage: 0
    tint: "#FF0000"
    opacity: 64
    additive: true
`))
	if err != nil {
		t.Fatalf("ParseShowcaseConfig() error: %v", err)
	}
	return cfg
}

// TestNewShowcaseScene 测试按配置构建实体
func TestNewShowcaseScene(t *testing.T) {
	scene, err := NewShowcaseScene(testShowcaseConfig(t), nil)
	if err != nil {
		t.Fatalf("NewShowcaseScene() error: %v", err)
	}

	cells := scene.Cells()
	if len(cells) != 3 {
		t.Fatalf("cells: got %d, want 3", len(cells))
	}

	// 25% 扫过一个角：1 + 3 = 4 个顶点
	if got := len(cells[0].Progress.VertexData()); got != 4 {
		t.Errorf("quarter vertices: got %d, want 4", got)
	}
	// 0% 仍由起始角设置触发重算，得到退化的 3 个顶点
	if got := len(cells[2].Progress.VertexData()); got != 3 {
		t.Errorf("empty vertices: got %d, want 3", got)
	}
	if !cells[1].Progress.IsReverseDirection() {
		t.Error("half_reverse should be reversed")
	}
	if cells[1].Progress.StartAngle() != 90 {
		t.Errorf("half_reverse start angle: got %v, want 90", cells[1].Progress.StartAngle())
	}

	// 第二个单元位于第一行第二列的中心
	pos, ok := ecs.GetComponent[*components.PositionComponent](scene.EntityManager, cells[1].ID)
	if !ok {
		t.Fatal("PositionComponent missing")
	}
	if pos.X != 170 || pos.Y != 60 {
		t.Errorf("position: got (%v,%v), want (170,60)", pos.X, pos.Y)
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](scene.EntityManager, cells[2].ID)
	if !ok {
		t.Fatal("SpriteComponent missing")
	}
	if sprite.Opacity() != 64 {
		t.Errorf("opacity: got %d, want 64", sprite.Opacity())
	}
	if sprite.Color() != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("tint: got %v, want red", sprite.Color())
	}
	if got := cells[2].Progress.VertexData()[0].Color; got != (color.RGBA{R: 255, A: 64}) {
		t.Errorf("vertex color: got %v", got)
	}
}

// TestShowcaseSceneApplySettings 测试全局设置叠加
func TestShowcaseSceneApplySettings(t *testing.T) {
	settings := DefaultSettings()
	scene, err := NewShowcaseScene(testShowcaseConfig(t), settings)
	if err != nil {
		t.Fatalf("NewShowcaseScene() error: %v", err)
	}

	settings.ReverseAll = true
	settings.StartAngleOffset = 90
	settings.ShowOutline = true
	scene.ApplySettings(settings)

	cells := scene.Cells()
	if !cells[0].Progress.IsReverseDirection() || cells[1].Progress.IsReverseDirection() {
		t.Error("ReverseAll should invert every cell direction")
	}
	if cells[1].Progress.StartAngle() != 180 {
		t.Errorf("start angle: got %v, want 180", cells[1].Progress.StartAngle())
	}
	// 方向切换丢弃的缓冲区已被起始角设置重建
	if cells[0].Progress.VertexData() == nil {
		t.Error("vertex data should be rebuilt after ApplySettings")
	}

	for _, cell := range cells {
		if !ecs.HasComponent[*components.OutlineComponent](scene.EntityManager, cell.ID) {
			t.Errorf("cell %s should have an OutlineComponent", cell.Config.Name)
		}
	}

	settings.ShowOutline = false
	scene.ApplySettings(settings)
	for _, cell := range cells {
		if ecs.HasComponent[*components.OutlineComponent](scene.EntityManager, cell.ID) {
			t.Errorf("cell %s should lose its OutlineComponent", cell.Config.Name)
		}
	}
}

// TestShowcaseSceneProgram 测试单元着色程序配置
func TestShowcaseSceneProgram(t *testing.T) {
	cfg := testShowcaseConfig(t)
	cfg.Cells[1].Program = "grayscale"

	scene, err := NewShowcaseScene(cfg, nil)
	if err != nil {
		t.Fatalf("NewShowcaseScene() error: %v", err)
	}

	cells := scene.Cells()
	if got := cells[0].Progress.Program(); got != progress.ProgramPositionTextureColor {
		t.Errorf("default program: got %q", got)
	}
	if got := cells[1].Progress.Program(); got != "grayscale" {
		t.Errorf("configured program: got %q, want grayscale", got)
	}
}

// TestShowcaseSceneReload 测试重建场景：旧实体被销毁，实体管理器不变
func TestShowcaseSceneReload(t *testing.T) {
	settings := DefaultSettings()
	settings.ShowOutline = true
	scene, err := NewShowcaseScene(testShowcaseConfig(t), settings)
	if err != nil {
		t.Fatalf("NewShowcaseScene() error: %v", err)
	}
	em := scene.EntityManager
	oldIDs := []ecs.EntityID{}
	for _, cell := range scene.Cells() {
		oldIDs = append(oldIDs, cell.ID)
	}

	cfg, err := config.ParseShowcaseConfig([]byte("cells:\n  - name: only\n    percentage: 40\n"))
	if err != nil {
		t.Fatalf("ParseShowcaseConfig() error: %v", err)
	}
	if err := scene.Reload(cfg, settings); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	if scene.EntityManager != em {
		t.Error("Reload should keep the entity manager")
	}
	for _, id := range oldIDs {
		if ecs.HasComponent[*components.RadialProgressComponent](em, id) {
			t.Errorf("entity %d should be destroyed", id)
		}
	}

	cells := scene.Cells()
	if len(cells) != 1 || cells[0].Config.Name != "only" {
		t.Fatalf("cells after reload: %+v", cells)
	}
	if !ecs.HasComponent[*components.OutlineComponent](em, cells[0].ID) {
		t.Error("settings should be applied to reloaded cells")
	}
	entities := ecs.GetEntitiesWith2[*components.RadialProgressComponent, *components.PositionComponent](em)
	if len(entities) != 1 {
		t.Errorf("entities after reload: got %d, want 1", len(entities))
	}

	// 纹理加载失败时保留旧场景
	bad := *cfg
	bad.Sprite.Image = filepath.Join(t.TempDir(), "missing.png")
	if err := scene.Reload(&bad, settings); err == nil {
		t.Error("Reload() expected error for missing sprite image")
	}
	if len(scene.Cells()) != 1 {
		t.Error("failed reload should keep existing cells")
	}
}

// TestShowcaseSceneStepPercentage 测试百分比步进与复位
func TestShowcaseSceneStepPercentage(t *testing.T) {
	scene, err := NewShowcaseScene(testShowcaseConfig(t), nil)
	if err != nil {
		t.Fatalf("NewShowcaseScene() error: %v", err)
	}

	scene.StepPercentage(60)
	cells := scene.Cells()
	if cells[0].Progress.Percentage() != 85 {
		t.Errorf("quarter: got %v, want 85", cells[0].Progress.Percentage())
	}
	if cells[1].Progress.Percentage() != 100 {
		t.Errorf("half: got %v, want 100 (clamped)", cells[1].Progress.Percentage())
	}

	scene.ResetPercentages()
	if cells[1].Progress.Percentage() != 50 {
		t.Errorf("after reset: got %v, want 50", cells[1].Progress.Percentage())
	}
}

// TestLoadSpriteImage 测试从文件加载与生成纹理
func TestLoadSpriteImage(t *testing.T) {
	img, err := LoadSpriteImage("", 32)
	if err != nil {
		t.Fatalf("LoadSpriteImage(\"\") error: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("generated size: got %d, want 32", img.Bounds().Dx())
	}

	path := filepath.Join(t.TempDir(), "sprite.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 7, 5))); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f.Close()

	img, err = LoadSpriteImage(path, 0)
	if err != nil {
		t.Fatalf("LoadSpriteImage(path) error: %v", err)
	}
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 5 {
		t.Errorf("loaded size: got %v, want 7x5", img.Bounds())
	}

	if _, err := LoadSpriteImage(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("LoadSpriteImage() expected error for missing file")
	}
}
