// cmd/radial_showcase/main.go
// 径向进度展示程序
//
// 用法：
//   go run ./cmd/radial_showcase [--config=showcase.yaml]
//
// 按键：
//   ↑/↓     调整所有单元百分比
//   Space   恢复配置中的百分比
//   R       切换全局反向
//   A       起始角偏移 +90°
//   O       切换轮廓显示
//   L       切换标签显示
//   S       保存设置
//   F5      重新加载配置
//   Esc     退出

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/radialprogress/pkg/config"
	"github.com/decker502/radialprogress/pkg/game"
	"github.com/decker502/radialprogress/pkg/progress"
	"github.com/decker502/radialprogress/pkg/render"
	"github.com/decker502/radialprogress/pkg/systems"
)

var (
	configPath = flag.String("config", "", "配置文件路径（为空时使用内置默认配置）")
	verbose    = flag.Bool("verbose", false, "详细日志（输出几何求解过程）")
)

// Game 主程序结构
type Game struct {
	configPath string
	config     *config.ShowcaseConfig
	scene      *game.ShowcaseScene
	settings   *game.SettingsManager
	background color.RGBA

	renderSystem  *systems.RadialProgressRenderSystem
	outlineSystem *systems.RadialOutlineSystem
	renderer      *render.EbitenRenderer
}

// NewGame 创建展示实例
func NewGame(configPath string) (*Game, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	log.Printf("✓ 加载配置成功: %d 个进度单元", len(cfg.Cells))

	// gdata 初始化失败时进入降级模式，设置只保存在内存中
	var gdataManager *gdata.Manager
	gdataManager, err = gdata.Open(gdata.Config{AppName: "radial_showcase"})
	if err != nil {
		log.Printf("[Showcase] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, _ := game.NewSettingsManager(gdataManager)

	scene, err := game.NewShowcaseScene(cfg, settings.GetSettings())
	if err != nil {
		return nil, fmt.Errorf("构建场景失败: %w", err)
	}

	background, _ := config.ParseHexColor(cfg.Window.Background)

	renderer := render.NewEbitenRenderer()
	if err := renderer.RegisterBuiltinPrograms(); err != nil {
		// 着色器编译失败时对应单元回退到默认程序
		log.Printf("[Showcase] Warning: %v", err)
	}

	return &Game{
		configPath:    configPath,
		config:        cfg,
		scene:         scene,
		settings:      settings,
		background:    background,
		renderSystem:  systems.NewRadialProgressRenderSystem(scene.EntityManager),
		outlineSystem: systems.NewRadialOutlineSystem(scene.EntityManager),
		renderer:      renderer,
	}, nil
}

// reload 重新读取配置并重建场景，失败时保留当前场景
func (g *Game) reload() {
	cfg, err := config.LoadOrDefault(g.configPath)
	if err != nil {
		log.Printf("[Showcase] Warning: reload config: %v", err)
		return
	}
	if err := g.scene.Reload(cfg, g.settings.GetSettings()); err != nil {
		log.Printf("[Showcase] Warning: reload scene: %v", err)
		return
	}
	g.config = cfg
	g.background, _ = config.ParseHexColor(cfg.Window.Background)
}

// Update 处理按键
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s := g.settings.GetSettings()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.scene.StepPercentage(s.PercentStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.scene.StepPercentage(-s.PercentStep)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.scene.ResetPercentages()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		log.Printf("[Showcase] Reverse all: %v", g.settings.ToggleReverse())
		g.scene.ApplySettings(s)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		log.Printf("[Showcase] Start angle offset: %.0f", g.settings.RotateStartAngle(90))
		g.scene.ApplySettings(s)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.settings.SetShowOutline(!s.ShowOutline)
		g.scene.ApplySettings(s)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.settings.SetShowLabels(!s.ShowLabels)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := g.settings.Save(); err != nil {
			log.Printf("[Showcase] Warning: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.reload()
	}
	return nil
}

// Draw 绘制所有单元
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	g.renderSystem.Draw(g.renderer, progress.IdentityTransform())
	g.renderer.Flush(screen)

	for _, path := range g.outlineSystem.Outlines(progress.IdentityTransform()) {
		for i := 1; i < len(path.Points); i++ {
			a, b := path.Points[i-1], path.Points[i]
			vector.StrokeLine(screen, a[0], a[1], b[0], b[1], path.Width, path.Color, true)
		}
	}

	for i, cell := range g.scene.Cells() {
		if g.settings.GetSettings().ShowLabels {
			x, y := g.config.CellOrigin(i)
			label := fmt.Sprintf("%s %.1f%%", cell.Config.Name, cell.Progress.Percentage())
			ebitenutil.DebugPrintAt(screen, label, x, y)
		}
	}

	s := g.settings.GetSettings()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("reverse=%v offset=%.0f step=%.0f  [Up/Down Space R A O L S F5]", s.ReverseAll, s.StartAngleOffset, s.PercentStep),
		g.config.Grid.Padding, g.config.Window.Height-20)
}

// Layout 返回逻辑屏幕尺寸
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}

func main() {
	flag.Parse()
	progress.DebugRadial = *verbose

	g, err := NewGame(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(g.config.Window.Width, g.config.Window.Height)
	ebiten.SetWindowTitle(g.config.Window.Title)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
