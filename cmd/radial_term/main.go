// cmd/radial_term/main.go
// 终端预览：把展示配置中的进度单元画到终端格子上
//
// 用法：
//   go run ./cmd/radial_term [--config=showcase.yaml]
//
// 按键：↑/↓ 调整百分比，r 切换反向，a 起始角 +90°，Esc/q 退出

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/radialprogress/pkg/config"
	"github.com/decker502/radialprogress/pkg/game"
	"github.com/decker502/radialprogress/pkg/progress"
	"github.com/decker502/radialprogress/pkg/render"
	"github.com/decker502/radialprogress/pkg/systems"
)

var (
	configPath = flag.String("config", "", "配置文件路径（为空时使用内置默认配置）")
	step       = flag.Float64("step", 5, "每次按键调整的百分比")
)

// Preview 终端预览状态
type Preview struct {
	screen   tcell.Screen
	config   *config.ShowcaseConfig
	scene    *game.ShowcaseScene
	settings *game.SettingsManager
	system   *systems.RadialProgressRenderSystem
}

// NewPreview 创建终端预览
// 终端预览不持久化设置
func NewPreview(screen tcell.Screen, cfg *config.ShowcaseConfig, percentStep float32) (*Preview, error) {
	settings, _ := game.NewSettingsManager(nil)
	settings.SetPercentStep(percentStep)

	scene, err := game.NewShowcaseScene(cfg, settings.GetSettings())
	if err != nil {
		return nil, fmt.Errorf("构建场景失败: %w", err)
	}

	return &Preview{
		screen:   screen,
		config:   cfg,
		scene:    scene,
		settings: settings,
		system:   systems.NewRadialProgressRenderSystem(scene.EntityManager),
	}, nil
}

// draw 按终端尺寸缩放窗口坐标后重绘
func (p *Preview) draw() {
	p.screen.Clear()

	width, height := p.screen.Size()
	if width == 0 || height < 2 {
		p.screen.Show()
		return
	}
	cellWidth := float32(p.config.Window.Width) / float32(width)
	cellHeight := float32(p.config.Window.Height) / float32(height-1)

	renderer := render.NewTermRenderer(p.screen, cellWidth, cellHeight)
	p.system.Draw(renderer, progress.IdentityTransform())
	renderer.Flush()

	s := p.settings.GetSettings()
	status := fmt.Sprintf("reverse=%v offset=%.0f  [Up/Down r a q]", s.ReverseAll, s.StartAngleOffset)
	for i, r := range status {
		if i >= width {
			break
		}
		p.screen.SetContent(i, height-1, r, nil, tcell.StyleDefault)
	}
	p.screen.Show()
}

// handleInput 处理按键，返回 false 表示退出
func (p *Preview) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s := p.settings.GetSettings()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			p.scene.StepPercentage(s.PercentStep)
		case tcell.KeyDown:
			p.scene.StepPercentage(-s.PercentStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				p.settings.ToggleReverse()
				p.scene.ApplySettings(s)
			case 'a':
				p.settings.RotateStartAngle(90)
				p.scene.ApplySettings(s)
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *Preview) run() {
	p.draw()
	for {
		if !p.handleInput(p.screen.PollEvent()) {
			return
		}
		p.draw()
	}
}

func main() {
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}

	// 先构建场景，避免初始化日志写进终端画面
	preview, err := NewPreview(screen, cfg, float32(*step))
	if err != nil {
		log.Fatal(err)
	}

	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	preview.run()
	screen.Fini()
}
