// cmd/radial_snapshot/main.go
// 无窗口导出：按展示配置把所有进度单元光栅化为 PNG
//
// 用法：
//   go run ./cmd/radial_snapshot [--config=showcase.yaml] --out=radial.png

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/decker502/radialprogress/pkg/config"
	"github.com/decker502/radialprogress/pkg/game"
	"github.com/decker502/radialprogress/pkg/progress"
	"github.com/decker502/radialprogress/pkg/render"
	"github.com/decker502/radialprogress/pkg/systems"
)

var (
	configPath = flag.String("config", "", "配置文件路径（为空时使用内置默认配置）")
	outPath    = flag.String("out", "radial_snapshot.png", "输出 PNG 路径")
	percentage = flag.Float64("percentage", -1, "覆盖所有单元的百分比（负数表示使用配置值）")
	verbose    = flag.Bool("verbose", false, "详细日志（输出几何求解过程）")
)

func run() error {
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	scene, err := game.NewShowcaseScene(cfg, nil)
	if err != nil {
		return fmt.Errorf("构建场景失败: %w", err)
	}
	if *percentage >= 0 {
		for _, cell := range scene.Cells() {
			cell.Progress.SetPercentage(float32(*percentage))
		}
	}

	background, _ := config.ParseHexColor(cfg.Window.Background)

	renderer := render.NewSnapshotRenderer(cfg.Window.Width, cfg.Window.Height)
	defer renderer.Close()
	renderer.Clear(background)

	systems.NewRadialProgressRenderSystem(scene.EntityManager).Draw(renderer, progress.IdentityTransform())
	if err := renderer.Flush(); err != nil {
		return err
	}
	if err := renderer.SavePNG(*outPath); err != nil {
		return err
	}

	log.Printf("✓ 已导出 %d 个单元到 %s", len(scene.Cells()), *outPath)
	return nil
}

func main() {
	flag.Parse()
	progress.DebugRadial = *verbose

	if err := run(); err != nil {
		log.Fatal(err)
	}
}
