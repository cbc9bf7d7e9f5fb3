package render

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/decker502/radialprogress/pkg/progress"
	"github.com/gogpu/gg"
)

// SnapshotRenderer 软件光栅化渲染器，把三角扇画到 gg 画布上（用于无窗口导出 PNG）
type SnapshotRenderer struct {
	dc       *gg.Context
	commands []*progress.FanCommand

	warnedAdditive bool
}

// NewSnapshotRenderer 创建指定尺寸的快照渲染器
func NewSnapshotRenderer(width, height int) *SnapshotRenderer {
	return &SnapshotRenderer{dc: gg.NewContext(width, height)}
}

// AddCommand 实现 progress.Renderer
func (r *SnapshotRenderer) AddCommand(cmd *progress.FanCommand) {
	r.commands = append(r.commands, cmd)
}

// Clear 用纯色清空画布
func (r *SnapshotRenderer) Clear(c color.Color) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

// Flush 按 GlobalZ 顺序光栅化所有命令并清空队列
func (r *SnapshotRenderer) Flush() error {
	sort.SliceStable(r.commands, func(i, j int) bool {
		return r.commands[i].GlobalZ < r.commands[j].GlobalZ
	})
	defer func() { r.commands = r.commands[:0] }()

	for _, cmd := range r.commands {
		if cmd.Blend == progress.BlendAdditive && !r.warnedAdditive {
			r.warnedAdditive = true
			log.Printf("[SnapshotRenderer] Warning: additive blend not supported, drawing with normal blend")
		}
		for _, tri := range fanTriangles(cmd) {
			if err := r.fillTriangle(tri, cmd.Texture, cmd.Program); err != nil {
				return fmt.Errorf("failed to fill triangle: %w", err)
			}
		}
	}
	return nil
}

// fillTriangle 用按像素采样纹理的画刷填充一个三角形
func (r *SnapshotRenderer) fillTriangle(tri fanTriangle, tex image.Image, program string) error {
	p1 := tri.p0.Add(tri.d1)
	p2 := tri.p0.Add(tri.d2)

	r.dc.MoveTo(float64(tri.p0.X), float64(tri.p0.Y))
	r.dc.LineTo(float64(p1.X), float64(p1.Y))
	r.dc.LineTo(float64(p2.X), float64(p2.Y))
	r.dc.ClosePath()

	r.dc.SetFillBrush(gg.CustomBrush{
		Name: "radial_fan",
		Func: func(x, y float64) gg.RGBA {
			uv := tri.texCoordAt(float32(x), float32(y))
			c := sampleTexture(tex, uv, tri.color, program)
			return gg.RGBA{
				R: float64(c.R) / 0xff,
				G: float64(c.G) / 0xff,
				B: float64(c.B) / 0xff,
				A: float64(c.A) / 0xff,
			}
		},
	})
	return r.dc.Fill()
}

// Image 返回当前画布内容
func (r *SnapshotRenderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG 将画布保存为 PNG 文件
func (r *SnapshotRenderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

// Close 释放画布
func (r *SnapshotRenderer) Close() error {
	return r.dc.Close()
}
