package render

import (
	"sort"

	"github.com/decker502/radialprogress/pkg/progress"
	"github.com/gdamore/tcell/v2"
)

// fillRune 终端中被覆盖的格子使用的字符
const fillRune = '█'

// CellScreen 终端屏幕的最小接口（tcell.Screen 满足该接口）
type CellScreen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// TermRenderer 把三角扇按格子中心采样画到终端上
//
// 每个格子对应设备空间中 CellWidth×CellHeight 的区域。
type TermRenderer struct {
	screen     CellScreen
	cellWidth  float32
	cellHeight float32
	commands   []*progress.FanCommand
}

// NewTermRenderer 创建终端渲染器
// cellWidth/cellHeight 小于等于 0 时使用 1
func NewTermRenderer(screen CellScreen, cellWidth, cellHeight float32) *TermRenderer {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return &TermRenderer{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// AddCommand 实现 progress.Renderer
func (r *TermRenderer) AddCommand(cmd *progress.FanCommand) {
	r.commands = append(r.commands, cmd)
}

// Flush 按 GlobalZ 顺序绘制所有命令并清空队列（不调用 Show）
func (r *TermRenderer) Flush() {
	sort.SliceStable(r.commands, func(i, j int) bool {
		return r.commands[i].GlobalZ < r.commands[j].GlobalZ
	})
	width, height := r.screen.Size()

	for _, cmd := range r.commands {
		for _, tri := range fanTriangles(cmd) {
			r.fillTriangle(&tri, cmd, width, height)
		}
	}
	r.commands = r.commands[:0]
}

func (r *TermRenderer) fillTriangle(tri *fanTriangle, cmd *progress.FanCommand, width, height int) {
	x0 := clampInt(int(tri.minX/r.cellWidth), 0, width-1)
	x1 := clampInt(int(tri.maxX/r.cellWidth), 0, width-1)
	y0 := clampInt(int(tri.minY/r.cellHeight), 0, height-1)
	y1 := clampInt(int(tri.maxY/r.cellHeight), 0, height-1)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float32(cx) + 0.5) * r.cellWidth
			py := (float32(cy) + 0.5) * r.cellHeight
			if !tri.contains(px, py) {
				continue
			}
			c := sampleTexture(cmd.Texture, tri.texCoordAt(px, py), tri.color, cmd.Program)
			if c.A == 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			r.screen.SetContent(cx, cy, fillRune, nil, style)
		}
	}
}
