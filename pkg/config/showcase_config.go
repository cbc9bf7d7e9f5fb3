package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ShowcaseConfig 径向进度展示配置（窗口、网格、进度单元）
type ShowcaseConfig struct {
	Window WindowConfig       `yaml:"window"`
	Grid   GridConfig         `yaml:"grid"`
	Sprite SpriteConfig       `yaml:"sprite"`
	Cells  []RadialCellConfig `yaml:"cells"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // 背景色 "#RRGGBB"
}

// GridConfig 网格布局配置
type GridConfig struct {
	Columns    int `yaml:"columns"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Padding    int `yaml:"padding"`
}

// SpriteConfig 默认精灵配置
// Image 为空时使用程序生成的棋盘格纹理
type SpriteConfig struct {
	Image   string `yaml:"image"`
	Size    int    `yaml:"size"`    // 生成纹理的边长（像素）
	Rotated bool   `yaml:"rotated"` // 源区域是否在图集中旋转存放
}

// RadialCellConfig 单个径向进度单元
type RadialCellConfig struct {
	Name       string      `yaml:"name"`
	Percentage float32     `yaml:"percentage"`
	Midpoint   *[2]float32 `yaml:"midpoint"` // 为空表示 (0.5,0.5)
	StartAngle float32     `yaml:"start_angle"`
	Reverse    bool        `yaml:"reverse"`
	Tint       string      `yaml:"tint"`    // 着色 "#RRGGBB"，为空表示白色
	Opacity    *int        `yaml:"opacity"` // 0~255，为空表示 255
	Additive   bool        `yaml:"additive"`
	Scale      float64     `yaml:"scale"`
	Program    string      `yaml:"program"` // 着色程序名，为空使用默认程序
}

// LoadShowcaseConfig 从文件加载展示配置
func LoadShowcaseConfig(path string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read showcase config: %w", err)
	}
	return ParseShowcaseConfig(data)
}

// ParseShowcaseConfig 解析 YAML 数据并填充默认值
func ParseShowcaseConfig(data []byte) (*ShowcaseConfig, error) {
	var cfg ShowcaseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse showcase config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ShowcaseConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}
	if c.Window.Title == "" {
		c.Window.Title = "Radial Progress Showcase"
	}
	if c.Window.Background == "" {
		c.Window.Background = "#202020"
	}
	if c.Grid.Columns == 0 {
		c.Grid.Columns = 4
	}
	if c.Grid.CellWidth == 0 {
		c.Grid.CellWidth = 160
	}
	if c.Grid.CellHeight == 0 {
		c.Grid.CellHeight = 160
	}
	if c.Grid.Padding == 0 {
		c.Grid.Padding = 10
	}
	if c.Sprite.Size == 0 {
		c.Sprite.Size = 128
	}

	for i := range c.Cells {
		cell := &c.Cells[i]
		if cell.Midpoint == nil {
			cell.Midpoint = &[2]float32{0.5, 0.5}
		}
		if cell.Scale == 0 {
			cell.Scale = 1.0
		}
		if cell.Name == "" {
			cell.Name = fmt.Sprintf("cell_%d", i+1)
		}
	}
}

// Validate 校验配置
// 百分比、中心点等数值由进度组件自行限制，这里只拒绝无法使用的配置
func (c *ShowcaseConfig) Validate() error {
	if c.Grid.Columns < 0 || c.Grid.CellWidth < 0 || c.Grid.CellHeight < 0 {
		return fmt.Errorf("invalid grid: %+v", c.Grid)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("window background: %w", err)
	}
	for _, cell := range c.Cells {
		if cell.Tint != "" {
			if _, err := ParseHexColor(cell.Tint); err != nil {
				return fmt.Errorf("cell %s tint: %w", cell.Name, err)
			}
		}
		if cell.Opacity != nil && (*cell.Opacity < 0 || *cell.Opacity > 255) {
			return fmt.Errorf("cell %s opacity out of range: %d", cell.Name, *cell.Opacity)
		}
	}
	return nil
}

// TintColor 返回单元着色（默认白色）
func (c *RadialCellConfig) TintColor() color.RGBA {
	if c.Tint == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	tint, err := ParseHexColor(c.Tint)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return tint
}

// MidpointValue 返回单元旋转中心（默认 (0.5,0.5)）
func (c *RadialCellConfig) MidpointValue() [2]float32 {
	if c.Midpoint == nil {
		return [2]float32{0.5, 0.5}
	}
	return *c.Midpoint
}

// OpacityValue 返回单元不透明度（默认 255）
func (c *RadialCellConfig) OpacityValue() uint8 {
	if c.Opacity == nil {
		return 255
	}
	return uint8(*c.Opacity)
}

// CellOrigin 返回第 index 个单元的左上角位置（网格布局）
func (c *ShowcaseConfig) CellOrigin(index int) (x, y int) {
	col := index % c.Grid.Columns
	row := index / c.Grid.Columns
	x = c.Grid.Padding + col*(c.Grid.CellWidth+c.Grid.Padding)
	y = c.Grid.Padding + row*(c.Grid.CellHeight+c.Grid.Padding)
	return x, y
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
