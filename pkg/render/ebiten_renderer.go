package render

import (
	"image"
	"log"
	"sort"

	"github.com/decker502/radialprogress/pkg/progress"
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenRenderer 收集三角扇命令，在 Flush 时用 DrawTriangles 批量绘制
//
// 命令中的顶点与进度组件共享，必须在同一帧内 Flush。
type EbitenRenderer struct {
	commands []*progress.FanCommand

	// 重用的顶点/索引数组（保留容量，避免每帧分配）
	vertices []ebiten.Vertex
	indices  []uint16

	// 非 *ebiten.Image 纹理的转换缓存
	textures map[image.Image]*ebiten.Image
	// 着色程序注册表（默认程序使用内置管线）
	programs map[string]*ebiten.Shader

	warnedPrograms map[string]bool
}

// NewEbitenRenderer 创建 ebiten 渲染器
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{
		textures:       make(map[image.Image]*ebiten.Image),
		programs:       make(map[string]*ebiten.Shader),
		warnedPrograms: make(map[string]bool),
	}
}

// RegisterProgram 注册着色程序，FanCommand.Program 按名称查找
func (r *EbitenRenderer) RegisterProgram(name string, shader *ebiten.Shader) {
	r.programs[name] = shader
}

// AddCommand 实现 progress.Renderer
func (r *EbitenRenderer) AddCommand(cmd *progress.FanCommand) {
	r.commands = append(r.commands, cmd)
}

// Pending 返回尚未绘制的命令数量
func (r *EbitenRenderer) Pending() int {
	return len(r.commands)
}

// Flush 按 GlobalZ 顺序绘制所有命令并清空队列
func (r *EbitenRenderer) Flush(screen *ebiten.Image) {
	sort.SliceStable(r.commands, func(i, j int) bool {
		return r.commands[i].GlobalZ < r.commands[j].GlobalZ
	})

	for _, cmd := range r.commands {
		r.draw(screen, cmd)
	}
	r.commands = r.commands[:0]
}

func (r *EbitenRenderer) draw(screen *ebiten.Image, cmd *progress.FanCommand) {
	if len(cmd.Vertices) < 3 {
		return
	}
	tex := r.texture(cmd.Texture)
	if tex == nil {
		return
	}

	r.vertices = appendFanVertices(r.vertices[:0], cmd)
	r.indices = progress.AppendFanIndices(r.indices[:0], len(cmd.Vertices))

	if shader := r.shaderFor(cmd.Program); shader != nil {
		op := &ebiten.DrawTrianglesShaderOptions{}
		op.Blend = ebitenBlend(cmd.Blend)
		op.Images[0] = tex
		screen.DrawTrianglesShader(r.vertices, r.indices, shader, op)
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.Blend = ebitenBlend(cmd.Blend)
	screen.DrawTriangles(r.vertices, r.indices, tex, op)
}

// shaderFor 解析程序名；默认程序或未注册的程序返回 nil（使用内置管线）
func (r *EbitenRenderer) shaderFor(name string) *ebiten.Shader {
	if name == "" || name == progress.ProgramPositionTextureColor {
		return nil
	}
	if shader, ok := r.programs[name]; ok {
		return shader
	}
	if !r.warnedPrograms[name] {
		r.warnedPrograms[name] = true
		log.Printf("[EbitenRenderer] Warning: program %q not registered, using default pipeline", name)
	}
	return nil
}

// texture 返回可绘制的 ebiten 纹理，普通 image.Image 只转换一次
func (r *EbitenRenderer) texture(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	if cached, ok := r.textures[img]; ok {
		return cached
	}
	eimg := ebiten.NewImageFromImage(img)
	r.textures[img] = eimg
	return eimg
}

// appendFanVertices 将进度顶点转换为 ebiten 顶点（应用节点变换）
func appendFanVertices(dst []ebiten.Vertex, cmd *progress.FanCommand) []ebiten.Vertex {
	for _, v := range cmd.Vertices {
		x, y := progress.TransformPoint(cmd.Transform, v.Position)
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   v.TexCoord.X,
			SrcY:   v.TexCoord.Y,
			ColorR: float32(v.Color.R) / 0xff,
			ColorG: float32(v.Color.G) / 0xff,
			ColorB: float32(v.Color.B) / 0xff,
			ColorA: float32(v.Color.A) / 0xff,
		})
	}
	return dst
}

// ebitenBlend 混合模式映射
func ebitenBlend(mode progress.BlendMode) ebiten.Blend {
	if mode == progress.BlendAdditive {
		// 加法混合模式（用于发光效果）
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	}
	return ebiten.BlendSourceOver
}
