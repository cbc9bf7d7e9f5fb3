package progress

// boundaryCornerCount 边界角点数量
const boundaryCornerCount = 4

// 边界角点表（alpha 空间），按角点索引排列
// 正向：从右上角开始顺时针；反向：从左上角开始逆时针
var (
	boundaryCorners = [boundaryCornerCount]Vec2{
		{1, 1}, {1, 0}, {0, 0}, {0, 1},
	}
	reversedBoundaryCorners = [boundaryCornerCount]Vec2{
		{0, 1}, {0, 0}, {1, 0}, {1, 1},
	}
)

// boundaryCorner 返回角点索引对应的 alpha 坐标
// 超出范围的索引返回零点
func (rp *RadialProgress) boundaryCorner(index int) Vec2 {
	if index < 0 || index >= boundaryCornerCount {
		return Vec2{}
	}
	if rp.reverseDirection {
		return reversedBoundaryCorners[index]
	}
	return boundaryCorners[index]
}

// TextureCoordFromAlphaPoint 将 alpha 坐标映射为纹理坐标
// 在 BL 与 TR 两个角的纹理坐标之间插值；精灵源区域旋转时先交换 x/y
// 未设置精灵时返回零坐标
func (rp *RadialProgress) TextureCoordFromAlphaPoint(alpha Vec2) Vec2 {
	if rp.sprite == nil {
		return Vec2{}
	}
	quad := rp.sprite.Quad()
	lo, hi := quad.BL.TexCoord, quad.TR.TexCoord
	if rp.sprite.IsTextureRectRotated() {
		alpha.X, alpha.Y = alpha.Y, alpha.X
	}
	return Vec2{
		lo.X*(1-alpha.X) + hi.X*alpha.X,
		lo.Y*(1-alpha.Y) + hi.Y*alpha.Y,
	}
}

// VertexFromAlphaPoint 将 alpha 坐标映射为顶点坐标
// 未设置精灵时返回零坐标
func (rp *RadialProgress) VertexFromAlphaPoint(alpha Vec2) Vec2 {
	if rp.sprite == nil {
		return Vec2{}
	}
	quad := rp.sprite.Quad()
	lo, hi := quad.BL.Position, quad.TR.Position
	return Vec2{
		lo.X*(1-alpha.X) + hi.X*alpha.X,
		lo.Y*(1-alpha.Y) + hi.Y*alpha.Y,
	}
}
