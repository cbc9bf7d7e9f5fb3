package progress

import "log"

// updateRadial 重新计算几何并写入顶点缓冲区
//
// 顶点数不变时原地覆盖，避免每次更新都重新分配
func (rp *RadialProgress) updateRadial() {
	if rp.sprite == nil {
		return
	}

	geo := rp.solveRadial()

	// 中心点 + 扫描起点 + 交点，再加上经过的角点
	required := geo.traversed + 3
	if len(rp.vertexData) != required {
		rp.vertexData = make([]Vertex, required)
	}
	rp.updateColor()

	rp.setVertex(0, rp.midpoint)
	rp.setVertex(1, geo.origin)
	for x := 0; x < geo.traversed; x++ {
		rp.setVertex(x+2, rp.boundaryCorner(geo.order[x]%boundaryCornerCount))
	}
	// 交点总是最后一个
	rp.setVertex(required-1, geo.hit)

	if DebugRadial {
		log.Printf("[RadialProgress] origin=%v hit=%v traversed=%d vertices=%d",
			geo.origin, geo.hit, geo.traversed, required)
	}
}

// setVertex 写入一个顶点的位置与纹理坐标（颜色由 updateColor 负责）
func (rp *RadialProgress) setVertex(i int, alpha Vec2) {
	rp.vertexData[i].Position = rp.VertexFromAlphaPoint(alpha)
	rp.vertexData[i].TexCoord = rp.TextureCoordFromAlphaPoint(alpha)
}

// updateColor 用精灵当前颜色刷新所有顶点颜色
func (rp *RadialProgress) updateColor() {
	if rp.sprite == nil || rp.vertexData == nil {
		return
	}
	c := rp.sprite.Quad().TL.Color
	for i := range rp.vertexData {
		rp.vertexData[i].Color = c
	}
}

// discardVertexData 释放顶点缓冲区
func (rp *RadialProgress) discardVertexData() {
	rp.vertexData = nil
}
