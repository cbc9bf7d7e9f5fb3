package progress

import (
	"log"
	"math"

	"github.com/chewxy/math32"
)

// traversalSlots 遍历槽数量：顶边在扫描起点处被分成两半，4 个角点对应 5 个槽
const traversalSlots = boundaryCornerCount + 1

// radialGeometry 一次几何求解的结果（alpha 空间）
type radialGeometry struct {
	origin    Vec2                // 扫描起点（"12 点钟"位置）
	hit       Vec2                // 扫描射线与边界的交点
	order     [traversalSlots]int // 角点遍历顺序（索引 4 等同于 0）
	traversed int                 // 到达交点前经过的角点数量
}

// normalizeAngle 将角度规范到 [0, 360)
func normalizeAngle(angle float32) float32 {
	for angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = math32.Mod(angle, 360)
	}
	return angle
}

// sweepRegime 根据起始角所在象限选择扫描起点、遍历顺序和半边截断比例
func sweepRegime(baseAngle float32, mid Vec2) (origin Vec2, order [traversalSlots]int, halfEdge float32) {
	switch {
	case baseAngle < 90:
		return Vec2{mid.X, 1}, [traversalSlots]int{0, 1, 2, 3, 4}, 1 - mid.X
	case baseAngle < 180:
		return Vec2{1, mid.Y}, [traversalSlots]int{1, 2, 3, 4, 0}, 1 - mid.Y
	case baseAngle < 270:
		return Vec2{mid.X, 0}, [traversalSlots]int{2, 3, 4, 0, 1}, mid.X
	default:
		return Vec2{0, mid.Y}, [traversalSlots]int{3, 4, 0, 1, 2}, mid.Y
	}
}

// solveRadial 求解扫描射线的出口边、交点以及需要经过的角点
func (rp *RadialProgress) solveRadial() radialGeometry {
	alpha := rp.percentage / 100
	sweep := alpha
	if !rp.reverseDirection {
		sweep = 1 - alpha
	}
	angle := 2 * math.Pi * sweep

	baseAngle := normalizeAngle(rp.startAngle)
	origin, order, halfEdge := sweepRegime(baseAngle, rp.midpoint)

	geo := radialGeometry{origin: origin, order: order}

	// 0% 与 100% 不需要求交：交点就是扫描起点
	if alpha == 0 {
		geo.hit = origin
		geo.traversed = 0
		return geo
	}
	if alpha == 1 {
		geo.hit = origin
		geo.traversed = traversalSlots - 1
		return geo
	}

	end := origin.RotateByAngle(rp.midpoint, angle)
	firstIndex, lastIndex := order[0], order[traversalSlots-1]

	minT := float32(math.MaxFloat32)
	for x, i := range order {
		prev := (i + boundaryCornerCount - 1) % boundaryCornerCount
		edgeA := rp.boundaryCorner(i % boundaryCornerCount)
		edgeB := rp.boundaryCorner(prev)

		// 顶边在起点处被分成两半，首尾两个槽只取半条边
		if i == firstIndex {
			edgeB = edgeA.Lerp(edgeB, halfEdge)
		} else if i == lastIndex {
			edgeA = edgeA.Lerp(edgeB, halfEdge)
		}

		s, t, ok := lineIntersect(edgeA, edgeB, rp.midpoint, end)
		if !ok {
			continue
		}
		// 半边按线段处理，s 必须落在 [0,1]
		if (i == firstIndex || i == lastIndex) && (s < 0 || s > 1) {
			continue
		}
		// 只保留射线正方向上最近的交点；t 相等时先遇到的槽优先
		if t >= 0 && t < minT {
			minT = t
			geo.traversed = x
		}

		if DebugRadial {
			log.Printf("[RadialProgress] slot %d (corner %d): A=%v B=%v s=%.4f t=%.4f", x, i, edgeA, edgeB, s, t)
		}
	}

	geo.hit = rp.midpoint.Add(end.Sub(rp.midpoint).Scale(minT))
	return geo
}
