package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于碰撞系统检测子弹与敌人的重叠，也用于计算实体中心
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素），与贴图宽度一致
	Height float64 // 碰撞盒高度（像素），与贴图高度一致
}
