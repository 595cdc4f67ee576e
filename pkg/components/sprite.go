package components

// SpriteComponent 描述实体使用的贴图
// 贴图尺寸由图像注册表提供，旋转角度由炮塔/子弹组件给出
type SpriteComponent struct {
	Name  string
	FlipX bool
	FlipY bool
}
