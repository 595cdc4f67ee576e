// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// TowerKind 定义炮塔的种类
// 取值与任务配置文件中的 towers 键一致
type TowerKind string

const (
	// TowerDoomsday 毁世炮
	TowerDoomsday TowerKind = "doomsday"
	// TowerAnnihilator 歼灭炮
	TowerAnnihilator TowerKind = "annihilator"
	// TowerHeavy 大炮
	TowerHeavy TowerKind = "heavy"
	// TowerLight 小炮
	TowerLight TowerKind = "light"
)

// AllTowerKinds 返回商店栏中从右到左排列的炮塔种类
func AllTowerKinds() []TowerKind {
	return []TowerKind{TowerDoomsday, TowerAnnihilator, TowerHeavy, TowerLight}
}

// IsValid 检查是否为已知的炮塔种类
func (k TowerKind) IsValid() bool {
	switch k {
	case TowerDoomsday, TowerAnnihilator, TowerHeavy, TowerLight:
		return true
	}
	return false
}

// DisplayName 返回炮塔的中文名称
func (k TowerKind) DisplayName() string {
	switch k {
	case TowerDoomsday:
		return "毁世炮"
	case TowerAnnihilator:
		return "歼灭炮"
	case TowerHeavy:
		return "大炮"
	case TowerLight:
		return "小炮"
	default:
		return string(k)
	}
}

// GreySprite 返回不可购买状态下使用的灰色贴图名
func (k TowerKind) GreySprite() string {
	return "grey_" + string(k)
}
