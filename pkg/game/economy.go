package game

// Economy 玩家金钱
// 只由游戏场景写入：放置扣费与击杀奖励
type Economy struct {
	money int
}

// NewEconomy 创建金钱计数器
func NewEconomy(initial int) *Economy {
	if initial < 0 {
		initial = 0
	}
	return &Economy{money: initial}
}

// Money 返回当前金钱
func (e *Economy) Money() int {
	return e.money
}

// Increase 增加金钱，非正数被忽略
func (e *Economy) Increase(amount int) {
	if amount <= 0 {
		return
	}
	e.money += amount
}

// CanAfford 金钱是否足够
func (e *Economy) CanAfford(amount int) bool {
	return e.money >= amount
}

// Decrease 扣除金钱，如果金钱不足返回 false 且不扣除
// 金钱永远不会变为负数
func (e *Economy) Decrease(amount int) bool {
	if amount < 0 {
		return false
	}
	if e.money < amount {
		return false
	}
	e.money -= amount
	return true
}
