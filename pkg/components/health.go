package components

// HealthComponent 存储实体的生命值信息
// 不变量: 0 <= CurrentHealth <= MaxHealth
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// ApplyDamage 扣除生命值，结果不低于 0
// 返回: 实际扣除的数值
func (h *HealthComponent) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > h.CurrentHealth {
		amount = h.CurrentHealth
	}
	h.CurrentHealth -= amount
	return amount
}

// IsDepleted 生命值是否耗尽
func (h *HealthComponent) IsDepleted() bool {
	return h.CurrentHealth <= 0
}

// Proportion 返回剩余生命比例 [0, 1]，用于绘制血条
func (h *HealthComponent) Proportion() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
