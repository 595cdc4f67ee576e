package components

// Cooldown 以 tick 计数的冷却计时器
// 创建时处于冷却中（Current = Max），每次 Update 减一，归零即就绪
type Cooldown struct {
	Max     int
	Current int
}

// NewCooldown 创建一个刚开始冷却的计时器
func NewCooldown(max int) Cooldown {
	if max < 0 {
		max = 0
	}
	return Cooldown{Max: max, Current: max}
}

// Update 推进一个 tick，不会变为负数
func (c *Cooldown) Update() {
	if c.Current > 0 {
		c.Current--
	}
}

// IsActive 冷却是否结束
func (c *Cooldown) IsActive() bool {
	return c.Current == 0
}

// Reset 重新开始冷却
func (c *Cooldown) Reset() {
	c.Current = c.Max
}
