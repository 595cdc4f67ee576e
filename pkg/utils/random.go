package utils

import (
	"math/rand"
	"time"
)

// NewRand 创建随机数生成器
// seed 为 0 时使用当前时间作为种子
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RangeBetween 返回 [lo, hi) 区间内的随机整数
// hi <= lo 时直接返回 lo
func RangeBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
