package components

import "github.com/decker502/bubbletd/pkg/utils"

// TileComponent 背景格子
// Road 为 true 表示该格在敌人路线上
type TileComponent struct {
	Cell utils.Cell
	Road bool
}

// DecorComponent 静态装饰贴图（商店栏底座、金钱框）
// 绘制在背景格子之上、其他实体之下
type DecorComponent struct{}
