package config

import "github.com/decker502/bubbletd/pkg/types"

// 默认配置值
const (
	DefaultTickRate       = 50
	DefaultCanvasWidth    = 1200
	DefaultCanvasHeight   = 700
	DefaultCellWidth      = 120.0
	DefaultCellHeight     = 100.0
	DefaultGridColumns    = 10
	DefaultGridRows       = 6
	DefaultInitialMoney   = 50
	DefaultKillScore      = 100
	DefaultEnemiesPerWave = 20
	DefaultInterludeTicks = 100
	DefaultBulletSpeed    = 10.0
	DefaultBulletSprite   = "bullet"
	DefaultShopSpacing    = 100.0
	DefaultShopOffsetY    = -20.0
)

// defaultTowerStats 内置的炮塔属性表
var defaultTowerStats = map[types.TowerKind]TowerStats{
	types.TowerDoomsday:    {Price: 200, Attack: 40, Range: 260, CoolDownTime: 40, BuildCoolDown: 200},
	types.TowerAnnihilator: {Price: 120, Attack: 20, Range: 210, CoolDownTime: 25, BuildCoolDown: 150},
	types.TowerHeavy:       {Price: 80, Attack: 10, Range: 180, CoolDownTime: 20, BuildCoolDown: 100},
	types.TowerLight:       {Price: 40, Attack: 5, Range: 150, CoolDownTime: 10, BuildCoolDown: 50},
}

// defaultSprites 内置的贴图表，配置文件中未声明的贴图使用这里的尺寸与颜色
var defaultSprites = SpriteTable{
	"enemy0":           {Width: 50, Height: 45, Color: "#d04040", Glyph: "e"},
	"enemy1":           {Width: 50, Height: 45, Color: "#d08040", Glyph: "e"},
	"enemy2":           {Width: 50, Height: 45, Color: "#c040c0", Glyph: "e"},
	"enemy3":           {Width: 50, Height: 45, Color: "#8040d0", Glyph: "e"},
	"enemy4":           {Width: 50, Height: 45, Color: "#404040", Glyph: "e"},
	"doomsday":         {Width: 80, Height: 80, Color: "#202080", Glyph: "D"},
	"annihilator":      {Width: 76, Height: 76, Color: "#2060a0", Glyph: "A"},
	"heavy":            {Width: 70, Height: 70, Color: "#208060", Glyph: "H"},
	"light":            {Width: 60, Height: 60, Color: "#60a020", Glyph: "L"},
	"grey_doomsday":    {Width: 80, Height: 80, Color: "#808080", Glyph: "d"},
	"grey_annihilator": {Width: 76, Height: 76, Color: "#808080", Glyph: "a"},
	"grey_heavy":       {Width: 70, Height: 70, Color: "#808080", Glyph: "h"},
	"grey_light":       {Width: 60, Height: 60, Color: "#808080", Glyph: "l"},
	"bullet":           {Width: 10, Height: 10, Color: "#ffe000", Glyph: "*"},
	"grass0":           {Width: 120, Height: 100, Color: "#5cb85c", Glyph: " "},
	"grass1":           {Width: 120, Height: 100, Color: "#4cae4c", Glyph: " "},
	"grass2":           {Width: 120, Height: 100, Color: "#449d44", Glyph: " "},
	"road0":            {Width: 120, Height: 100, Color: "#c8a165", Glyph: "."},
	"road1":            {Width: 120, Height: 100, Color: "#bf955a", Glyph: "."},
	"road2":            {Width: 120, Height: 100, Color: "#b5894e", Glyph: "."},
	"moneyBox":         {Width: 200, Height: 60, Color: "#f0c040", Glyph: "$"},
	"towerBase":        {Width: 420, Height: 100, Color: "#604020", Glyph: "="},
	"startBg":          {Width: 1200, Height: 700, Color: "#1d3557", Glyph: " "},
	"startButton":      {Width: 240, Height: 80, Color: "#457b9d", Glyph: "#"},
	"startButtonLight": {Width: 240, Height: 80, Color: "#a8dadc", Glyph: "#"},
	"backButton":       {Width: 200, Height: 70, Color: "#457b9d", Glyph: "#"},
	"backButtonLight":  {Width: 200, Height: 70, Color: "#a8dadc", Glyph: "#"},
	"trophy":           {Width: 120, Height: 140, Color: "#ffd700", Glyph: "T"},
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(cfg *MissionConfig) {
	if cfg.TickRate == 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.Canvas.Width == 0 {
		cfg.Canvas.Width = DefaultCanvasWidth
	}
	if cfg.Canvas.Height == 0 {
		cfg.Canvas.Height = DefaultCanvasHeight
	}
	if cfg.Grid.CellWidth == 0 {
		cfg.Grid.CellWidth = DefaultCellWidth
	}
	if cfg.Grid.CellHeight == 0 {
		cfg.Grid.CellHeight = DefaultCellHeight
	}
	if cfg.Grid.Columns == 0 {
		cfg.Grid.Columns = DefaultGridColumns
	}
	if cfg.Grid.Rows == 0 {
		cfg.Grid.Rows = DefaultGridRows
	}
	if cfg.Economy.InitialMoney == 0 {
		cfg.Economy.InitialMoney = DefaultInitialMoney
	}
	if cfg.Economy.KillScore == 0 {
		cfg.Economy.KillScore = DefaultKillScore
	}
	if cfg.Wave.EnemiesPerWave == 0 {
		cfg.Wave.EnemiesPerWave = DefaultEnemiesPerWave
	}
	if cfg.Wave.InterludeTicks == 0 {
		cfg.Wave.InterludeTicks = DefaultInterludeTicks
	}
	if len(cfg.Wave.EnemySprites) == 0 {
		cfg.Wave.EnemySprites = []string{"enemy0", "enemy1", "enemy2", "enemy3", "enemy4"}
	}
	if cfg.Bullet.Speed == 0 {
		cfg.Bullet.Speed = DefaultBulletSpeed
	}
	if cfg.Bullet.Sprite == "" {
		cfg.Bullet.Sprite = DefaultBulletSprite
	}
	if cfg.Shop.Spacing == 0 {
		cfg.Shop.Spacing = DefaultShopSpacing
	}
	if cfg.Shop.OffsetY == 0 {
		cfg.Shop.OffsetY = DefaultShopOffsetY
	}

	if cfg.Towers == nil {
		cfg.Towers = make(map[types.TowerKind]TowerStats, len(defaultTowerStats))
	}
	for kind, stats := range defaultTowerStats {
		if _, ok := cfg.Towers[kind]; !ok {
			cfg.Towers[kind] = stats
		}
	}

	if cfg.Sprites == nil {
		cfg.Sprites = make(SpriteTable, len(defaultSprites))
	}
	for name, s := range defaultSprites {
		if _, ok := cfg.Sprites[name]; !ok {
			cfg.Sprites[name] = s
		}
	}
}

// Default 返回只包含内置默认值的配置（不含任务）
// 主要用于测试和在代码中构造任务
func Default() *MissionConfig {
	cfg := &MissionConfig{}
	applyDefaults(cfg)
	return cfg
}
