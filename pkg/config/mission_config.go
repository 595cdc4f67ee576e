package config

import (
	"fmt"
	"os"

	"github.com/decker502/bubbletd/pkg/embedded"
	"github.com/decker502/bubbletd/pkg/types"
	"github.com/decker502/bubbletd/pkg/utils"
	"gopkg.in/yaml.v3"
)

// MissionConfig 游戏的完整配置
// 由 YAML 文件加载，启动后只读，显式传入各场景
type MissionConfig struct {
	TickRate int           `yaml:"tickRate"` // 每秒 tick 数，默认 50
	Canvas   CanvasConfig  `yaml:"canvas"`   // 画布尺寸
	Grid     GridConfig    `yaml:"grid"`     // 网格参数
	Economy  EconomyConfig `yaml:"economy"`  // 初始金钱与计分
	Wave     WaveConfig    `yaml:"wave"`     // 每波敌人参数
	Bullet   BulletConfig  `yaml:"bullet"`   // 子弹参数
	Shop     ShopConfig    `yaml:"shop"`     // 商店栏布局

	// Towers 各种炮塔的默认属性，任务内可覆盖
	Towers map[types.TowerKind]TowerStats `yaml:"towers"`
	// Missions 按顺序进行的任务列表
	Missions []Mission `yaml:"missions"`
	// Sprites 贴图注册表: 名称 -> 尺寸与颜色
	Sprites SpriteTable `yaml:"sprites"`
}

// CanvasConfig 画布尺寸（像素）
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig 网格参数
// 场地占据画布上方 Rows 行，底部剩余空间为商店栏
type GridConfig struct {
	CellWidth  float64 `yaml:"cellWidth"`  // 默认 120
	CellHeight float64 `yaml:"cellHeight"` // 默认 100
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
}

// EconomyConfig 金钱与计分
type EconomyConfig struct {
	InitialMoney int `yaml:"initialMoney"` // 默认 50
	KillScore    int `yaml:"killScore"`    // 每次击杀得分，默认 100
}

// WaveConfig 每波敌人的公共参数
type WaveConfig struct {
	EnemiesPerWave int      `yaml:"enemiesPerWave"` // 默认 20，任务内可覆盖
	InterludeTicks int      `yaml:"interludeTicks"` // 关卡开始前的过场 tick 数，默认 100
	EnemySprites   []string `yaml:"enemySprites"`   // 随机选取的敌人贴图
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Sprite string  `yaml:"sprite"`
}

// ShopConfig 商店栏中炮塔模板的布局
// 第 i 个模板位于 x = canvasWidth - (i+1)*Spacing, y = canvasHeight - spriteHeight + OffsetY
type ShopConfig struct {
	Spacing float64 `yaml:"spacing"` // 默认 100
	OffsetY float64 `yaml:"offsetY"` // 默认 -20
}

// TowerStats 一种炮塔的属性
type TowerStats struct {
	Price         int     `yaml:"price"`
	Attack        int     `yaml:"attack"`
	Range         float64 `yaml:"range"`
	CoolDownTime  int     `yaml:"coolDownTime"`  // 开火间隔（tick）
	BuildCoolDown int     `yaml:"buildCoolDown"` // 建造冷却（tick）
}

// EnemyStats 敌人属性
type EnemyStats struct {
	Life   int     `yaml:"life"`
	Speed  float64 `yaml:"speed"`
	Reward int     `yaml:"reward"`
}

// Mission 单个任务的配置
type Mission struct {
	Name string `yaml:"name"`
	// Route 路径点列表，每项为 [row, col]
	Route [][]int `yaml:"route"`
	// EnemyCount 本任务敌人数量，0 表示使用 wave.enemiesPerWave
	EnemyCount int        `yaml:"enemyCount"`
	Enemy      EnemyStats `yaml:"enemy"`
	// Towers 本任务对默认炮塔属性的覆盖（可选，只需填写要覆盖的字段）
	Towers map[types.TowerKind]TowerStats `yaml:"towers"`
}

// Waypoints 将路径点转换为格子坐标
func (m Mission) Waypoints() []utils.Cell {
	cells := make([]utils.Cell, 0, len(m.Route))
	for _, p := range m.Route {
		if len(p) != 2 {
			continue
		}
		cells = append(cells, utils.Cell{Row: p[0], Col: p[1]})
	}
	return cells
}

// LoadMissionConfig 从文件加载任务配置
// 参数:
//   - filepath: YAML 配置文件路径
//
// 返回:
//   - *MissionConfig: 已应用默认值并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadMissionConfig(filepath string) (*MissionConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mission config file %s: %w", filepath, err)
	}

	cfg, err := ParseMissionConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseMissionConfig 解析 YAML 数据
func ParseMissionConfig(data []byte) (*MissionConfig, error) {
	var cfg MissionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse mission config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateMissionConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid mission config: %w", err)
	}

	return &cfg, nil
}

// MissionCount 任务数量
func (c *MissionConfig) MissionCount() int {
	return len(c.Missions)
}

// Mission 返回第 index 个任务（从 0 开始）
func (c *MissionConfig) Mission(index int) (Mission, bool) {
	if index < 0 || index >= len(c.Missions) {
		return Mission{}, false
	}
	return c.Missions[index], true
}

// TowerStats 返回指定任务中某种炮塔的属性
// 任务覆盖值中的非零字段优先，其余取默认属性
func (c *MissionConfig) TowerStats(missionIndex int, kind types.TowerKind) (TowerStats, bool) {
	base, ok := c.Towers[kind]
	if !ok {
		return TowerStats{}, false
	}
	m, ok := c.Mission(missionIndex)
	if !ok {
		return base, true
	}
	override, ok := m.Towers[kind]
	if !ok {
		return base, true
	}
	if override.Price != 0 {
		base.Price = override.Price
	}
	if override.Attack != 0 {
		base.Attack = override.Attack
	}
	if override.Range != 0 {
		base.Range = override.Range
	}
	if override.CoolDownTime != 0 {
		base.CoolDownTime = override.CoolDownTime
	}
	if override.BuildCoolDown != 0 {
		base.BuildCoolDown = override.BuildCoolDown
	}
	return base, true
}

// EnemyCount 返回指定任务的敌人数量
func (c *MissionConfig) EnemyCount(missionIndex int) int {
	if m, ok := c.Mission(missionIndex); ok && m.EnemyCount > 0 {
		return m.EnemyCount
	}
	return c.Wave.EnemiesPerWave
}

// validateMissionConfig 校验配置
func validateMissionConfig(cfg *MissionConfig) error {
	if cfg.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", cfg.TickRate)
	}
	if cfg.Grid.CellWidth <= 0 || cfg.Grid.CellHeight <= 0 {
		return fmt.Errorf("grid cell size must be positive, got %vx%v", cfg.Grid.CellWidth, cfg.Grid.CellHeight)
	}
	if cfg.Grid.Columns <= 0 || cfg.Grid.Rows <= 0 {
		return fmt.Errorf("grid must have at least one column and row, got %dx%d", cfg.Grid.Columns, cfg.Grid.Rows)
	}
	if cfg.Economy.InitialMoney < 0 {
		return fmt.Errorf("initialMoney must not be negative, got %d", cfg.Economy.InitialMoney)
	}
	if cfg.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %v", cfg.Bullet.Speed)
	}

	for kind, stats := range cfg.Towers {
		if !kind.IsValid() {
			return fmt.Errorf("unknown tower kind %q", kind)
		}
		if err := validateTowerStats(stats); err != nil {
			return fmt.Errorf("tower %q: %w", kind, err)
		}
	}

	if len(cfg.Missions) == 0 {
		return fmt.Errorf("at least one mission is required")
	}
	for i, m := range cfg.Missions {
		if err := validateMission(cfg, i, m); err != nil {
			return fmt.Errorf("mission %d (%s): %w", i+1, m.Name, err)
		}
	}

	for _, name := range cfg.Wave.EnemySprites {
		if _, ok := cfg.Sprites[name]; !ok {
			return fmt.Errorf("enemy sprite %q is not in the sprite table", name)
		}
	}
	for name, s := range cfg.Sprites {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("sprite %q must have a positive size", name)
		}
	}
	return nil
}

func validateTowerStats(s TowerStats) error {
	if s.Price < 0 {
		return fmt.Errorf("price must not be negative, got %d", s.Price)
	}
	if s.Attack <= 0 {
		return fmt.Errorf("attack must be positive, got %d", s.Attack)
	}
	if s.Range <= 0 {
		return fmt.Errorf("range must be positive, got %v", s.Range)
	}
	if s.CoolDownTime <= 0 {
		return fmt.Errorf("coolDownTime must be positive, got %d", s.CoolDownTime)
	}
	if s.BuildCoolDown < 0 {
		return fmt.Errorf("buildCoolDown must not be negative, got %d", s.BuildCoolDown)
	}
	return nil
}

func validateMission(cfg *MissionConfig, index int, m Mission) error {
	if len(m.Route) < 2 {
		return fmt.Errorf("route needs at least 2 waypoints, got %d", len(m.Route))
	}
	for i, p := range m.Route {
		if len(p) != 2 {
			return fmt.Errorf("waypoint %d must be [row, col], got %v", i, p)
		}
		cell := utils.Cell{Row: p[0], Col: p[1]}
		if !cell.InBounds(cfg.Grid.Columns, cfg.Grid.Rows) {
			return fmt.Errorf("waypoint %d %v is outside the %dx%d grid", i, p, cfg.Grid.Columns, cfg.Grid.Rows)
		}
		if i == 0 {
			continue
		}
		prev := m.Route[i-1]
		dr := abs(p[0] - prev[0])
		dc := abs(p[1] - prev[1])
		if dr+dc != 1 {
			return fmt.Errorf("waypoints %d and %d are not adjacent: %v -> %v", i-1, i, prev, p)
		}
	}
	if m.Enemy.Life <= 0 {
		return fmt.Errorf("enemy life must be positive, got %d", m.Enemy.Life)
	}
	if m.Enemy.Speed <= 0 {
		return fmt.Errorf("enemy speed must be positive, got %v", m.Enemy.Speed)
	}
	if m.Enemy.Reward < 0 {
		return fmt.Errorf("enemy reward must not be negative, got %d", m.Enemy.Reward)
	}
	if m.EnemyCount < 0 {
		return fmt.Errorf("enemyCount must not be negative, got %d", m.EnemyCount)
	}
	for kind := range m.Towers {
		if !kind.IsValid() {
			return fmt.Errorf("unknown tower kind %q in overrides", kind)
		}
		merged, ok := cfg.TowerStats(index, kind)
		if !ok {
			return fmt.Errorf("tower %q has no default stats", kind)
		}
		if err := validateTowerStats(merged); err != nil {
			return fmt.Errorf("tower %q: %w", kind, err)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// EmbeddedMissionsPath 内置任务配置在嵌入资源中的路径
const EmbeddedMissionsPath = "data/missions.yaml"

// LoadMissions 指定路径时读取外部配置文件，路径为空时使用内置配置
func LoadMissions(path string) (*MissionConfig, error) {
	if path != "" {
		return LoadMissionConfig(path)
	}
	return LoadEmbeddedMissionConfig(EmbeddedMissionsPath)
}

// LoadEmbeddedMissionConfig 从嵌入资源加载任务配置
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedMissionConfig(path string) (*MissionConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded mission config %s: %w", path, err)
	}
	cfg, err := ParseMissionConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
