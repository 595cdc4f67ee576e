package game

import (
	"log"
	"math/rand"

	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/utils"
)

// Outcome 游戏结局
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String 返回结局名称
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// Session 一次游戏会话的跨场景状态
// 包括任务进度、得分、带入下一关的金钱、随机数和事件总线
type Session struct {
	Config *config.MissionConfig
	Events *event.EventBus

	seed         int64
	startMission int
	rng          *rand.Rand

	mission int
	score   int
	money   int
	outcome Outcome
}

// NewSession 创建会话
// 参数:
//   - cfg: 任务配置
//   - seed: 随机种子，0 表示使用当前时间
//   - startMission: 起始任务（从 0 开始），越界时从第一关开始
func NewSession(cfg *config.MissionConfig, seed int64, startMission int) *Session {
	if startMission < 0 || startMission >= cfg.MissionCount() {
		startMission = 0
	}
	s := &Session{
		Config:       cfg,
		Events:       event.NewEventBus(),
		seed:         seed,
		startMission: startMission,
	}
	s.Events.On(event.EvtEnemyKilled, func(event.Event) {
		s.score += cfg.Economy.KillScore
	})
	s.Reset()
	return s
}

// Reset 重新开始游戏
func (s *Session) Reset() {
	s.mission = s.startMission
	s.score = 0
	s.money = s.Config.Economy.InitialMoney
	s.outcome = OutcomeNone
	s.rng = utils.NewRand(s.seed)
	s.Events.Clear()
	log.Printf("[Session] 重置: 任务 %d, 金钱 %d", s.mission+1, s.money)
}

// MissionIndex 当前任务序号（从 0 开始）
func (s *Session) MissionIndex() int {
	return s.mission
}

// CurrentMission 当前任务配置
func (s *Session) CurrentMission() (config.Mission, bool) {
	return s.Config.Mission(s.mission)
}

// Score 当前得分
func (s *Session) Score() int {
	return s.score
}

// Money 带入当前任务的金钱
func (s *Session) Money() int {
	return s.money
}

// Outcome 游戏结局
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Rand 会话共享的随机数生成器
func (s *Session) Rand() *rand.Rand {
	return s.rng
}

// Advance 进入下一关，携带当前金钱
// 返回: 是否还有下一关
func (s *Session) Advance(money int) bool {
	s.money = money
	s.mission++
	if s.mission >= s.Config.MissionCount() {
		log.Printf("[Session] 所有任务完成")
		return false
	}
	log.Printf("[Session] 进入任务 %d, 携带金钱 %d", s.mission+1, money)
	return true
}

// Finish 记录结局并发出 GameOver 事件
func (s *Session) Finish(outcome Outcome) {
	s.outcome = outcome
	s.Events.Emit(event.Event{
		Type:    event.EvtGameOver,
		Payload: event.GameOver{Victory: outcome == OutcomeVictory, Score: s.score},
	})
	log.Printf("[Session] 游戏结束: %s, 得分 %d", outcome, s.score)
}
