package scenes

import (
	"log"

	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/game"
)

// NewSceneFactory 返回按种类创建场景的工厂
// 游戏场景创建失败时返回 nil，SceneManager 会保留当前场景
func NewSceneFactory(sm *game.SceneManager, session *game.Session) game.SceneFactory {
	return func(kind game.SceneKind) game.Scene {
		switch kind {
		case game.SceneStart:
			return NewStartScene(sm, session)
		case game.SceneGame:
			scene, err := NewGameScene(sm, session)
			if err != nil {
				log.Printf("[SceneFactory] 创建游戏场景失败: %v", err)
				return nil
			}
			return scene
		case game.ScenePause:
			return NewPauseScene(sm, session)
		case game.SceneEnd:
			return NewEndScene(sm, session)
		}
		log.Printf("[SceneFactory] 未知场景: %s", kind)
		return nil
	}
}

// NewGame 创建会话和场景管理器，并进入开始界面
//
// 参数:
//   - cfg: 任务配置
//   - seed: 随机种子，0 表示使用当前时间
//   - startMission: 起始任务（从 0 开始）
func NewGame(cfg *config.MissionConfig, seed int64, startMission int) (*game.SceneManager, *game.Session) {
	session := game.NewSession(cfg, seed, startMission)
	sm := game.NewSceneManager()
	sm.SetSceneFactory(NewSceneFactory(sm, session))
	sm.SwitchTo(NewStartScene(sm, session))
	return sm, session
}
