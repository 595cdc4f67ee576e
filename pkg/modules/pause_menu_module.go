package modules

import (
	"github.com/decker502/bubbletd/pkg/render"
)

// PauseMenuModule 暂停遮罩
// 在被暂停的游戏画面上覆盖半透明黑色和提示文字
type PauseMenuModule struct {
	width, height float64
}

// NewPauseMenuModule 创建暂停遮罩
func NewPauseMenuModule(width, height float64) *PauseMenuModule {
	return &PauseMenuModule{width: width, height: height}
}

// Draw 绘制遮罩
// 渲染器不支持 Overlay 时不绘制任何内容
func (m *PauseMenuModule) Draw(r render.Renderer) {
	o, ok := render.AsOverlay(r)
	if !ok {
		return
	}
	o.FillRect(0, 0, m.width, m.height, render.ColorShade)
	o.DrawText(PauseTitle, m.width/2-48, m.height/2-60, 48, render.ColorTextLight)
	o.DrawText(PauseHint, m.width/2-150, m.height/2+20, 20, render.ColorTextLight)
}

const (
	PauseTitle = "暂停"
	PauseHint  = "按 P / Esc 或点击继续"
)
