package modules

import (
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/utils"
)

// ButtonModule 带悬停高亮的贴图按钮
// 开始界面和结束界面共用
type ButtonModule struct {
	X, Y          float64
	Width, Height float64

	sprite      string
	lightSprite string
	label       string
	hovered     bool
	onClick     func()
}

// NewButtonModule 创建按钮
//
// 参数:
//   - images: 贴图注册表，按钮尺寸取自 sprite
//   - sprite, lightSprite: 普通与悬停贴图
//   - label: 按钮文字，为空时不绘制
//   - centerX, y: 按钮水平中心与顶边
//   - onClick: 点击回调
func NewButtonModule(images render.ImageRegistry, sprite, lightSprite, label string, centerX, y float64, onClick func()) *ButtonModule {
	w, h, _ := images.ImageSize(sprite)
	return &ButtonModule{
		X:           centerX - w/2,
		Y:           y,
		Width:       w,
		Height:      h,
		sprite:      sprite,
		lightSprite: lightSprite,
		label:       label,
		onClick:     onClick,
	}
}

// Contains 点是否严格位于按钮内
func (b *ButtonModule) Contains(x, y float64) bool {
	return utils.IsPointInRect(x, y, b.X, b.Y, b.Width, b.Height)
}

// Hovered 指针是否悬停在按钮上
func (b *ButtonModule) Hovered() bool {
	return b.hovered
}

// HandleInput 处理指针事件
// 返回: 事件是否触发了点击
func (b *ButtonModule) HandleInput(ev input.Event) bool {
	if !ev.IsPointer() {
		return false
	}
	b.hovered = b.Contains(ev.X, ev.Y)
	if ev.Kind == input.PointerClick && b.hovered {
		if b.onClick != nil {
			b.onClick()
		}
		return true
	}
	return false
}

// Draw 绘制按钮
func (b *ButtonModule) Draw(r render.Renderer) {
	name := b.sprite
	if b.hovered && b.lightSprite != "" {
		name = b.lightSprite
	}
	r.DrawSprite(name, b.X, b.Y, 0, false, false)

	if b.label == "" {
		return
	}
	if o, ok := render.AsOverlay(r); ok {
		const size = 28.0
		textWidth := float64(len([]rune(b.label))) * size
		o.DrawText(b.label, b.X+(b.Width-textWidth)/2, b.Y+(b.Height-size)/2, size, render.ColorTextLight)
	}
}
