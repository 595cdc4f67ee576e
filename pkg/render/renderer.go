// Package render 定义模拟核心与宿主之间的绘制接口
//
// 核心只提交“在某处绘制某贴图”的请求，从不接触像素。
package render

import "image/color"

// Renderer 贴图绘制能力
// (x, y) 为贴图左上角，rotation 为绕贴图中心顺时针旋转的角度（度）
type Renderer interface {
	DrawSprite(name string, x, y, rotation float64, flipX, flipY bool)
}

// Overlay 可选的图形与文字绘制能力
// 宿主实现该接口时，场景会额外绘制血条、射程圈、格子高亮和文字
type Overlay interface {
	StrokeRect(x, y, w, h float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	DrawText(s string, x, y, size float64, clr color.Color)
}

// ImageRegistry 贴图尺寸查询
type ImageRegistry interface {
	ImageSize(name string) (w, h float64, ok bool)
}

// AsOverlay 返回渲染器的 Overlay 能力
func AsOverlay(r Renderer) (Overlay, bool) {
	o, ok := r.(Overlay)
	return o, ok
}

// 场景共用的颜色
var (
	ColorGridValid   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorGridInvalid = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorRange       = color.RGBA{R: 0, G: 255, B: 255, A: 128}
	ColorLifeBack    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorLifeFront   = color.RGBA{R: 0, G: 160, B: 0, A: 255}
	ColorText        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorTextLight   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorShade       = color.RGBA{R: 0, G: 0, B: 0, A: 128}
	ColorTooltip     = color.RGBA{R: 255, G: 255, B: 224, A: 230}
)
