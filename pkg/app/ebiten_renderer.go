package app

import (
	"bytes"
	"image/color"
	"log"
	"math"

	"github.com/decker502/bubbletd/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// screenRenderer 将场景的绘制请求画到 ebiten 屏幕上
// 实现 render.Renderer 和 render.Overlay
type screenRenderer struct {
	screen  *ebiten.Image
	sprites config.SpriteTable
	images  map[string]*ebiten.Image
	font    *text.GoTextFaceSource
}

func newScreenRenderer(sprites config.SpriteTable) *screenRenderer {
	r := &screenRenderer{
		sprites: sprites,
		images:  make(map[string]*ebiten.Image),
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[Renderer] 字体加载失败，文字将不会绘制: %v", err)
	} else {
		r.font = source
	}
	return r
}

// image 按贴图表生成纯色贴图，生成后缓存
func (r *screenRenderer) image(name string) *ebiten.Image {
	if img, ok := r.images[name]; ok {
		return img
	}
	s, ok := r.sprites[name]
	if !ok || s.Width < 1 || s.Height < 1 {
		r.images[name] = nil
		return nil
	}
	img := ebiten.NewImage(int(s.Width), int(s.Height))
	img.Fill(s.RGBA())
	r.images[name] = img
	return img
}

// DrawSprite 以贴图中心为原点翻转和旋转
func (r *screenRenderer) DrawSprite(name string, x, y, rotation float64, flipX, flipY bool) {
	img := r.image(name)
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	sx, sy := 1.0, 1.0
	if flipX {
		sx = -1
	}
	if flipY {
		sy = -1
	}
	op.GeoM.Scale(sx, sy)
	if rotation != 0 {
		op.GeoM.Rotate(rotation * math.Pi / 180)
	}
	op.GeoM.Translate(x+w/2, y+h/2)
	r.screen.DrawImage(img, op)
}

func (r *screenRenderer) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(r.screen, float32(x), float32(y), float32(w), float32(h), 2, clr, false)
}

func (r *screenRenderer) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (r *screenRenderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(r.screen, float32(cx), float32(cy), float32(radius), clr, true)
}

func (r *screenRenderer) DrawText(s string, x, y, size float64, clr color.Color) {
	if r.font == nil {
		return
	}
	face := &text.GoTextFace{Source: r.font, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.screen, s, face, op)
}
