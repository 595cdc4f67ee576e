package terminal

import (
	"image/color"
	"math"

	"github.com/decker502/bubbletd/pkg/config"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cellRenderer 把画布坐标缩放到终端字符格
// 贴图画成带背景色的字符块，文字直接写入字符格
type cellRenderer struct {
	screen  tcell.Screen
	sprites config.SpriteTable
	scaleX  float64 // 每个字符格对应的画布宽度
	scaleY  float64
	cols    int
	rows    int
}

func newCellRenderer(screen tcell.Screen, sprites config.SpriteTable) *cellRenderer {
	return &cellRenderer{screen: screen, sprites: sprites}
}

// resize 按画布和终端尺寸重新计算缩放
func (r *cellRenderer) resize(canvasW, canvasH float64) {
	r.cols, r.rows = r.screen.Size()
	if r.cols < 1 {
		r.cols = 1
	}
	if r.rows < 1 {
		r.rows = 1
	}
	r.scaleX = canvasW / float64(r.cols)
	r.scaleY = canvasH / float64(r.rows)
}

// toCell 画布坐标 -> 字符格
func (r *cellRenderer) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / r.scaleX)), int(math.Floor(y / r.scaleY))
}

// toCanvas 字符格中心 -> 画布坐标
func (r *cellRenderer) toCanvas(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * r.scaleX, (float64(row) + 0.5) * r.scaleY
}

func (r *cellRenderer) put(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *cellRenderer) background(col, row int) tcell.Style {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return tcell.StyleDefault
	}
	_, _, style, _ := r.screen.GetContent(col, row)
	return style
}

// DrawSprite 旋转和翻转在字符格中无法表现，忽略
func (r *cellRenderer) DrawSprite(name string, x, y, rotation float64, flipX, flipY bool) {
	s, ok := r.sprites[name]
	if !ok {
		return
	}
	c := s.RGBA()
	style := tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Foreground(tcell.ColorWhite)

	col0, row0 := r.toCell(x, y)
	col1, row1 := r.toCell(x+s.Width-1, y+s.Height-1)
	glyph := s.GlyphRune()
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			r.put(col, row, glyph, style)
		}
	}
}

func rgb(clr color.Color) (tcell.Color, bool) {
	cr, cg, cb, ca := clr.RGBA()
	if ca == 0 {
		return tcell.ColorDefault, false
	}
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8)), true
}

func (r *cellRenderer) StrokeRect(x, y, w, h float64, clr color.Color) {
	fg, ok := rgb(clr)
	if !ok {
		return
	}
	col0, row0 := r.toCell(x, y)
	col1, row1 := r.toCell(x+w-1, y+h-1)
	for col := col0; col <= col1; col++ {
		r.put(col, row0, '─', r.background(col, row0).Foreground(fg))
		r.put(col, row1, '─', r.background(col, row1).Foreground(fg))
	}
	for row := row0; row <= row1; row++ {
		r.put(col0, row, '│', r.background(col0, row).Foreground(fg))
		r.put(col1, row, '│', r.background(col1, row).Foreground(fg))
	}
}

// FillRect 半透明颜色只改背景，不覆盖字符
func (r *cellRenderer) FillRect(x, y, w, h float64, clr color.Color) {
	bg, ok := rgb(clr)
	if !ok {
		return
	}
	_, _, _, a := clr.RGBA()
	col0, row0 := r.toCell(x, y)
	col1, row1 := r.toCell(x+w-1, y+h-1)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if a < 0xffff {
				if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
					continue
				}
				ch, _, style, _ := r.screen.GetContent(col, row)
				r.put(col, row, ch, style.Background(bg))
				continue
			}
			r.put(col, row, ' ', tcell.StyleDefault.Background(bg))
		}
	}
}

// FillCircle 只画出圆的轮廓点
func (r *cellRenderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	fg, ok := rgb(clr)
	if !ok || radius <= 0 {
		return
	}
	steps := int(2 * math.Pi * radius / math.Min(r.scaleX, r.scaleY))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := r.toCell(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		r.put(col, row, '·', r.background(col, row).Foreground(fg))
	}
}

func (r *cellRenderer) DrawText(s string, x, y, size float64, clr color.Color) {
	fg, ok := rgb(clr)
	if !ok {
		return
	}
	col, row := r.toCell(x, y)
	for _, ch := range s {
		r.put(col, row, ch, r.background(col, row).Foreground(fg))
		col += runewidth.RuneWidth(ch)
	}
}
