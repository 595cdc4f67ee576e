package render

import "image/color"

// OpKind 记录的绘制操作种类
type OpKind int

const (
	OpSprite OpKind = iota
	OpStrokeRect
	OpFillRect
	OpFillCircle
	OpText
)

// Op 一次绘制操作
type Op struct {
	Kind     OpKind
	Name     string // 贴图名或文字内容
	X, Y     float64
	W, H     float64 // 矩形尺寸；圆的半径存放在 W
	Rotation float64
	FlipX    bool
	FlipY    bool
	Color    color.Color
}

// Recorder 记录所有绘制请求的渲染器
// 用于测试和无界面模拟
type Recorder struct {
	Ops []Op
}

// NewRecorder 创建记录器
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) DrawSprite(name string, x, y, rotation float64, flipX, flipY bool) {
	r.Ops = append(r.Ops, Op{Kind: OpSprite, Name: name, X: x, Y: y, Rotation: rotation, FlipX: flipX, FlipY: flipY})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, W: radius, Color: clr})
}

func (r *Recorder) DrawText(s string, x, y, size float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Name: s, X: x, Y: y, H: size, Color: clr})
}

// Sprites 返回指定名称的贴图绘制记录
func (r *Recorder) Sprites(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpSprite && op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Count 统计某类操作的数量
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// HasText 是否绘制过指定文字
func (r *Recorder) HasText(s string) bool {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Name == s {
			return true
		}
	}
	return false
}
