// Package input 定义与宿主平台无关的输入事件
//
// 宿主（ebiten 窗口、tcell 终端）把原始鼠标/键盘状态转换为离散事件推入 Queue，
// 场景在每个 tick 开始时一次性取出处理。
package input

import "fmt"

// EventKind 事件种类
type EventKind int

const (
	PointerDown EventKind = iota
	PointerDrag
	PointerUp
	PointerHover
	PointerClick
	KeyDown
	KeyUp
)

// String 返回事件种类名称
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerDrag:
		return "drag"
	case PointerUp:
		return "up"
	case PointerHover:
		return "hover"
	case PointerClick:
		return "click"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Key 按键名称
// 字母和数字键使用小写字符本身，其余使用下面的常量
type Key string

const (
	KeyEscape Key = "escape"
	KeyEnter  Key = "enter"
	KeySpace  Key = "space"
	KeyP      Key = "p"
	KeyQ      Key = "q"
)

// Event 输入事件
// 指针事件坐标为画布坐标
type Event struct {
	Kind EventKind
	X, Y float64
	Key  Key
}

// IsPointer 是否为指针事件
func (e Event) IsPointer() bool {
	return e.Kind <= PointerClick
}

// Pointer 构造指针事件
func Pointer(kind EventKind, x, y float64) Event {
	return Event{Kind: kind, X: x, Y: y}
}

// Keyboard 构造键盘事件
func Keyboard(key Key, down bool) Event {
	kind := KeyUp
	if down {
		kind = KeyDown
	}
	return Event{Kind: kind, Key: key}
}
