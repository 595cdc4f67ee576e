package input

// DefaultClickSlop 按下与抬起之间移动不超过该距离（像素）视为单击
const DefaultClickSlop = 5.0

// Tracker 将每帧的鼠标位置和左键状态转换为离散指针事件
// 按下 -> down；按住移动 -> drag；抬起 -> up（未拖动时追加 click）；未按下移动 -> hover
type Tracker struct {
	ClickSlop float64

	pressed bool
	moved   bool // 本次按下后移动距离超过 ClickSlop
	started bool
	lastX   float64
	lastY   float64
	downX   float64
	downY   float64
}

// NewTracker 创建指针追踪器
func NewTracker() *Tracker {
	return &Tracker{ClickSlop: DefaultClickSlop}
}

// Update 输入本帧的指针状态，返回产生的事件
func (t *Tracker) Update(x, y float64, pressed bool) []Event {
	var events []Event
	moved := !t.started || x != t.lastX || y != t.lastY
	t.started = true

	switch {
	case pressed && !t.pressed:
		t.downX, t.downY = x, y
		t.moved = false
		events = append(events, Pointer(PointerDown, x, y))
	case pressed && t.pressed:
		if moved {
			dx, dy := x-t.downX, y-t.downY
			if dx*dx+dy*dy > t.ClickSlop*t.ClickSlop {
				t.moved = true
			}
			events = append(events, Pointer(PointerDrag, x, y))
		}
	case !pressed && t.pressed:
		events = append(events, Pointer(PointerUp, x, y))
		if !t.moved {
			events = append(events, Pointer(PointerClick, x, y))
		}
	default:
		if moved {
			events = append(events, Pointer(PointerHover, x, y))
		}
	}

	t.pressed = pressed
	t.lastX, t.lastY = x, y
	return events
}
