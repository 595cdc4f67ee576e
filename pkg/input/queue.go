package input

import "sync"

// Queue 输入事件队列
// 宿主可以从任意 goroutine 推入事件，模拟循环在 tick 开始时取出
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue 创建事件队列
func NewQueue() *Queue {
	return &Queue{}
}

// Push 推入事件
func (q *Queue) Push(events ...Event) {
	if len(events) == 0 {
		return
	}
	q.mu.Lock()
	q.events = append(q.events, events...)
	q.mu.Unlock()
}

// Drain 取出并清空所有排队事件
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
