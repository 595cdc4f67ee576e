package terminal

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	killToneHz    = 880
	killToneLen   = 50 * time.Millisecond
	speakerBuffer = time.Second / 10
)

// Sound 击杀提示音
// 音频设备不可用时所有方法都是空操作，游戏照常运行
type Sound struct {
	mu          sync.Mutex
	initialized bool
}

// NewSound 初始化扬声器
// 初始化失败不是致命错误，只记录日志
func NewSound() *Sound {
	s := &Sound{}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		log.Printf("[Terminal] 音频初始化失败: %v", err)
		return s
	}
	s.initialized = true
	return s
}

// Enabled 是否有可用的音频设备
func (s *Sound) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// PlayKill 播放一声短促的正弦音
func (s *Sound) PlayKill() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, killToneHz)
	if err != nil {
		log.Printf("[Terminal] 生成提示音失败: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(killToneLen), sine))
}

// Close 关闭扬声器
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Close()
	s.initialized = false
}
