package app

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	audioSampleRate = 48000
	killToneHz      = 880.0
	killToneSeconds = 0.05
	killToneVolume  = 0.3
)

// killSound 击杀提示音，使用程序生成的正弦波
type killSound struct {
	context *audio.Context
	pcm     []byte
}

func newKillSound() *killSound {
	return &killSound{
		context: audio.NewContext(audioSampleRate),
		pcm:     sineTone(audioSampleRate, killToneHz, killToneSeconds, killToneVolume),
	}
}

// Play 每次播放都创建新的 Player，允许多个提示音重叠
func (s *killSound) Play() {
	s.context.NewPlayerFromBytes(s.pcm).Play()
}

// sineTone 生成 16 位小端立体声 PCM
func sineTone(sampleRate int, hz, seconds, volume float64) []byte {
	n := int(float64(sampleRate) * seconds)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(math.Sin(2*math.Pi*hz*float64(i)/float64(sampleRate)) * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
