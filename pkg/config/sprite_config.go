package config

import (
	"fmt"
	"image/color"
	"strings"
)

// SpriteConfig 单个贴图的描述
// 游戏不加载图片文件，宿主按尺寸和颜色生成贴图
type SpriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"` // "#rrggbb"
	Glyph  string  `yaml:"glyph"` // 终端宿主使用的字符
}

// SpriteTable 贴图注册表
type SpriteTable map[string]SpriteConfig

// ImageSize 返回贴图尺寸
func (t SpriteTable) ImageSize(name string) (w, h float64, ok bool) {
	s, ok := t[name]
	if !ok {
		return 0, 0, false
	}
	return s.Width, s.Height, true
}

// RGBA 解析贴图颜色，解析失败时返回品红色
func (s SpriteConfig) RGBA() color.RGBA {
	c, err := ParseHexColor(s.Color)
	if err != nil {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return c
}

// GlyphRune 返回终端字符，未配置时为 '?'
func (s SpriteConfig) GlyphRune() rune {
	for _, r := range s.Glyph {
		return r
	}
	return '?'
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
