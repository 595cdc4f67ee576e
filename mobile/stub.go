//go:build !mobile

// stub.go - 桌面和终端构建时的占位文件
//
// go build ./... 不带 mobile 标签时只编译这个文件，
// ebitenmobile 绑定入口在 mobile.go 中。
package mobile

// Dummy 让 mobile 包在普通构建中也有导出符号
func Dummy() {}
