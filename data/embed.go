// Package data 内置的任务配置
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 所以嵌入声明放在 data/ 目录下，各个可执行程序都导入本包。
package data

import "embed"

// FS 以 data/ 目录为根，包含 missions.yaml
//
//go:embed missions.yaml
var FS embed.FS
