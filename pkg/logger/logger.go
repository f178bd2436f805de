// Package logger 提供全局日志实例
//
// 底层使用 logrus。消息格式沿用 "[Tag] message" 风格，
// 例如 "[App] Starting round"、"[GameScene] Bomb reached stage 3"。
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 是整个应用共享的日志实例
// 未调用 Init 时也可安全使用（默认 info 级别，输出到 stderr）
var Log = logrus.New()

// Init 初始化全局日志
//
// 参数：
//   - verbose: 为 true 时输出 debug 级别日志；为 false 时只输出警告及以上
//
// 环境变量：
//   - LOG_LEVEL: 显式指定级别（debug/info/warn/error），优先于 verbose
//   - LOG_FORMAT: "json" 使用 JSON 格式，其余使用文本格式
func Init(verbose bool) {
	Configure(Log, verbose, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure 按参数配置一个 logrus 实例
// 拆分出来便于测试，Init 只是用环境变量调用它
func Configure(l *logrus.Logger, verbose bool, levelName, format string, out io.Writer) {
	level := logrus.WarnLevel
	if verbose {
		level = logrus.DebugLevel
	}
	if levelName != "" {
		if parsed, err := logrus.ParseLevel(levelName); err == nil {
			level = parsed
		}
	}
	l.SetLevel(level)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
}
