// Package slug 提供群组 URL slug 的生成与去重
// slug 在同一机构内唯一；冲突时先追加时间戳，仍冲突则追加随机后缀并重试
package slug

import (
	"strings"
	"time"
	"unicode"

	"campus_hub_server/pkg/util/random"
)

// Make 根据名称生成基础 slug
// 仅保留字母数字，其他字符折叠为单个连字符，统一小写
func Make(name string) string {
	var b strings.Builder
	lastDash := true // 抑制开头的连字符
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		s = "group-" + random.GetLenRandomString(6)
	}
	return s
}

// WithTimestamp 在 slug 后追加 Unix 时间戳（第一级去重）
func WithTimestamp(base string) string {
	return base + "-" + time.Now().Format("20060102150405")
}

// WithRandomSuffix 在 slug 后追加随机后缀（第二级去重）
func WithRandomSuffix(base string) string {
	return base + "-" + strings.ToLower(random.GetLenRandomString(6))
}
