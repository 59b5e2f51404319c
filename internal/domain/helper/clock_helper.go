package helper

import "fmt"

// MinutesToClock 0時からの経過分をHH:MM形式に変換する
func MinutesToClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockToMinutes HH:MM形式を0時からの経過分に変換する（不正な形式は0を返す）
func ClockToMinutes(clock string) int {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// HoursToMinutes 時間（小数）を分に変換する
func HoursToMinutes(hours float64) int {
	return int(hours*60 + 0.5)
}
