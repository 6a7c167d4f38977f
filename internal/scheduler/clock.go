// internal/scheduler/clock.go
package scheduler

import "time"

// Clock は現在時刻の取得を抽象化します。
// スケジューラ本体は now を引数で受け取るため、Clock を使うのはサービス層
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock は実時刻を返す Clock を返します
func SystemClock() Clock {
	return systemClock{}
}

// dayFloor は t の属する日の 0時0分 (t と同じタイムゾーン) を返します
func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
