package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TripAgent-App/internal/domain/model"
	repoimpl "TripAgent-App/internal/repository"
)

func newTestGoalParser() GoalParserService {
	return NewGoalParserService(repoimpl.NewInMemoryKnowledgeRepository())
}

func TestGoalParserService_Parse(t *testing.T) {
	parser := newTestGoalParser()

	t.Run("出発地・目的地・日数をすべて抽出できる", func(t *testing.T) {
		goal := parser.Parse("Plan a 2-day trip to Tokyo from New Delhi")

		if goal.DestinationCity == nil {
			t.Fatal("目的地が抽出されていません")
		}
		assert.Equal(t, "Tokyo", goal.DestinationCity.Name)

		if goal.OriginCity == nil {
			t.Fatal("出発地が抽出されていません")
		}
		assert.Equal(t, "New Delhi", goal.OriginCity.Name)
		assert.Equal(t, 2, goal.DurationDays)
	})

	t.Run("エイリアスでも都市を特定できる", func(t *testing.T) {
		goal := parser.Parse("weekend trip to nyc from delhi")

		if goal.DestinationCity == nil || goal.OriginCity == nil {
			t.Fatal("エイリアスから都市が特定されていません")
		}
		assert.Equal(t, "New York", goal.DestinationCity.Name)
		assert.Equal(t, "New Delhi", goal.OriginCity.Name)
	})

	t.Run("マーカーなしの都市名も拾える", func(t *testing.T) {
		goal := parser.Parse("Plan a Kyoto weekend, slow mornings please")

		if goal.DestinationCity == nil {
			t.Fatal("マーカーなしの都市名が拾えていません")
		}
		assert.Equal(t, "Kyoto", goal.DestinationCity.Name)
	})

	t.Run("大文字小文字と句読点を無視する", func(t *testing.T) {
		goal := parser.Parse("TRIP TO PARIS, FROM LONDON!")

		if goal.DestinationCity == nil || goal.OriginCity == nil {
			t.Fatal("正規化が効いていません")
		}
		assert.Equal(t, "Paris", goal.DestinationCity.Name)
		assert.Equal(t, "London", goal.OriginCity.Name)
	})

	t.Run("未知の目的地はフレーズのままフォールバックに残す", func(t *testing.T) {
		goal := parser.Parse("3 day trip to atlantis from tokyo")

		assert.Nil(t, goal.DestinationCity)
		assert.Equal(t, "atlantis", goal.DestinationFallback)
		assert.Equal(t, "atlantis", goal.DestinationName())

		if goal.OriginCity == nil {
			t.Fatal("出発地が抽出されていません")
		}
		assert.Equal(t, "Tokyo", goal.OriginCity.Name)
	})

	t.Run("意味のない入力でも必ず結果を返す", func(t *testing.T) {
		goal := parser.Parse("asdkjhasd qwerty zzz")

		assert.Nil(t, goal.DestinationCity)
		assert.Nil(t, goal.OriginCity)
		assert.Equal(t, model.FallbackDestinationName, goal.DestinationName())
		assert.Equal(t, model.FallbackOriginName, goal.OriginName())
		assert.Equal(t, model.DefaultDurationDays, goal.DurationDays)
	})

	t.Run("空文字列でも必ず結果を返す", func(t *testing.T) {
		goal := parser.Parse("")

		assert.Equal(t, model.FallbackDestinationName, goal.DestinationName())
		assert.Equal(t, model.FallbackOriginName, goal.OriginName())
		assert.Equal(t, model.DefaultDurationDays, goal.DurationDays)
	})
}

func TestGoalParserService_ExtractDuration(t *testing.T) {
	parser := newTestGoalParser()

	cases := []struct {
		text string
		want int
	}{
		{"2-day trip to Tokyo", 2},
		{"2 day trip to Tokyo", 2},
		{"1-day trip to Tokyo", 1},
		{"7-day trip to Tokyo", model.MaxDurationDays}, // 上限に丸める
		{"trip to Tokyo", model.DefaultDurationDays},
		{"0-day trip to Tokyo", model.DefaultDurationDays},
	}

	for _, c := range cases {
		goal := parser.Parse(c.text)
		if goal.DurationDays != c.want {
			t.Errorf("Parse(%q).DurationDays = %d, want %d", c.text, goal.DurationDays, c.want)
		}
	}
}
