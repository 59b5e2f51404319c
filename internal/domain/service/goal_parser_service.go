package service

import (
	"regexp"
	"strconv"
	"strings"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/repository"
)

// GoalParserService 自由文の旅行ゴールから出発地・目的地・日数を抽出するサービス
// パースは常に成功する。抽出できない場合はフォールバック値に劣化する
type GoalParserService interface {
	Parse(text string) *model.ParsedGoal
}

type goalParserService struct {
	knowledgeRepo repository.KnowledgeRepository
}

// NewGoalParserService 新しいGoalParserServiceインスタンスを作成
func NewGoalParserService(knowledgeRepo repository.KnowledgeRepository) GoalParserService {
	return &goalParserService{knowledgeRepo: knowledgeRepo}
}

// durationPattern 「N-day」「N day」「N days」を抽出するパターン
var durationPattern = regexp.MustCompile(`(\d+)\s*-?\s*day`)

// markerStopWords 目的地・出発地フレーズの区切りとみなすトークン
var markerStopWords = map[string]struct{}{
	"to": {}, "in": {}, "from": {}, "for": {}, "with": {},
	"and": {}, "trip": {}, "on": {}, "over": {}, "during": {},
}

// Parse ゴール文をパースしてParsedGoalを返す
func (s *goalParserService) Parse(text string) *model.ParsedGoal {
	normalized := strings.ToLower(text)
	durationDays := s.extractDuration(normalized)

	tokens := tokenize(normalized)

	goal := &model.ParsedGoal{DurationDays: durationDays}

	// 「to X」「in X」を目的地、「from X」を出発地のマーカーとして走査する
	var destPhrase, originPhrase string
	for i, token := range tokens {
		rest := tokens[i+1:]
		switch token {
		case "to", "in", "visit":
			if goal.DestinationCity == nil {
				if city, phrase := s.matchCity(rest); city != nil {
					goal.DestinationCity = city
				} else if destPhrase == "" {
					destPhrase = phrase
				}
			}
		case "from":
			if goal.OriginCity == nil {
				if city, phrase := s.matchCity(rest); city != nil {
					goal.OriginCity = city
				} else if originPhrase == "" {
					originPhrase = phrase
				}
			}
		}
	}

	// マーカーなしで都市名だけ書かれたケースを拾う（例: "Plan a Tokyo weekend"）
	if goal.DestinationCity == nil && destPhrase == "" {
		goal.DestinationCity = s.scanForCity(tokens, goal.OriginCity)
	}

	// どちらか一方のみが設定される不変条件をここで確定させる
	if goal.DestinationCity == nil {
		if destPhrase != "" {
			goal.DestinationFallback = destPhrase
		} else {
			goal.DestinationFallback = model.FallbackDestinationName
		}
	}
	if goal.OriginCity == nil {
		if originPhrase != "" {
			goal.OriginFallback = originPhrase
		} else {
			goal.OriginFallback = model.FallbackOriginName
		}
	}

	return goal
}

// extractDuration 日数を抽出する（範囲外・未記載はデフォルトに丸める）
func (s *goalParserService) extractDuration(normalized string) int {
	matches := durationPattern.FindStringSubmatch(normalized)
	if matches == nil {
		return model.DefaultDurationDays
	}
	days, err := strconv.Atoi(matches[1])
	if err != nil || days < 1 {
		return model.DefaultDurationDays
	}
	if days > model.MaxDurationDays {
		return model.MaxDurationDays
	}
	return days
}

// matchCity マーカー直後のトークン列をナレッジベースと照合する
// 最長3トークンから順に試し、一致しなければフォールバック用のフレーズを返す
func (s *goalParserService) matchCity(rest []string) (*model.City, string) {
	maxLen := 3
	if len(rest) < maxLen {
		maxLen = len(rest)
	}
	for n := maxLen; n >= 1; n-- {
		phrase := strings.Join(rest[:n], " ")
		if city := s.knowledgeRepo.FindCity(phrase); city != nil {
			return city, ""
		}
	}
	return nil, extractPhrase(rest)
}

// scanForCity 文中の任意の位置に現れる既知の都市名を探す
func (s *goalParserService) scanForCity(tokens []string, exclude *model.City) *model.City {
	for i := range tokens {
		rest := tokens[i:]
		maxLen := 3
		if len(rest) < maxLen {
			maxLen = len(rest)
		}
		for n := maxLen; n >= 1; n-- {
			phrase := strings.Join(rest[:n], " ")
			if city := s.knowledgeRepo.FindCity(phrase); city != nil {
				if exclude == nil || city.Name != exclude.Name {
					return city
				}
			}
		}
	}
	return nil
}

// tokenize 句読点を除去して小文字トークン列に分解する
func tokenize(normalized string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', '!', '?', ';', ':', '-', '(', ')', '"', '\'':
			return ' '
		}
		return r
	}, normalized)
	return strings.Fields(cleaned)
}

// extractPhrase マーカー直後のトークン列からフォールバック用フレーズを切り出す
// 数字・区切り語が現れた時点で打ち切る（最長3トークン）
func extractPhrase(rest []string) string {
	var phrase []string
	for _, token := range rest {
		if _, stop := markerStopWords[token]; stop {
			break
		}
		if _, err := strconv.Atoi(token); err == nil {
			break
		}
		phrase = append(phrase, token)
		if len(phrase) == 3 {
			break
		}
	}
	return strings.Join(phrase, " ")
}
