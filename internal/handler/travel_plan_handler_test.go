package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/domain/service"
	repoimpl "TripAgent-App/internal/repository"
	"TripAgent-App/internal/usecase"
)

// setupTestRouter インメモリ構成のAPIルーターを組み立てる
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	knowledgeRepo := repoimpl.NewInMemoryKnowledgeRepository()
	sequencer := service.NewItinerarySequencerService(knowledgeRepo)
	planUseCase := usecase.NewTravelPlanUseCase(
		service.NewGoalParserService(knowledgeRepo),
		service.NewTransportRankService(),
		sequencer,
		service.NewPlanEditService(sequencer),
		repoimpl.NewMemoryPlanStore(),
	)
	planHandler := NewTravelPlanHandler(planUseCase)

	r := gin.New()
	plans := r.Group("/plans")
	{
		plans.POST("", planHandler.PostPlan)
		plans.GET("/:id", planHandler.GetPlan)
		plans.POST("/:id/transport", planHandler.PostSelectTransport)
		plans.POST("/:id/itinerary/swap", planHandler.PostSwapItineraryDay)
		plans.POST("/:id/itinerary/remove", planHandler.PostRemoveItineraryItem)
	}
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateTestPlan(t *testing.T, r *gin.Engine, goalText string) *model.TravelPlan {
	t.Helper()
	w := postJSON(r, "/plans", model.GeneratePlanRequest{GoalText: goalText})
	if w.Code != http.StatusOK {
		t.Fatalf("❌ プラン生成リクエストが失敗: status=%d body=%s", w.Code, w.Body.String())
	}
	var plan model.TravelPlan
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("❌ レスポンスの解析に失敗: %v", err)
	}
	return &plan
}

func TestTravelPlanHandler_PostPlan(t *testing.T) {
	r := setupTestRouter()

	t.Run("ゴール文からプランを生成して200を返す", func(t *testing.T) {
		plan := generateTestPlan(t, r, "Plan a 2-day trip to Tokyo from New Delhi")

		assert.NotEmpty(t, plan.PlanID)
		assert.GreaterOrEqual(t, len(plan.TransportOptions), 2)
		assert.NotEmpty(t, plan.Itinerary)
	})

	t.Run("goal_textが空なら400を返す", func(t *testing.T) {
		w := postJSON(r, "/plans", model.GeneratePlanRequest{GoalText: "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("JSONとして不正なボディは400を返す", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte("{invalid")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("意味のない入力でも200を返す", func(t *testing.T) {
		plan := generateTestPlan(t, r, "asdkjhasd qwerty")
		assert.NotEmpty(t, plan.Itinerary)
	})
}

func TestTravelPlanHandler_GetPlan(t *testing.T) {
	r := setupTestRouter()
	plan := generateTestPlan(t, r, "2-day trip to Kyoto from Tokyo")

	t.Run("保存済みプランを取得できる", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/plans/"+plan.PlanID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var fetched model.TravelPlan
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, plan.PlanID, fetched.PlanID)
	})

	t.Run("存在しないプランIDは404を返す", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/plans/plan_unknown", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTravelPlanHandler_PostSelectTransport(t *testing.T) {
	r := setupTestRouter()
	plan := generateTestPlan(t, r, "2-day trip to Tokyo from New Delhi")

	t.Run("候補内の手段に切り替えられる", func(t *testing.T) {
		alternative := plan.TransportOptions[1]
		w := postJSON(r, fmt.Sprintf("/plans/%s/transport", plan.PlanID),
			model.SelectTransportRequest{OptionID: alternative.ID})

		assert.Equal(t, http.StatusOK, w.Code)
		var updated model.TravelPlan
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, alternative.ID, updated.SelectedTransport.ID)
	})

	t.Run("未知の候補IDでも200でプランを返す", func(t *testing.T) {
		w := postJSON(r, fmt.Sprintf("/plans/%s/transport", plan.PlanID),
			model.SelectTransportRequest{OptionID: "opt-does-not-exist"})

		assert.Equal(t, http.StatusOK, w.Code)
		var unchanged model.TravelPlan
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &unchanged))
		assert.Equal(t, plan.PlanID, unchanged.PlanID)
	})

	t.Run("option_idが空なら400を返す", func(t *testing.T) {
		w := postJSON(r, fmt.Sprintf("/plans/%s/transport", plan.PlanID),
			model.SelectTransportRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("存在しないプランIDは404を返す", func(t *testing.T) {
		w := postJSON(r, "/plans/plan_unknown/transport",
			model.SelectTransportRequest{OptionID: "opt-any"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTravelPlanHandler_ItineraryEdits(t *testing.T) {
	r := setupTestRouter()
	plan := generateTestPlan(t, r, "2-day trip to Tokyo from New Delhi")

	t.Run("日の入れ替えが200で返る", func(t *testing.T) {
		target := plan.Itinerary[0]
		w := postJSON(r, fmt.Sprintf("/plans/%s/itinerary/swap", plan.PlanID),
			model.ItineraryEditRequest{ItemID: target.ID})

		assert.Equal(t, http.StatusOK, w.Code)
		var updated model.TravelPlan
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, len(plan.Itinerary), len(updated.Itinerary))
	})

	t.Run("アイテム削除が200で返る", func(t *testing.T) {
		current := generateTestPlan(t, r, "2-day trip to Kyoto from Tokyo")
		target := current.Itinerary[0]

		w := postJSON(r, fmt.Sprintf("/plans/%s/itinerary/remove", current.PlanID),
			model.ItineraryEditRequest{ItemID: target.ID})

		assert.Equal(t, http.StatusOK, w.Code)
		var updated model.TravelPlan
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.True(t, updated.IsExcluded(target.Attraction.ID))
	})

	t.Run("未知のアイテムIDでも200でプランを返す", func(t *testing.T) {
		w := postJSON(r, fmt.Sprintf("/plans/%s/itinerary/remove", plan.PlanID),
			model.ItineraryEditRequest{ItemID: "item-does-not-exist"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("item_idが空なら400を返す", func(t *testing.T) {
		w := postJSON(r, fmt.Sprintf("/plans/%s/itinerary/swap", plan.PlanID),
			model.ItineraryEditRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
