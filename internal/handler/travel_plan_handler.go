package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"TripAgent-App/internal/domain/model"
	"TripAgent-App/internal/usecase"
)

// TravelPlanHandler 旅行プランAPIのハンドラー
type TravelPlanHandler struct {
	planUseCase usecase.TravelPlanUseCase
}

// NewTravelPlanHandler 新しいTravelPlanHandlerインスタンスを作成
func NewTravelPlanHandler(planUseCase usecase.TravelPlanUseCase) *TravelPlanHandler {
	return &TravelPlanHandler{planUseCase: planUseCase}
}

// PostPlan ゴール文から新しいプランを生成するエンドポイント
// POST /plans
func (h *TravelPlanHandler) PostPlan(c *gin.Context) {
	var req model.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(req.GoalText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "goal_textは必須です",
		})
		return
	}

	plan, err := h.planUseCase.GeneratePlan(c.Request.Context(), req.GoalText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "プランの生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetPlan 指定IDのプランを取得するエンドポイント
// GET /plans/:id
func (h *TravelPlanHandler) GetPlan(c *gin.Context) {
	planID := c.Param("id")

	plan, err := h.planUseCase.GetPlan(c.Request.Context(), planID)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// PostSelectTransport 選択中の移動手段を切り替えるエンドポイント
// POST /plans/:id/transport
func (h *TravelPlanHandler) PostSelectTransport(c *gin.Context) {
	planID := c.Param("id")

	var req model.SelectTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "option_idは必須です",
		})
		return
	}

	plan, err := h.planUseCase.SelectTransport(c.Request.Context(), planID, req.OptionID)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// PostSwapItineraryDay 旅程アイテムの日を入れ替えるエンドポイント
// POST /plans/:id/itinerary/swap
func (h *TravelPlanHandler) PostSwapItineraryDay(c *gin.Context) {
	planID := c.Param("id")

	var req model.ItineraryEditRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "item_idは必須です",
		})
		return
	}

	plan, err := h.planUseCase.SwapItineraryDay(c.Request.Context(), planID, req.ItemID)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// PostRemoveItineraryItem 旅程アイテムを削除するエンドポイント
// POST /plans/:id/itinerary/remove
func (h *TravelPlanHandler) PostRemoveItineraryItem(c *gin.Context) {
	planID := c.Param("id")

	var req model.ItineraryEditRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "item_idは必須です",
		})
		return
	}

	plan, err := h.planUseCase.RemoveItineraryItem(c.Request.Context(), planID, req.ItemID)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// respondPlanError エラーメッセージから404か500かを判定してレスポンスを返す
func (h *TravelPlanHandler) respondPlanError(c *gin.Context, err error) {
	if strings.Contains(err.Error(), "見つかりません") {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "プランが見つかりません",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "プラン操作に失敗しました",
		"details": err.Error(),
	})
}
