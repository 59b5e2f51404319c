package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"TripAgent-App/internal/domain/repository"
	"TripAgent-App/internal/domain/service"
	"TripAgent-App/internal/handler"
	"TripAgent-App/internal/infrastructure/database"
	"TripAgent-App/internal/infrastructure/firestore"
	repoImpl "TripAgent-App/internal/repository"
	"TripAgent-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	knowledgeRepo, err := buildKnowledgeRepository(ctx)
	if err != nil {
		log.Fatalf("ナレッジベース初期化失敗: %v", err)
	}

	planStore, err := buildPlanStore(ctx)
	if err != nil {
		log.Fatalf("プランストア初期化失敗: %v", err)
	}

	// Dependency injection
	goalParser := service.NewGoalParserService(knowledgeRepo)
	ranker := service.NewTransportRankService()
	sequencer := service.NewItinerarySequencerService(knowledgeRepo)
	editor := service.NewPlanEditService(sequencer)
	planUseCase := usecase.NewTravelPlanUseCase(goalParser, ranker, sequencer, editor, planStore)
	planHandler := handler.NewTravelPlanHandler(planUseCase)

	// Ginルーターのセットアップ
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "TripAgent-App"})
	})

	plans := r.Group("/plans")
	{
		plans.POST("", planHandler.PostPlan)
		plans.GET("/:id", planHandler.GetPlan)
		plans.POST("/:id/transport", planHandler.PostSelectTransport)
		plans.POST("/:id/itinerary/swap", planHandler.PostSwapItineraryDay)
		plans.POST("/:id/itinerary/remove", planHandler.PostRemoveItineraryItem)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("TripAgent-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}

// buildKnowledgeRepository KNOWLEDGE_SOURCE環境変数に応じて参照データのロード元を選ぶ
// memory（デフォルト） | postgres | supabase
func buildKnowledgeRepository(ctx context.Context) (repository.KnowledgeRepository, error) {
	switch os.Getenv("KNOWLEDGE_SOURCE") {
	case "postgres":
		client, err := database.NewPostgreSQLClientWithRetry(5, 1*time.Second)
		if err != nil {
			return nil, err
		}
		defer client.Close() // 起動時に一括ロードするだけなので接続は保持しない
		return repoImpl.LoadKnowledgeFromPostgres(ctx, client)
	case "supabase":
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, err
		}
		return repoImpl.LoadKnowledgeFromSupabase(client)
	default:
		log.Printf("📚 組み込みナレッジベースを使用します")
		return repoImpl.NewInMemoryKnowledgeRepository(), nil
	}
}

// buildPlanStore PLAN_STORE環境変数に応じてプランの保持先を選ぶ
// memory（デフォルト） | firestore
func buildPlanStore(ctx context.Context) (repository.PlanStore, error) {
	if os.Getenv("PLAN_STORE") == "firestore" {
		projectID := os.Getenv("FIRESTORE_PROJECT_ID")
		if projectID == "" {
			return nil, fmt.Errorf("FIRESTORE_PROJECT_ID環境変数が設定されていません")
		}
		client, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			return nil, err
		}
		return repoImpl.NewFirestorePlanStore(client.GetClient()), nil
	}
	return repoImpl.NewMemoryPlanStore(), nil
}
