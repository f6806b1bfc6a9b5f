package main

import (
	"log"

	"github.com/coastkeeper/hotspots-backend-go/internal/api"
	"github.com/coastkeeper/hotspots-backend-go/internal/config"
	"github.com/coastkeeper/hotspots-backend-go/internal/database"
	"github.com/coastkeeper/hotspots-backend-go/internal/handler"
	"github.com/coastkeeper/hotspots-backend-go/internal/loader"
	"github.com/coastkeeper/hotspots-backend-go/internal/observability"
	"github.com/coastkeeper/hotspots-backend-go/internal/repository"
	"github.com/coastkeeper/hotspots-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	metrics := observability.NewMetrics()

	// 启动时导入数据集；之后只读
	loadResult, err := loader.LoadAll(database.GetDB(), cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}
	metrics.DatasetObservations.Set(float64(loadResult.Observations))
	metrics.DatasetThresholds.Set(float64(loadResult.Thresholds))
	metrics.DatasetAssociations.Set(float64(loadResult.Associations))
	metrics.LoaderSkippedRows.Set(float64(loadResult.Skipped))

	// 组装依赖
	repo := repository.NewDatasetRepository(database.GetDB())
	thresholdService := service.NewThresholdService(repo)
	hotspotService := service.NewHotspotService(repo, thresholdService)
	catalogService := service.NewCatalogService(repo)
	stationService := service.NewStationService(repo)

	handlers := api.Handlers{
		Hotspot:   handler.NewHotspotHandler(hotspotService, metrics),
		Threshold: handler.NewThresholdHandler(thresholdService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Station:   handler.NewStationHandler(stationService),
	}

	// 初始化路由
	router := api.SetupRouter(cfg, handlers)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
