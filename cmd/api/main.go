package main

import (
	"log/slog"
	"os"

	"orderservice/internal/config"
	"orderservice/internal/handler"
	"orderservice/internal/infra/db"
	infraRepo "orderservice/internal/infra/repository"
	"orderservice/internal/server"
	"orderservice/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	//.envは任意（本番は環境変数で渡す）
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using environment")
	}

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	//初期メニュー投入。リクエスト処理の外で1回だけ。
	if err := db.SeedMenu(gormDB); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	menuUC := usecase.NewMenuUsecase(menuRepo)
	orderUC := usecase.NewOrderUsecase(txManager)

	//Handler生成
	menuH := handler.NewMenuHandler(menuUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New()
	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.GoEnv)

	if err := server.Start(e, addr, menuH, orderH); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
