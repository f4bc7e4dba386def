package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"minishop/internal/config"
	"minishop/internal/handler"
	"minishop/internal/infra/catalog"
	"minishop/internal/infra/db"
	infraRepo "minishop/internal/infra/repository"
	"minishop/internal/logger"
	repo "minishop/internal/repository"
	"minishop/internal/server"
	"minishop/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//DB接続（使う設定のときだけ）
	var gormDB *gorm.DB
	if cfg.NeedsDB() {
		gormDB, err = db.Connect(cfg.DSN())
		if err != nil {
			return err
		}
		if err := db.Migrate(gormDB); err != nil {
			return err
		}
	}

	//Repository生成
	productRepo, err := newProductRepository(ctx, cfg, gormDB, log)
	if err != nil {
		return err
	}
	kv, err := newKeyValueStore(cfg, gormDB)
	if err != nil {
		return err
	}
	cartRepo := infraRepo.NewCartSlotRepository(kv, cfg.CartSlotKey, log)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(ctx, cartRepo, log)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC, productUC)

	//Server起動
	e := server.New(log, productH, cartH)
	log.Info("config loaded",
		zap.String("catalog_source", cfg.CatalogSource),
		zap.String("cart_store", cfg.CartStore),
		zap.String("cart_slot_key", cfg.CartSlotKey),
	)
	if err := server.Start(ctx, e, cfg.Addr(), log); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}

	log.Info("bye")
	return nil
}

func newProductRepository(ctx context.Context, cfg config.Config, gormDB *gorm.DB, log *zap.Logger) (repo.ProductRepository, error) {
	products, err := catalog.Products()
	if err != nil {
		return nil, err
	}

	if cfg.CatalogSource != config.CatalogSourceDB {
		return infraRepo.NewProductStaticRepository(products), nil
	}

	r := infraRepo.NewProductGormRepository(gormDB)
	if cfg.CatalogSeed {
		if err := r.Seed(ctx, products); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		log.Info("catalog seeded", zap.Int("products", len(products)))
	}
	return r, nil
}

func newKeyValueStore(cfg config.Config, gormDB *gorm.DB) (repo.KeyValueStore, error) {
	switch cfg.CartStore {
	case config.CartStoreDB:
		return infraRepo.NewKeyValueGormStore(gormDB), nil
	case config.CartStoreMemory:
		return infraRepo.NewKeyValueMemoryStore(), nil
	default:
		return infraRepo.NewKeyValueFileStore(cfg.CartDir)
	}
}
