package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// カタログの取得元
const (
	CatalogSourceStatic = "static"
	CatalogSourceDB     = "db"
)

// カートの保存先
const (
	CartStoreFile   = "file"
	CartStoreDB     = "db"
	CartStoreMemory = "memory"
)

// Configはアプリ全体の設定
type Config struct {
	Port     string // サーバーポート（8080）
	GoEnv    string // dev/prod
	LogLevel string // debug/info/warn/error

	CatalogSource string // static/db
	CatalogSeed   bool   // db のとき同梱カタログを投入する

	CartStore   string // file/db/memory
	CartDir     string // file のときの保存ディレクトリ
	CartSlotKey string // カートの保存キー

	DatabaseURL      string // あれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	seed, err := boolDefault("CATALOG_SEED", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:     getenv("PORT", "8080"),
		GoEnv:    getenv("GO_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		CatalogSource: strings.ToLower(getenv("CATALOG_SOURCE", CatalogSourceStatic)),
		CatalogSeed:   seed,

		CartStore:   strings.ToLower(getenv("CART_STORE", CartStoreFile)),
		CartDir:     getenv("CART_DIR", "./data"),
		CartSlotKey: getenv("CART_SLOT_KEY", "cart"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}

	//値チェック
	switch cfg.GoEnv {
	case "dev", "prod", "test":
	default:
		return Config{}, fmt.Errorf("GO_ENV must be dev, prod or test: %q", cfg.GoEnv)
	}
	switch cfg.CatalogSource {
	case CatalogSourceStatic, CatalogSourceDB:
	default:
		return Config{}, fmt.Errorf("CATALOG_SOURCE must be static or db: %q", cfg.CatalogSource)
	}
	switch cfg.CartStore {
	case CartStoreFile, CartStoreDB, CartStoreMemory:
	default:
		return Config{}, fmt.Errorf("CART_STORE must be file, db or memory: %q", cfg.CartStore)
	}
	if cfg.CartStore == CartStoreFile && cfg.CartDir == "" {
		return Config{}, fmt.Errorf("CART_DIR is required")
	}
	if strings.TrimSpace(cfg.CartSlotKey) == "" {
		return Config{}, fmt.Errorf("CART_SLOT_KEY is required")
	}
	if cfg.CatalogSeed && cfg.CatalogSource != CatalogSourceDB {
		return Config{}, fmt.Errorf("CATALOG_SEED requires CATALOG_SOURCE=db")
	}

	return cfg, nil
}

// DBを使う設定か
func (c Config) NeedsDB() bool {
	return c.CatalogSource == CatalogSourceDB || c.CartStore == CartStoreDB
}

// DSN（DATABASE_URL 優先）
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func boolDefault(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}
