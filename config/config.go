// Package config はアプリケーション全体の設定を管理します。
// デフォルト値 → 設定ファイル（YAML、任意） → 環境変数 の順に読み込み、
// 後のソースが前のソースを上書きします。起動時に一度だけ読み込まれ、
// プロセス実行中の再読み込みは行いません。
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvKeyConfigPath は設定ファイルのパスを上書きする環境変数名です。
const EnvKeyConfigPath = "CONFIG_PATH"

// defaultConfigPaths は設定ファイルを探索するパスの優先順リストです。
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/myflix/config.yaml",
}

// Config はアプリケーション設定のルート構造体です。
type Config struct {
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
	Redis  RedisConfig  `koanf:"redis"`
	JWT    JWTConfig    `koanf:"jwt"`
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port string `koanf:"port"`
}

// DBConfig はMySQL接続の設定です。
// InstanceConnectionName が設定されている場合はCloud SQLのUnixソケット接続を使用します。
type DBConfig struct {
	User                   string `koanf:"user"`
	Password               string `koanf:"password"`
	Host                   string `koanf:"host"`
	Port                   string `koanf:"port"`
	Name                   string `koanf:"name"`
	InstanceConnectionName string `koanf:"instance_connection_name"`
	RunMigrations          bool   `koanf:"run_migrations"`
}

// RedisConfig はRedis接続の設定です。Hostが空の場合、キャッシュは無効になります。
type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Password string `koanf:"password"`
}

// JWTConfig はトークン署名の設定です。
// Secret はプロセス起動時に一度だけ読み込まれ、実行中のローテーションは行いません。
type JWTConfig struct {
	Secret    string        `koanf:"secret"`
	ExpiresIn time.Duration `koanf:"expires_in"`
}

// defaultConfig は全フィールドのデフォルト値を返します。
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		DB: DBConfig{
			User: "root",
			Host: "127.0.0.1",
			Port: "3306",
			Name: "myflix",
		},
		Redis: RedisConfig{Port: "6379"},
		JWT: JWTConfig{
			// トークンは発行から7日間有効（失効リストなし、期限切れのみで無効化）
			ExpiresIn: 7 * 24 * time.Hour,
		},
	}
}

// envKeyMap は従来の環境変数名をkoanfのキーパスに対応付けます。
var envKeyMap = map[string]string{
	"PORT":                     "server.port",
	"DB_USER":                  "db.user",
	"DB_PASSWORD":              "db.password",
	"DB_HOST":                  "db.host",
	"DB_PORT":                  "db.port",
	"DB_NAME":                  "db.name",
	"INSTANCE_CONNECTION_NAME": "db.instance_connection_name",
	"RUN_MIGRATIONS":           "db.run_migrations",
	"REDIS_HOST":               "redis.host",
	"REDIS_PORT":               "redis.port",
	"REDIS_PASSWORD":           "redis.password",
	"JWT_SECRET":               "jwt.secret",
	"JWT_EXPIRES_IN":           "jwt.expires_in",
}

// Load は設定を読み込み、検証済みのConfigを返します。
// JWTシークレットが未設定の場合はエラーを返します（スペック上、署名鍵は必須の外部設定です）。
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1) デフォルト値
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2) 設定ファイル（存在する場合のみ）
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// 3) 環境変数（最優先）
	if err := k.Load(env.Provider("", ".", func(s string) string {
		if mapped, ok := envKeyMap[s]; ok {
			return mapped
		}
		// マッピング外の環境変数は無視する
		return ""
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set: a signing secret is required")
	}
	if cfg.JWT.ExpiresIn <= 0 {
		cfg.JWT.ExpiresIn = 7 * 24 * time.Hour
	}

	return cfg, nil
}

// findConfigFile はCONFIG_PATH、次にデフォルトパスの順で設定ファイルを探します。
func findConfigFile() string {
	if path := os.Getenv(EnvKeyConfigPath); path != "" {
		return path
	}
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
