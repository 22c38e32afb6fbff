// Package db はGORMによるMySQL接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"myflix_backend/config"
	moviesentity "myflix_backend/internal/feature/movies/domain/entity"
	usersentity "myflix_backend/internal/feature/users/domain/entity"
)

// OpenDB は設定に従ってMySQLへ接続し、gorm.DBを返します。
// 起動直後のDB未準備に備えて60秒間リトライします。接続できない場合はプロセスを終了します。
func OpenDB(cfg *config.DBConfig) *gorm.DB {
	var dsn string
	if cfg.InstanceConnectionName != "" {
		// Cloud SQL（Unixソケット）
		dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceConnectionName, cfg.Name)
	} else {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	}

	var (
		gdb *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError: ユニークキー重複などをドライバ非依存のエラーに変換する
		gdb, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, FavoriteMovie, Movie）
		if err := gdb.AutoMigrate(
			&usersentity.User{},
			&usersentity.FavoriteMovie{},
			&moviesentity.Movie{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return gdb
}
