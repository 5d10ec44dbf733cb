package main

import (
	"database/sql"
	"flag"
	"log"

	"employee-portal/pkg/config"
	"employee-portal/pkg/database/postgresql"
	"employee-portal/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 МИГРАЦИИ И НАПОЛНЕНИЕ БД                   ")
	log.Println("======================================================")

	runMigrate := flag.Bool("migrate", false, "Применить миграции схемы (goose)")
	runAdmin := flag.Bool("admin", false, "Создать первичного администратора")
	runAll := flag.Bool("all", false, "Выполнить всё (эквивалентно -migrate -admin)")

	flag.Parse()

	if !*runMigrate && !*runAdmin && !*runAll {
		log.Println("❌ Не выбрано ни одно действие.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -migrate")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	if *runAll || *runMigrate {
		migrateUp(cfg.Postgres.DSN)
		log.Println("======================================================")
	}

	if *runAll || *runAdmin {
		dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
		defer dbPool.Close()

		if err := seeders.SeedAdmin(dbPool, cfg); err != nil {
			log.Fatalf("❌ Ошибка создания администратора: %v", err)
		}
		log.Println("======================================================")
	}

	log.Println("✅ Готово.")
}

func migrateUp(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("❌ Не удалось открыть соединение для миграций: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("❌ Ошибка настройки goose: %v", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("❌ Ошибка применения миграций: %v", err)
	}
	log.Println("✅ Миграции применены.")
}
