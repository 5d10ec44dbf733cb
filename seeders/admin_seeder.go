package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"employee-portal/internal/entities"
	"employee-portal/pkg/config"
	"employee-portal/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdmin создаёт первичного администратора, если его ещё нет.
// Email и пароль берутся из конфигурации (ADMIN_EMAIL / ADMIN_PASSWORD).
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) error {
	ctx := context.Background()
	log.Println("  - Создание первичного администратора...")

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", cfg.Admin.Email).Scan(&existingID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования администратора: %w", err)
	}

	hashedPassword, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("не удалось хешировать пароль администратора: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO employees (employee_id, first_name, last_name, email, password, department, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		"ZS00", "Admin", "User", cfg.Admin.Email, hashedPassword,
		"Management", entities.RoleAdmin, entities.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("не удалось создать администратора: %w", err)
	}

	log.Println("    - Администратор создан:", cfg.Admin.Email)
	return nil
}
