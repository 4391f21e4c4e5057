package adminrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Admin, error) {
	var admin domain.Admin
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, created_at FROM admins WHERE login = $1", login).
		Scan(&admin.ID, &admin.Login, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find admin", zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

// Save inserts the admin or replaces the password of an existing login.
func (repo *Repository) Save(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query := `
		INSERT INTO admins (id, login, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (login) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, admin.ID, admin.Login, admin.PasswordHash, admin.CreatedAt).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		zap.L().Error("can't save admin", zap.Error(err))
		return nil, err
	}
	return admin, nil
}
