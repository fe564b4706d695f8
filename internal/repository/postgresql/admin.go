package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/admin"
	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetAll(ctx context.Context) ([]admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, email, created_at FROM admins ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []admin.Admin
	for rows.Next() {
		var a admin.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read admins: %w", err)
	}

	return admins, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	var a admin.Admin
	err := q.QueryRow(ctx, `SELECT id, email, created_at FROM admins WHERE id = $1`, id).
		Scan(&a.ID, &a.Email, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}

func (r *adminRepository) Create(ctx context.Context, newAdmin admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	var a admin.Admin
	err := q.QueryRow(ctx,
		`INSERT INTO admins (id, email) VALUES ($1, $2) RETURNING id, email, created_at`,
		newAdmin.ID, newAdmin.Email,
	).Scan(&a.ID, &a.Email, &a.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "admins_email_key") {
			return admin.Admin{}, admin.ErrAdminExists
		}
		return admin.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return a, nil
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}
