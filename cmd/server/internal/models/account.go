package models

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aquaria-id/contest-api/internal/identity"
)

// Local directory entry for an identity that has called the api
type Account struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Role      identity.Role
	ID        int64 `gorm:"primaryKey;autoIncrement:false"`
}

func (Account) TableName() string {
	return "account"
}

func (a Account) GetID() int64 {
	return a.ID
}

// The token is authoritative for who someone is, so the row follows the claims.
// Rows are only rewritten when a claim actually changed.
func UpsertAccount(ctx context.Context, db *gorm.DB, account *Account) error {
	ctx, span := tracer.Start(ctx, "UpsertAccount")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("account.id", account.ID),
		attribute.String("account.role", string(account.Role)),
	)

	db = db.WithContext(ctx)

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role"}),
		Where: clause.Where{Exprs: []clause.Expression{clause.Expr{
			SQL: "(account.name, account.email, account.role) IS DISTINCT FROM (excluded.name, excluded.email, excluded.role)",
		}}},
	}).Create(account)
	if result.Error != nil {
		span.RecordError(result.Error)
		span.SetStatus(codes.Error, "failed to upsert account")
		return fmt.Errorf("failed to upsert account: %w", result.Error)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "upserted account")
	return nil
}
