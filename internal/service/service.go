package service

import (
	"context"
	"errors"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// runTx executes fn inside a database transaction. A nil db runs fn with a
// nil tx so unit tests can exercise workflows against repository fakes.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// mapDBErr converts storage errors into the API error categories.
func mapDBErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.ErrConflict
	}
	return err
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apierror.ErrValidation
	}
	return id, nil
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
