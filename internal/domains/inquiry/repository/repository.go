package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"studioops/infras/otel"
	"studioops/infras/postgres"
	"studioops/internal/domains/inquiry/model"
	gDto "studioops/shared/dto"
	gRepo "studioops/shared/repository"
)

// Inquiry is read-only: inquiries are created and mutated by the inquiry
// system, never by this service.
type Inquiry interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inquiry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inquiry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inquiry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inquiry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inquiry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
