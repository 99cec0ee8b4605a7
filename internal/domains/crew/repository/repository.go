package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"studioops/infras/otel"
	"studioops/infras/postgres"
	"studioops/internal/domains/crew/model"
	gDto "studioops/shared/dto"
	gRepo "studioops/shared/repository"
)

type Crew interface {
	Insert(ctx context.Context, model model.Crew) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Crew, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Crew, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Crew]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Crew {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Crew](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
