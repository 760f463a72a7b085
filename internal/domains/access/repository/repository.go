package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"prism/infras/otel"
	"prism/infras/postgres"
	"prism/internal/domains/access/model"
	gDto "prism/shared/dto"
	gRepo "prism/shared/repository"
)

type Access interface {
	Insert(ctx context.Context, model model.ModuleAccess) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ModuleAccess, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ModuleAccess, error)
	GetForUser(ctx context.Context, userID string) ([]model.ModuleAccess, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ModuleAccess]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Access {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ModuleAccess](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetForUser(ctx context.Context, userID string) ([]model.ModuleAccess, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter) // nolint:wrapcheck
}
