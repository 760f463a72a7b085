package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"prism/infras/otel"
	"prism/infras/postgres"
	"prism/internal/domains/leave/model"
	gDto "prism/shared/dto"
	gRepo "prism/shared/repository"
)

type Leave interface {
	Insert(ctx context.Context, model model.EditorLeave) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EditorLeave, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EditorLeave, error)
	GetCovering(ctx context.Context, editorID string, day time.Time) ([]model.EditorLeave, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.EditorLeave]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Leave {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.EditorLeave](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetCovering returns the leaves for an editor whose date span contains the
// given calendar day, both bounds inclusive.
func (repo *repositoryImpl) GetCovering(ctx context.Context, editorID string, day time.Time) ([]model.EditorLeave, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEditorID,
				Operator: gDto.FilterOperatorEq,
				Value:    editorID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldFromDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    day,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldToDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    day,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}
