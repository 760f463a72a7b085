package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"prism/infras/otel"
	"prism/infras/postgres"
	"prism/internal/domains/booking/model"
	gDto "prism/shared/dto"
	gRepo "prism/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetForRoomOnDate(ctx context.Context, roomID string, day time.Time) ([]model.Booking, error)
	GetForEditorOnDate(ctx context.Context, editorID string, day time.Time) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetForRoomOnDate(ctx context.Context, roomID string, day time.Time) ([]model.Booking, error) {
	return repo.getOnDate(ctx, model.FieldRoomID, roomID, day)
}

func (repo *repositoryImpl) GetForEditorOnDate(ctx context.Context, editorID string, day time.Time) ([]model.Booking, error) {
	return repo.getOnDate(ctx, model.FieldEditorID, editorID, day)
}

func (repo *repositoryImpl) getOnDate(ctx context.Context, field, value string, day time.Time) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}
