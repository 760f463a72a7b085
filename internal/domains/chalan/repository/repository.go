package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"prism/infras/otel"
	"prism/infras/postgres"
	"prism/internal/domains/chalan/model"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/logger"
	gRepo "prism/shared/repository"
)

type Chalan interface {
	InsertWithItems(ctx context.Context, chalan model.Chalan, items []model.Item) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Chalan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Chalan, error)
	GetItems(ctx context.Context, chalanID string) ([]model.Item, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	NextSequence(ctx context.Context, year int) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Chalan]
	items gRepo.Repository[model.Item]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Chalan {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Chalan](model.EntityName, model.TableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.Item](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithItems stores the chalan and its line items in one transaction.
func (repo *repositoryImpl) InsertWithItems(ctx context.Context, chalan model.Chalan, items []model.Item) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".chalan.InsertWithItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (chalan): %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, chalan); err != nil {
		return fmt.Errorf("failed to insert chalan: %w", err)
	}

	if err = repo.items.InsertBulkTx(ctx, tx, items); err != nil {
		return fmt.Errorf("failed to insert chalan items: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (chalan): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetItems(ctx context.Context, chalanID string) ([]model.Item, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemChalanID,
				Operator: gDto.FilterOperatorEq,
				Value:    chalanID,
				Table:    model.ItemTableName,
			},
		},
	}

	return repo.items.GetAll(ctx, gDto.QueryParams{}, filter) // nolint:wrapcheck
}

// NextSequence returns the next free sequence number for the given year.
// The unique index on chalan_number catches the race of two issuers reading
// the same value.
func (repo *repositoryImpl) NextSequence(ctx context.Context, year int) (seq int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".chalan.NextSequence")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(CAST(RIGHT(%s, 4) AS INTEGER)), 0) FROM %s WHERE %s LIKE $1",
		model.FieldChalanNumber, model.TableName, model.FieldChalanNumber,
	)

	prefix := fmt.Sprintf("%s-%d-%%", constant.ChalanNumberPrefix, year)

	var current int

	if err = repo.db.Read.GetContext(ctx, &current, query, prefix); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to get current chalan sequence: %w", err)
	}

	return current + 1, nil
}
