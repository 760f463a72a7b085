package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"prism/infras/otel"
	"prism/infras/postgres"
	"prism/internal/domains/customer/model"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/logger"
	gRepo "prism/shared/repository"
)

type Customer interface {
	InsertWithContacts(ctx context.Context, customer model.Customer, contacts []model.Contact) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertContact(ctx context.Context, contact model.Contact) error
	GetContacts(ctx context.Context, customerID string) ([]model.Contact, error)
	DeleteContact(ctx context.Context, filter gDto.FilterGroup) error
	ContactExist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	contacts gRepo.Repository[model.Contact]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		contacts:   gRepo.NewRepository[model.Contact](model.ContactEntityName, model.ContactTableName, model.FieldContactID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithContacts stores the customer and its contact rows in one transaction.
func (repo *repositoryImpl) InsertWithContacts(ctx context.Context, customer model.Customer, contacts []model.Contact) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.InsertWithContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (customer): %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, customer); err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	if len(contacts) > 0 {
		if err = repo.contacts.InsertBulkTx(ctx, tx, contacts); err != nil {
			return fmt.Errorf("failed to insert customer contacts: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (customer): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) InsertContact(ctx context.Context, contact model.Contact) error {
	return repo.contacts.Insert(ctx, contact) // nolint:wrapcheck
}

func (repo *repositoryImpl) GetContacts(ctx context.Context, customerID string) ([]model.Contact, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldContactCustomerID,
				Operator: gDto.FilterOperatorEq,
				Value:    customerID,
				Table:    model.ContactTableName,
			},
		},
	}

	return repo.contacts.GetAll(ctx, gDto.QueryParams{}, filter) // nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteContact(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.contacts.Delete(ctx, filter) // nolint:wrapcheck
}

func (repo *repositoryImpl) ContactExist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.contacts.Exist(ctx, filter) // nolint:wrapcheck
}
