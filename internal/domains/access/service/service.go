package service

import (
	"context"
	"fmt"
	"prism/config"
	"prism/infras/otel"
	"prism/internal/domains/access/model"
	"prism/internal/domains/access/model/dto"
	"prism/internal/domains/access/policy"
	"prism/internal/domains/access/repository"
	"prism/shared"
	"prism/shared/cache"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/failure"
	"prism/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheUserGrants = "access:user"

type Access interface {
	Upsert(ctx context.Context, req dto.UpsertAccessRequest) error
	GetForUser(ctx context.Context, userID string) (dto.GetAccessResponse, error)
	Delete(ctx context.Context, id string) error
	CanPerform(ctx context.Context, subject policy.Subject, module string, action policy.Action) (bool, error)
}

type serviceImpl struct {
	repo      repository.Access
	cfg       *config.Config
	cache     cache.RedisCache
	evaluator policy.Evaluator
	otel      otel.Otel
}

func New(repo repository.Access, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Access {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		evaluator: policy.Evaluator{
			AdminBypassesGrants: cfg.App.Policy.AdminBypassesGrants,
		},
		otel: otel,
	}
}

// Upsert stores one capability row for a user and module, replacing any
// existing row for the same pair.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertAccessRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !policy.KnownModule(req.Module) {
		return failure.BadRequestFromString("unknown module: " + req.Module) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := s.pairFilter(req.UserID, req.Module)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if module access exists")

		return fmt.Errorf("failed to check if module access exists: %w", err)
	}

	if exist {
		updatedFields := map[string]any{
			model.FieldCanView:       req.CanView,
			model.FieldCanCreate:     req.CanCreate,
			model.FieldCanEdit:       req.CanEdit,
			model.FieldCanDelete:     req.CanDelete,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update module access")

			return fmt.Errorf("failed to update module access: %w", err)
		}
	} else if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to insert module access")

		return fmt.Errorf("failed to insert module access: %w", err)
	}

	s.invalidate(ctx, req.UserID)

	return nil
}

func (s *serviceImpl) GetForUser(ctx context.Context, userID string) (res dto.GetAccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.grants(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModels(rows)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	row, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get module access")

		return fmt.Errorf("failed to get module access: %w", err)
	}

	if row.ID == constant.Empty {
		return failure.NotFound("module access not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete module access")

		return fmt.Errorf("failed to delete module access: %w", err)
	}

	s.invalidate(ctx, row.UserID)

	return nil
}

// CanPerform answers whether the subject may take the action on the module,
// using the subject's stored grants and the role defaults.
func (s *serviceImpl) CanPerform(ctx context.Context, subject policy.Subject, module string, action policy.Action) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CanPerform")
	defer scope.End()

	rows, err := s.grants(ctx, subject.ID)
	if err != nil {
		return false, err
	}

	return s.evaluator.CanPerform(subject, dto.ToGrants(rows), module, action), nil
}

func (s *serviceImpl) grants(ctx context.Context, userID string) (rows []model.ModuleAccess, err error) {
	cacheKey := shared.BuildCacheKey(cacheUserGrants, userID)

	err = s.cache.Get(ctx, cacheKey, &rows)
	if err == nil {
		return rows, nil
	}

	rows, err = s.repo.GetForUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get module access rows")

		return nil, fmt.Errorf("failed to get module access rows: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, rows, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save module access rows to cache")
		}
	}()

	return rows, nil
}

func (s *serviceImpl) pairFilter(userID, module string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldModule,
				Operator: gDto.FilterOperatorEq,
				Value:    module,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheUserGrants, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete module access rows from cache")
		}
	}()
}
