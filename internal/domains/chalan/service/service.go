package service

import (
	"context"
	"encoding/json"
	"fmt"
	"prism/config"
	"prism/infras/kafka"
	"prism/infras/otel"
	"prism/infras/s3"
	"prism/internal/domains/chalan/model"
	"prism/internal/domains/chalan/model/dto"
	"prism/internal/domains/chalan/repository"
	"prism/shared"
	"prism/shared/cache"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/failure"
	"prism/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetChalan    = "chalan:get"
	cacheGetAllChalan = "chalan:gets"
	cacheCountChalan  = "chalan:count"

	EventChalanIssued    = "chalan.issued"
	EventChalanCancelled = "chalan.cancelled"

	archiveContentType = "application/json"
)

type Chalan interface {
	Create(ctx context.Context, req dto.CreateChalanRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetChalansResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ChalanResponse, error)
	Cancel(ctx context.Context, req dto.CancelChalanRequest, id string) error
}

type serviceImpl struct {
	repo    repository.Chalan
	cfg     *config.Config
	cache   cache.RedisCache
	kafka   kafka.Client
	storage s3.S3
	otel    otel.Otel
}

func New(
	repo repository.Chalan,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	storage s3.S3,
	otel otel.Otel,
) Chalan {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		kafka:   kafkaClient,
		storage: storage,
		otel:    otel,
	}
}

// Create issues a chalan: it assigns the next CHN-YYYY-NNNN number for the
// issue year, computes the line amounts and total server side, stores the
// chalan with its items in one transaction, then archives a JSON snapshot
// and publishes the issued event in the background.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateChalanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	issueDate, err := req.Date()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse chalan issue date")

		return failure.BadRequestFromString("issue date must use the YYYY-MM-DD layout") // nolint:wrapcheck
	}

	sequence, err := s.repo.NextSequence(ctx, issueDate.Year())
	if err != nil {
		log.Error().Err(err).Msg("failed to get next chalan sequence")

		return fmt.Errorf("failed to get next chalan sequence: %w", err)
	}

	chalanNumber := fmt.Sprintf("%s-%d-%04d", constant.ChalanNumberPrefix, issueDate.Year(), sequence)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	chalan, items := req.ToModel(chalanNumber, user, issueDate)

	if err = s.repo.InsertWithItems(ctx, chalan, items); err != nil {
		log.Error().Err(err).Msg("failed to create chalan")

		return fmt.Errorf("failed to create chalan: %w", err)
	}

	s.archive(ctx, chalan, items)
	s.publish(ctx, dto.NewChalanEvent(EventChalanIssued, chalan, user))
	s.invalidate(ctx, chalan.ID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetChalansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllChalan, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for chalans")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count chalans")

		return res, fmt.Errorf("failed to count chalans: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chalans")

		return res, fmt.Errorf("failed to get chalans: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save chalans to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountChalan, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count chalans")

		return res, fmt.Errorf("failed to count chalans: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save chalan count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ChalanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetChalan, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	chalan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get chalan")

		return res, fmt.Errorf("failed to get chalan: %w", err)
	}

	if chalan.ID == constant.Empty {
		return res, failure.NotFound("chalan not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chalan items")

		return res, fmt.Errorf("failed to get chalan items: %w", err)
	}

	res.FromModel(chalan, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save chalan to cache")
		}
	}()

	return res, nil
}

// Cancel marks a chalan cancelled with a reason. The row and its items stay
// untouched otherwise; a cancelled chalan never comes back.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelChalanRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	chalan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get chalan")

		return fmt.Errorf("failed to get chalan: %w", err)
	}

	if chalan.ID == constant.Empty {
		return failure.NotFound("chalan not found") // nolint:wrapcheck
	}

	if chalan.IsCancelled {
		return failure.Conflict("chalan is already cancelled") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldIsCancelled:   true,
		model.FieldCancelReason:  req.CancelReason,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel chalan")

		return fmt.Errorf("failed to cancel chalan: %w", err)
	}

	chalan.IsCancelled = true
	chalan.CancelReason = req.CancelReason

	s.publish(ctx, dto.NewChalanEvent(EventChalanCancelled, chalan, user))
	s.invalidate(ctx, id)

	return nil
}

// archive uploads a JSON snapshot of the issued chalan and records its URL.
// Archiving is best effort: a failed upload only logs.
func (s *serviceImpl) archive(ctx context.Context, chalan model.Chalan, items []model.Item) {
	go func() {
		c := context.WithoutCancel(ctx)

		snapshot := dto.ChalanResponse{}
		snapshot.FromModel(chalan, items)

		payload, err := json.Marshal(snapshot)
		if err != nil {
			log.Error().Err(err).Str("chalan", chalan.ChalanNumber).Msg("failed to marshal chalan snapshot")

			return
		}

		fileName := chalan.ChalanNumber + ".json"

		url, err := s.storage.UploadFileBytes(
			c,
			s.cfg.External.S3.BucketName,
			s.cfg.External.S3.ArchivePrefix,
			fileName,
			archiveContentType,
			payload,
		)
		if err != nil {
			log.Error().Err(err).Str("chalan", chalan.ChalanNumber).Msg("failed to archive chalan snapshot")

			return
		}

		updatedFields := map[string]any{
			model.FieldArchiveURL: url,
		}

		if err := s.repo.Update(c, updatedFields, shared.FilterByID(chalan.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("chalan", chalan.ChalanNumber).Msg("failed to record chalan archive url")
		}
	}()
}

func (s *serviceImpl) publish(ctx context.Context, event dto.ChalanEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: event.ChalanID, Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ChalanEvents, message); err != nil {
			log.Error().Err(err).Str("event", event.Event).Msg("failed to publish chalan event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetChalan, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete chalan from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllChalan)
		shared.InvalidateCaches(c, s.cache, cacheCountChalan)
	}()
}
