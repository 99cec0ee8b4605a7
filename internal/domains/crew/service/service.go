package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"studioops/config"
	"studioops/infras/otel"
	"studioops/internal/domains/crew/model"
	"studioops/internal/domains/crew/model/dto"
	"studioops/internal/domains/crew/repository"
	"studioops/shared"
	"studioops/shared/cache"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/shared/failure"
)

const (
	cacheGetCrew    = "crew:get"
	cacheGetAllCrew = "crew:gets"
	cacheCountCrew  = "crew:count"
	cacheActiveCrew = "crew:active"
)

// Crew is the roster provider. The assignment reconciler treats the roster
// as read-only; the write operations exist so admins can maintain it.
type Crew interface {
	Create(ctx context.Context, req dto.CreateCrewRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCrewResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CrewResponse, error)
	Update(ctx context.Context, req dto.UpdateCrewRequest, id string) error
	Deactivate(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]model.Crew, error)
}

type serviceImpl struct {
	repo  repository.Crew
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Crew, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Crew {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCrewRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".crew.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create crew member")

		return fmt.Errorf("failed to create crew member: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCrewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".crew.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCrew, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count crew members")

		return res, fmt.Errorf("failed to count crew members: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get crew members")

		return res, fmt.Errorf("failed to get crew members: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save crew members to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".crew.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count crew members")

		return res, fmt.Errorf("failed to count crew members: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CrewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".crew.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCrew, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	member, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get crew member")

		return res, fmt.Errorf("failed to get crew member: %w", err)
	}

	if member.ID == constant.Empty {
		return res, failure.NotFound("crew member not found") // nolint:wrapcheck
	}

	res.FromModel(member)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save crew member to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCrewRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".crew.Update")
	defer scope.End()

	if req == (dto.UpdateCrewRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if crew member exists")

		return fmt.Errorf("failed to check if crew member exists: %w", err)
	}

	if !exist {
		return failure.NotFound("crew member not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update crew member")

		return fmt.Errorf("failed to update crew member: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Deactivate retires a crew member from the active roster. Bookings that
// reference them are kept; they simply stop appearing as available.
func (s *serviceImpl) Deactivate(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".crew.Deactivate")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if crew member exists")

		return fmt.Errorf("failed to check if crew member exists: %w", err)
	}

	if !exist {
		return failure.NotFound("crew member not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate crew member")

		return fmt.Errorf("failed to deactivate crew member: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ListActive returns the active roster, the input for crew availability.
func (s *serviceImpl) ListActive(ctx context.Context) (res []model.Crew, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".crew.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheActiveCrew, &res)
	if err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	res, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active crew")

		return res, fmt.Errorf("failed to list active crew: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheActiveCrew, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save active crew to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCrew, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete crew member from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCrew)
		shared.InvalidateCaches(c, s.cache, cacheCountCrew)
		shared.InvalidateCaches(c, s.cache, cacheActiveCrew)
	}()
}
