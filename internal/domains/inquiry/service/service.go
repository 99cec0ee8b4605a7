package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"studioops/config"
	"studioops/infras/otel"
	"studioops/internal/domains/inquiry/model"
	"studioops/internal/domains/inquiry/model/dto"
	"studioops/internal/domains/inquiry/repository"
	"studioops/shared"
	"studioops/shared/cache"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/shared/failure"
)

const (
	cacheGetInquiry    = "inquiry:get"
	cacheGetAllInquiry = "inquiry:gets"
)

type Inquiry interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
}

type serviceImpl struct {
	repo  repository.Inquiry
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Inquiry, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inquiry {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInquiry, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInquiry, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	inquiry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry")

		return res, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return res, failure.NotFound("inquiry not found") // nolint:wrapcheck
	}

	res.FromModel(inquiry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry to cache")
		}
	}()

	return res, nil
}
