package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studioops/config"
	"studioops/infras/otel/mocks"
	inquiryMocks "studioops/internal/domains/inquiry/mocks"
	"studioops/internal/domains/inquiry/model"
	"studioops/internal/domains/inquiry/service"
	cacheMocks "studioops/shared/cache/mocks"
	gDto "studioops/shared/dto"
	"studioops/shared/failure"
	gModel "studioops/shared/model"
	"studioops/shared/timezone"
)

type inquiryFixture struct {
	repo  *inquiryMocks.MockInquiry
	cache *cacheMocks.MockRedisCache
	svc   service.Inquiry
}

func newInquiryFixture(ctrl *gomock.Controller) *inquiryFixture {
	f := &inquiryFixture{
		repo:  inquiryMocks.NewMockInquiry(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func openInquiry() model.Inquiry {
	return model.Inquiry{
		ID:      "inquiry-1",
		CaseID:  "CASE-0001",
		Name:    "Dana Customer",
		Email:   "dana@example.com",
		Subject: "Wedding photography",
		Message: "Looking for a full day package.",
		Status:  "open",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestInquiryService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *inquiryFixture)
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(f *inquiryFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(f *inquiryFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openInquiry(), nil)
			},
			wantErr: false,
			wantID:  "inquiry-1",
		},
		{
			name: "inquiry not found",
			setupMock: func(f *inquiryFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(f *inquiryFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newInquiryFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "inquiry-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)

				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, res.ID)
					assert.Equal(t, "Dana Customer", res.Name)
				}
			}
		})
	}
}

func TestInquiryService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *inquiryFixture)
		wantErr   bool
		wantData  int
	}{
		{
			name: "cache hit",
			setupMock: func(f *inquiryFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful get all",
			setupMock: func(f *inquiryFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Inquiry{openInquiry()}, nil)
			},
			wantErr:  false,
			wantData: 1,
		},
		{
			name: "count error",
			setupMock: func(f *inquiryFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newInquiryFixture(ctrl)
			tt.setupMock(f)

			params := gDto.QueryParams{Limit: 10, Page: 1}

			res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantData, res.TotalData)
			}
		})
	}
}
