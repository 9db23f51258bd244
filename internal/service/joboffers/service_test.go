package joboffers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/service/joboffers/models"
)

type fakePlatform struct {
	offers       []*domain.JobOffer
	nextOffer    *domain.JobOffer
	listErr      error
	createErr    error
	updateErr    error
	deleteErr    error
	createCalled bool
	deletedIDs   []int64
}

func (f *fakePlatform) ListJobOffers(_ context.Context, _ int64) ([]*domain.JobOffer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.offers, nil
}

func (f *fakePlatform) CreateJobOffer(_ context.Context, _ int64, _ *platformapi.UpsertJobOfferRequest) (*domain.JobOffer, error) {
	f.createCalled = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.nextOffer, nil
}

func (f *fakePlatform) UpdateJobOffer(_ context.Context, _, _ int64, _ *platformapi.UpsertJobOfferRequest) (*domain.JobOffer, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.nextOffer, nil
}

func (f *fakePlatform) DeleteJobOffer(_ context.Context, _ int64, offerID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, offerID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testOffer(id int64) *domain.JobOffer {
	return &domain.JobOffer{
		ID:           id,
		CompanyID:    5,
		Title:        "Backend-разработчик",
		Description:  "Go, высокие нагрузки",
		Location:     "Москва",
		ContractType: "full-time",
		Published:    true,
		CreatedAt:    time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 8, 21, 9, 0, 0, 0, time.UTC),
	}
}

func validUpsert() *models.UpsertJobOfferRequest {
	return &models.UpsertJobOfferRequest{
		Title:       "Backend-разработчик",
		Description: "Go, высокие нагрузки",
		Published:   true,
	}
}

func TestList(t *testing.T) {
	platform := &fakePlatform{offers: []*domain.JobOffer{testOffer(1), testOffer(2)}}
	svc := NewService(platform, nopLogger{})

	resp, err := svc.List(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.JobOffers, 2)
	assert.Equal(t, int64(1), resp.JobOffers[0].ID)
	assert.Equal(t, "2025-08-20T12:00:00Z", resp.JobOffers[0].CreatedAt)
}

func TestList_Empty(t *testing.T) {
	svc := NewService(&fakePlatform{}, nopLogger{})

	resp, err := svc.List(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.JobOffers)
}

func TestCreate(t *testing.T) {
	platform := &fakePlatform{nextOffer: testOffer(10)}
	svc := NewService(platform, nopLogger{})

	resp, err := svc.Create(context.Background(), 5, validUpsert())
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpsertJobOfferRequest)
	}{
		{"empty title", func(r *models.UpsertJobOfferRequest) { r.Title = "" }},
		{"whitespace title", func(r *models.UpsertJobOfferRequest) { r.Title = "   " }},
		{"empty description", func(r *models.UpsertJobOfferRequest) { r.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := &fakePlatform{nextOffer: testOffer(10)}
			svc := NewService(platform, nopLogger{})

			req := validUpsert()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), 5, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.False(t, platform.createCalled)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	platform := &fakePlatform{updateErr: platformapi.ErrJobOfferNotFound}
	svc := NewService(platform, nopLogger{})

	_, err := svc.Update(context.Background(), 5, 99, validUpsert())
	assert.ErrorIs(t, err, ErrJobOfferNotFound)
}

func TestDelete(t *testing.T) {
	platform := &fakePlatform{}
	svc := NewService(platform, nopLogger{})

	err := svc.Delete(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, platform.deletedIDs)
}

func TestDelete_NotFound(t *testing.T) {
	platform := &fakePlatform{deleteErr: platformapi.ErrJobOfferNotFound}
	svc := NewService(platform, nopLogger{})

	err := svc.Delete(context.Background(), 5, 99)
	assert.ErrorIs(t, err, ErrJobOfferNotFound)
}

func TestList_UpstreamFailure(t *testing.T) {
	platform := &fakePlatform{listErr: errors.New("connection refused")}
	svc := NewService(platform, nopLogger{})

	_, err := svc.List(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInternal)
}
