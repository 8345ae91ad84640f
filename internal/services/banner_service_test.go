package services

import (
	"context"
	"testing"
	"time"

	"github.com/italoandres/eshop-backend/internal/models"
	"github.com/italoandres/eshop-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBannerRepo struct {
	banners map[primitive.ObjectID]*models.Banner
}

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{banners: make(map[primitive.ObjectID]*models.Banner)}
}

func (f *fakeBannerRepo) Create(_ context.Context, banner *models.Banner) error {
	banner.ID = primitive.NewObjectID()
	stored := *banner
	f.banners[banner.ID] = &stored
	return nil
}

func (f *fakeBannerRepo) GetByID(_ context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error) {
	banner, ok := f.banners[id]
	if !ok || banner.StoreID != storeID {
		return nil, utils.ErrNotFound
	}
	copied := *banner
	return &copied, nil
}

func (f *fakeBannerRepo) Update(_ context.Context, storeID string, id primitive.ObjectID, updates map[string]interface{}) error {
	banner, ok := f.banners[id]
	if !ok || banner.StoreID != storeID {
		return utils.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "title":
			banner.Title = value.(string)
		case "image_url":
			banner.ImageURL = value.(string)
		case "target_url":
			banner.TargetURL = value.(string)
		case "order":
			banner.Order = value.(int)
		case "active":
			banner.Active = value.(bool)
		case "start_at":
			banner.StartAt = value.(*time.Time)
		case "end_at":
			banner.EndAt = value.(*time.Time)
		}
	}
	return nil
}

func (f *fakeBannerRepo) Delete(_ context.Context, storeID string, id primitive.ObjectID) (*models.Banner, error) {
	banner, ok := f.banners[id]
	if !ok || banner.StoreID != storeID {
		return nil, utils.ErrNotFound
	}
	delete(f.banners, id)
	return banner, nil
}

func (f *fakeBannerRepo) ListByStore(_ context.Context, storeID string, activeOnly bool) ([]*models.Banner, error) {
	out := make([]*models.Banner, 0)
	for _, banner := range f.banners {
		if banner.StoreID != storeID {
			continue
		}
		if activeOnly && !banner.Active {
			continue
		}
		copied := *banner
		out = append(out, &copied)
	}
	return out, nil
}

// fakeUploads records upload calls without touching storage.
type fakeUploads struct {
	calls int
}

func (f *fakeUploads) UploadImage(_ context.Context, _ string, folder string) (string, error) {
	f.calls++
	return "https://cdn.example.com/" + folder + "/fake.jpg", nil
}

func (f *fakeUploads) DeleteImage(_ context.Context, _ string) error {
	return nil
}

func newBannerTestService(t *testing.T) (BannerService, *fakeBannerRepo, *fakeUploads) {
	t.Helper()
	repo := newFakeBannerRepo()
	uploads := &fakeUploads{}
	svc := NewBannerService(repo, uploads, testLogger(t))
	return svc, repo, uploads
}

func validBannerInput() *CreateBannerInput {
	return &CreateBannerInput{
		Title:     "Summer sale",
		ImageURL:  "https://cdn.example.com/banners/summer.jpg",
		TargetURL: "https://shop.example.com/sale",
		Order:     1,
	}
}

func TestCreateBannerDefaultsToActive(t *testing.T) {
	svc, _, uploads := newBannerTestService(t)

	banner, err := svc.CreateBanner(context.Background(), "store-1", validBannerInput())
	require.NoError(t, err)

	assert.True(t, banner.Active)
	assert.Equal(t, "store-1", banner.StoreID)
	assert.Zero(t, uploads.calls, "plain URLs pass through without an upload")
}

func TestCreateBannerRejectsMissingFields(t *testing.T) {
	svc, _, _ := newBannerTestService(t)

	input := validBannerInput()
	input.Title = ""

	_, err := svc.CreateBanner(context.Background(), "store-1", input)
	assert.Error(t, err)
}

func TestActiveBannersFiltersWindow(t *testing.T) {
	svc, repo, _ := newBannerTestService(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	seed := []*models.Banner{
		{StoreID: "store-1", Title: "live", ImageURL: "u", TargetURL: "u", Active: true},
		{StoreID: "store-1", Title: "windowed live", ImageURL: "u", TargetURL: "u", Active: true, StartAt: &past, EndAt: &future},
		{StoreID: "store-1", Title: "expired", ImageURL: "u", TargetURL: "u", Active: true, EndAt: &past},
		{StoreID: "store-1", Title: "not started", ImageURL: "u", TargetURL: "u", Active: true, StartAt: &future},
		{StoreID: "store-1", Title: "switched off", ImageURL: "u", TargetURL: "u", Active: false},
		{StoreID: "store-2", Title: "other store", ImageURL: "u", TargetURL: "u", Active: true},
	}
	for _, banner := range seed {
		require.NoError(t, repo.Create(context.Background(), banner))
	}

	banners, err := svc.ActiveBanners(context.Background(), "store-1")
	require.NoError(t, err)

	titles := make([]string, 0, len(banners))
	for _, banner := range banners {
		titles = append(titles, banner.Title)
	}
	assert.ElementsMatch(t, []string{"live", "windowed live"}, titles)
}

func TestUpdateBannerScopedToStore(t *testing.T) {
	svc, repo, _ := newBannerTestService(t)

	banner := &models.Banner{StoreID: "store-1", Title: "old", ImageURL: "u", TargetURL: "u", Active: true}
	require.NoError(t, repo.Create(context.Background(), banner))

	title := "new"
	_, err := svc.UpdateBanner(context.Background(), "store-2", banner.ID, &UpdateBannerInput{Title: &title})
	assert.True(t, utils.IsNotFound(err), "another store's banner must be invisible")

	updated, err := svc.UpdateBanner(context.Background(), "store-1", banner.ID, &UpdateBannerInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
}

func TestDeleteBannerReturnsDocument(t *testing.T) {
	svc, repo, _ := newBannerTestService(t)

	banner := &models.Banner{StoreID: "store-1", Title: "gone", ImageURL: "u", TargetURL: "u", Active: true}
	require.NoError(t, repo.Create(context.Background(), banner))

	deleted, err := svc.DeleteBanner(context.Background(), "store-1", banner.ID)
	require.NoError(t, err)
	assert.Equal(t, "gone", deleted.Title)

	_, err = svc.DeleteBanner(context.Background(), "store-1", banner.ID)
	assert.True(t, utils.IsNotFound(err))
}
