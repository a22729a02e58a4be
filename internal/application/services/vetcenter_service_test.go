package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciano/vetconnect-go/internal/domain/entities"
	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// fakeReviewRepo serves a fixed review list
type fakeReviewRepo struct {
	reviews []entities.Review
	err     error
}

func (f *fakeReviewRepo) ListByVeterinary(_ context.Context, veterinaryID string) ([]entities.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.Review
	for _, r := range f.reviews {
		if r.VeterinaryID == veterinaryID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByUser(_ context.Context, userID string) ([]entities.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.Review
	for _, r := range f.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, r entities.Review) (*entities.Review, error) {
	return &r, nil
}

func (f *fakeReviewRepo) Delete(context.Context, string) error { return nil }

// galleryVetRepo adds controllable gallery behavior on top of fakeVetRepo
type galleryVetRepo struct {
	fakeVetRepo
	images     []entities.VeterinaryImage
	imagesErr  error
	imageCalls int
}

func (g *galleryVetRepo) ListImages(context.Context, string) ([]entities.VeterinaryImage, error) {
	g.imageCalls++
	if g.imagesErr != nil {
		return nil, g.imagesErr
	}
	return g.images, nil
}

func detailsFixture() (*galleryVetRepo, *fakeServiceRepo, *fakeReviewRepo) {
	vets := &galleryVetRepo{
		fakeVetRepo: fakeVetRepo{vets: []entities.Veterinary{
			{ID: "vet-001", Name: "Veterinaria Patitas Felices", Rating: 4.5},
		}},
		images: []entities.VeterinaryImage{{ID: "img-001", URL: "https://cdn.example.com/a.jpg"}},
	}
	services := &fakeServiceRepo{byVet: map[string][]entities.VeterinaryService{
		"vet-001": {{ID: "svc-001", VeterinaryID: "vet-001", Price: 60}},
	}}
	reviews := &fakeReviewRepo{reviews: []entities.Review{
		{ID: "rev-001", VeterinaryID: "vet-001", UserID: "usr-001", Rating: 5},
	}}
	return vets, services, reviews
}

func TestGetWithDetails_ComposesAllThree(t *testing.T) {
	vets, services, reviews := detailsFixture()
	svc := NewVetCenterService(vets, services, reviews)

	details, err := svc.GetWithDetails(context.Background(), "vet-001")
	require.NoError(t, err)
	assert.Equal(t, "Veterinaria Patitas Felices", details.Veterinary.Name)
	assert.Len(t, details.Services, 1)
	assert.Len(t, details.Reviews, 1)
}

func TestGetWithDetails_FirstFailureWins(t *testing.T) {
	vets, services, reviews := detailsFixture()
	svc := NewVetCenterService(vets, services, reviews)

	_, err := svc.GetWithDetails(context.Background(), "vet-999")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	// the clinic fetch failed, so nothing else was asked for
	assert.Equal(t, 0, services.calls)
}

func TestGetWithDetails_ReviewFailurePropagates(t *testing.T) {
	vets, services, reviews := detailsFixture()
	reviews.err = apperrors.FromStatusCode(500)
	svc := NewVetCenterService(vets, services, reviews)

	_, err := svc.GetWithDetails(context.Background(), "vet-001")
	require.Error(t, err)
	assert.Equal(t, "Error del servidor", apperrors.UserMessage(err))
}

func TestGetProfile_GalleryFailureDegrades(t *testing.T) {
	vets, services, reviews := detailsFixture()
	vets.imagesErr = apperrors.FromStatusCode(500)
	svc := NewVetCenterService(vets, services, reviews)

	vet, images, err := svc.GetProfile(context.Background(), "vet-001")
	require.NoError(t, err)
	require.NotNil(t, vet)
	assert.Equal(t, "vet-001", vet.ID)
	assert.Empty(t, images)
}

func TestGetProfile_ReturnsGallery(t *testing.T) {
	vets, services, reviews := detailsFixture()
	svc := NewVetCenterService(vets, services, reviews)

	vet, images, err := svc.GetProfile(context.Background(), "vet-001")
	require.NoError(t, err)
	assert.Equal(t, "vet-001", vet.ID)
	require.Len(t, images, 1)
	assert.Equal(t, "img-001", images[0].ID)
}
