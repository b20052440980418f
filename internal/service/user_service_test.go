package service

import (
	"context"
	"strings"
	"testing"

	"startup-companion-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (IUserService, *memDB, *memBlobStore) {
	db := newMemDB()
	store := newMemBlobStore()
	factory := &memFactory{db: db}
	svc := NewUserService(factory, store, NewProfileLoader(factory), nopLogger{})
	return svc, db, store
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpsertThenGetProfile(t *testing.T) {
	svc, _, _ := newUserFixture()
	userId := uuid.New()

	saved, err := svc.UpsertProfile(context.Background(), userId, &dto.UpsertBusinessProfileRequest{
		FullName:     "Asha Rao",
		BusinessName: "Chai Labs",
		Industry:     "food & beverage",
		Location:     "Bengaluru",
	})
	require.NoError(t, err)
	assert.Equal(t, "Chai Labs", saved.BusinessName)

	got, err := svc.GetProfile(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, "Chai Labs", got.BusinessName)
	assert.Equal(t, userId, got.UserId)
}

func TestUpsertProfileInvalidatesCache(t *testing.T) {
	svc, _, _ := newUserFixture()
	userId := uuid.New()

	_, err := svc.UpsertProfile(context.Background(), userId, &dto.UpsertBusinessProfileRequest{BusinessName: "Old Name"})
	require.NoError(t, err)

	// Prime the cache
	_, err = svc.GetProfile(context.Background(), userId)
	require.NoError(t, err)

	_, err = svc.UpsertProfile(context.Background(), userId, &dto.UpsertBusinessProfileRequest{BusinessName: "New Name"})
	require.NoError(t, err)

	got, err := svc.GetProfile(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.BusinessName)
}

func TestUploadProfilePicture(t *testing.T) {
	svc, db, store := newUserFixture()
	userId := uuid.New()

	_, err := svc.UpsertProfile(context.Background(), userId, &dto.UpsertBusinessProfileRequest{BusinessName: "Chai Labs"})
	require.NoError(t, err)

	res, err := svc.UploadProfilePicture(context.Background(), userId, "me.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Contains(t, res.ProfilePictureURL, userId.String())

	assert.Equal(t, res.ProfilePictureURL, db.profiles[userId].ProfilePictureURL)
	assert.Len(t, store.files, 1)
}

func TestUploadProfilePictureBeforeProfileExists(t *testing.T) {
	svc, db, _ := newUserFixture()
	userId := uuid.New()

	res, err := svc.UploadProfilePicture(context.Background(), userId, "me.jpg", strings.NewReader("jpg bytes"))
	require.NoError(t, err)

	// A bare profile row is created so the URL survives until onboarding.
	profile := db.profiles[userId]
	require.NotNil(t, profile)
	assert.Equal(t, res.ProfilePictureURL, profile.ProfilePictureURL)
}

func TestUploadProfilePictureRejectsBadExtension(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.UploadProfilePicture(context.Background(), uuid.New(), "malware.exe", strings.NewReader("x"))
	assert.Error(t, err)
}
