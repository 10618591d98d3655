package etag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/redfish-sync/internal/mocks"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/etag"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

var errRepo = errors.New("repo down")

const uri = "/redfish/v1/Systems/1"

func newStore(t *testing.T) (*etag.Store, *mocks.MockETagRepository) {
	t.Helper()

	ctl := gomock.NewController(t)
	repo := mocks.NewMockETagRepository(ctl)

	return etag.New(repo, logger.New("error")), repo
}

func TestShouldSkip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
		found  bool
		header string
		body   string
		skip   bool
	}{
		{name: "no stored etag", header: `"1"`, body: `"1"`, skip: false},
		{name: "header matches", stored: `"1"`, found: true, header: `"1"`, skip: true},
		{name: "body matches", stored: `"1"`, found: true, body: `"1"`, skip: true},
		{name: "neither matches", stored: `"1"`, found: true, header: `"2"`, body: `"3"`, skip: false},
		{name: "empty stored etag", stored: "", found: true, header: "", body: "", skip: false},
		{name: "no etag offered", stored: `"1"`, found: true, skip: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, repo := newStore(t)
			repo.EXPECT().Get(gomock.Any(), uri).Return(tc.stored, tc.found, nil)

			assert.Equal(t, tc.skip, s.ShouldSkip(context.Background(), uri, tc.header, tc.body))
		})
	}
}

func TestShouldSkipRepositoryFailure(t *testing.T) {
	t.Parallel()

	s, repo := newStore(t)
	repo.EXPECT().Get(gomock.Any(), uri).Return("", false, errRepo)

	assert.False(t, s.ShouldSkip(context.Background(), uri, `"1"`, `"1"`))
}

func TestSetIsIdempotentAndLatestWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newStore(t)

	s.Set(uri, `"e"`)
	assert.True(t, s.ShouldSkip(ctx, uri, `"e"`, ""))

	s.Set(uri, `"e1"`)
	s.Set(uri, `"e2"`)
	assert.False(t, s.ShouldSkip(ctx, uri, `"e1"`, ""))
	assert.True(t, s.ShouldSkip(ctx, uri, "", `"e2"`))
}

func TestFlushBatchesPendingWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, repo := newStore(t)

	require.NoError(t, s.Flush(ctx))

	s.Set(uri, `"1"`)
	s.Set("/redfish/v1/Bios", `"2"`)
	assert.Equal(t, 2, s.Pending())

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any(), map[string]string{uri: `"1"`, "/redfish/v1/Bios": `"2"`}).Return(errRepo),
		repo.EXPECT().Upsert(gomock.Any(), map[string]string{uri: `"1"`, "/redfish/v1/Bios": `"2"`}).Return(nil),
	)

	require.ErrorIs(t, s.Flush(ctx), errRepo)
	assert.Equal(t, 2, s.Pending())

	require.NoError(t, s.Flush(ctx))
	assert.Equal(t, 0, s.Pending())
}
