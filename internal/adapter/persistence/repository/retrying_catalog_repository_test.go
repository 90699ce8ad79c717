package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"
	mock_interfaces "carport_configurator/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRetryingCatalogRepository_RetriesTransientRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICatalogRepository(ctrl)
	want := entities.Model{CatalogMeta: entities.CatalogMeta{ID: "classic", Active: true}}

	gomock.InOrder(
		next.EXPECT().GetByID(gomock.Any(), wood, entities.KindModel, "classic").
			Return(nil, unavailable(errors.New("throttled"))),
		next.EXPECT().GetByID(gomock.Any(), wood, entities.KindModel, "classic").
			Return(want, nil),
	)

	got, err := NewRetryingCatalogRepository(next, time.Millisecond).GetByID(context.Background(), wood, entities.KindModel, "classic")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRetryingCatalogRepository_DoesNotRetryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICatalogRepository(ctrl)
	next.EXPECT().ListActive(gomock.Any(), wood, entities.KindColor).Return(nil, interfaces.ErrNotFound).Times(1)

	_, err := NewRetryingCatalogRepository(next, time.Millisecond).ListActive(context.Background(), wood, entities.KindColor)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestRetryingCatalogRepository_GivesUpOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICatalogRepository(ctrl)
	next.EXPECT().ListAll(gomock.Any(), wood, entities.KindColor).
		Return(nil, unavailable(errors.New("down"))).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRetryingCatalogRepository(next, time.Hour).ListAll(ctx, wood, entities.KindColor)
	assert.ErrorIs(t, err, interfaces.ErrStorageUnavailable)
}

func TestRetryingCatalogRepository_WritesPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockICatalogRepository(ctrl)
	next.EXPECT().Delete(gomock.Any(), wood, entities.KindColor, "red").Return(unavailable(errors.New("down"))).Times(1)

	err := NewRetryingCatalogRepository(next, time.Millisecond).Delete(context.Background(), wood, entities.KindColor, "red")
	assert.ErrorIs(t, err, interfaces.ErrStorageUnavailable)
}
