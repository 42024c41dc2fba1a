package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

var scope = club.Scope{Club: "Rovers", AgeGroup: "U12", Division: "North"}

func TestService_Refresh(t *testing.T) {
	type testCase struct {
		name      string
		scope     club.Scope
		setupMock func(m *catalog.MockSource)
		wantLen   int
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "Success",
			scope: scope,
			setupMock: func(m *catalog.MockSource) {
				m.EXPECT().
					ListListings(gomock.Any(), scope).
					Return([]catalog.Listing{listing("Kit", "40", nil), listing("Camp", "100", nil)}, nil)
			},
			wantLen: 2,
		},
		{
			name:    "IncompleteScope",
			scope:   club.Scope{Club: "Rovers"},
			wantErr: club.ErrIncompleteScope,
		},
		{
			name:  "SourceError",
			scope: scope,
			setupMock: func(m *catalog.MockSource) {
				m.EXPECT().
					ListListings(gomock.Any(), scope).
					Return(nil, errors.New("boom"))
			},
		},
		{
			name:  "InvalidListings",
			scope: scope,
			setupMock: func(m *catalog.MockSource) {
				m.EXPECT().
					ListListings(gomock.Any(), scope).
					Return([]catalog.Listing{listing("Camp", "110", new(6))}, nil)
			},
			wantErr: catalog.ErrInvalidListing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := catalog.NewMockSource(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(source)
			}

			svc := catalog.NewService(source)
			got, err := svc.Refresh(context.Background(), tt.scope)

			if tt.wantLen == 0 {
				assert.Error(t, err)

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				assert.Empty(t, svc.Products())

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.Len(t, svc.Products(), tt.wantLen)
		})
	}
}

func TestService_Refresh_SharedFetchOutlivesCallerCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := catalog.NewMockSource(ctrl)
	svc := catalog.NewService(source)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source.EXPECT().
		ListListings(gomock.Any(), scope).
		DoAndReturn(func(fetchCtx context.Context, _ club.Scope) ([]catalog.Listing, error) {
			cancel()

			assert.NoError(t, fetchCtx.Err())
			_, hasDeadline := fetchCtx.Deadline()
			assert.True(t, hasDeadline)

			return []catalog.Listing{listing("Kit", "40", nil)}, nil
		})

	products, err := svc.Refresh(ctx, scope)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Len(t, svc.Products(), 1)
}

func TestService_Refresh_ResetsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := catalog.NewMockSource(ctrl)
	svc := catalog.NewService(source)

	gomock.InOrder(
		source.EXPECT().ListListings(gomock.Any(), scope).Return([]catalog.Listing{listing("Kit", "40", nil)}, nil),
		source.EXPECT().ListListings(gomock.Any(), scope).Return(nil, errors.New("unavailable")),
	)

	_, err := svc.Refresh(context.Background(), scope)
	require.NoError(t, err)
	require.Len(t, svc.Products(), 1)

	_, err = svc.Refresh(context.Background(), scope)
	require.Error(t, err)
	assert.Empty(t, svc.Products())
}

func TestService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := catalog.NewMockSource(ctrl)
	source.EXPECT().ListListings(gomock.Any(), scope).Return([]catalog.Listing{listing("Kit", "40", nil)}, nil)

	svc := catalog.NewService(source)
	_, err := svc.Refresh(context.Background(), scope)
	require.NoError(t, err)

	p, err := svc.Find("Kit")
	require.NoError(t, err)
	assert.Equal(t, "Kit", p.ID)

	_, err = svc.Find("Ball")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestService_Create(t *testing.T) {
	listings := []catalog.NewListing{
		{Name: "Kit", Price: decimal.NewFromInt(40), Category: catalog.CategoryMerchandise},
		{Name: "Camp", Price: decimal.NewFromInt(110), InstallmentMonths: new(6), Category: catalog.CategoryTraining},
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := catalog.NewMockSource(ctrl)
		source.EXPECT().CreateListings(gomock.Any(), scope, listings).Return(nil)

		assert.NoError(t, catalog.NewService(source).Create(context.Background(), scope, listings))
	})

	t.Run("InvalidListingNotSubmitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bad := append([]catalog.NewListing{}, listings...)
		bad[1].Price = decimal.NewFromInt(-5)

		err := catalog.NewService(catalog.NewMockSource(ctrl)).Create(context.Background(), scope, bad)
		assert.ErrorIs(t, err, catalog.ErrInvalidListing)
	})

	t.Run("Empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		err := catalog.NewService(catalog.NewMockSource(ctrl)).Create(context.Background(), scope, nil)
		assert.ErrorIs(t, err, catalog.ErrInvalidListing)
	})

	t.Run("SourceError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		source := catalog.NewMockSource(ctrl)
		source.EXPECT().CreateListings(gomock.Any(), scope, listings).Return(errors.New("denied"))

		assert.Error(t, catalog.NewService(source).Create(context.Background(), scope, listings))
	})
}
