package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gomessenger/internal/common"
	"gomessenger/internal/dbmysql"
)

func testIssuer(t *testing.T) *common.TokenIssuer {
	t.Helper()
	issuer, err := common.NewTokenIssuer([]byte(strings.Repeat("k", 200)))
	require.NoError(t, err)
	return issuer
}

func TestUserService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, testIssuer(t))
	ctx := context.Background()

	tests := []struct {
		name        string
		username    string
		password    string
		setup       func()
		wantKind    common.ErrorKind
		errContains string
	}{
		{
			name:     "success",
			username: "alice",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
				mockUserRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						u.ID = 1 // store-assigned id
						return nil
					})
			},
		},
		{
			name:     "duplicate username",
			username: "bob",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().ExistsByUsername(ctx, "bob").Return(true, nil)
			},
			wantKind:    common.KindConflict,
			errContains: "taken",
		},
		{
			name:     "empty password",
			username: "carol",
			password: "",
			setup: func() {
				mockUserRepo.EXPECT().ExistsByUsername(ctx, "carol").Return(false, nil)
			},
			wantKind:    common.KindConflict,
			errContains: "password",
		},
		{
			name:     "repo failure exist check",
			username: "dave",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().ExistsByUsername(ctx, "dave").Return(false, errors.New("db is down"))
			},
			wantKind:    common.KindInternal,
			errContains: "db is down",
		},
		{
			name:     "repo failure create user",
			username: "erin",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().ExistsByUsername(ctx, "erin").Return(false, nil)
				mockUserRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("create fail"))
			},
			wantKind:    common.KindConflict,
			errContains: "create fail",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			result, err := svc.CreateUser(ctx, tc.username, tc.password)
			if tc.wantKind != 0 {
				require.Error(t, err)
				require.Equal(t, tc.wantKind, common.KindOf(err))
				require.Contains(t, err.Error(), tc.errContains)
				require.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				require.Equal(t, tc.username, result.Username)
				require.NotEmpty(t, result.Token)
			}
		})
	}
}

func TestUserService_CreateUser_TokenClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	issuer := testIssuer(t)
	svc := NewUserService(mockUserRepo, issuer)
	ctx := context.Background()

	mockUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	mockUserRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *dbmysql.User) error {
			u.ID = 42
			// the stored hash must verify against the plaintext
			require.NoError(t, common.CheckPassword("s3cret", u.PasswordHash))
			return nil
		})

	result, err := svc.CreateUser(ctx, "alice", "s3cret")
	require.NoError(t, err)

	claims, err := issuer.Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "alice", claims.UniqueName)

	id, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, uint(42), id)
}

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, testIssuer(t))
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockUserRepo.EXPECT().ByID(ctx, uint(7)).Return(&dbmysql.User{
			ID:           7,
			Username:     "alice",
			PasswordHash: "hash",
		}, nil)

		view, err := svc.GetUser(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, uint(7), view.ID)
		require.Equal(t, "alice", view.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mockUserRepo.EXPECT().ByID(ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		view, err := svc.GetUser(ctx, 99)
		require.Error(t, err)
		require.Nil(t, view)
		require.Equal(t, common.KindNotFound, common.KindOf(err))
		require.Contains(t, err.Error(), "99")
	})
}

func TestUserService_GetUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, testIssuer(t))
	ctx := context.Background()

	t.Run("empty store yields empty list", func(t *testing.T) {
		mockUserRepo.EXPECT().All(ctx).Return(nil, nil)

		views, err := svc.GetUsers(ctx)
		require.NoError(t, err)
		require.NotNil(t, views)
		require.Empty(t, views)
	})

	t.Run("all users projected", func(t *testing.T) {
		mockUserRepo.EXPECT().All(ctx).Return([]*dbmysql.User{
			{ID: 1, Username: "alice", PasswordHash: "h1"},
			{ID: 2, Username: "bob", PasswordHash: "h2"},
		}, nil)

		views, err := svc.GetUsers(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		require.Equal(t, "alice", views[0].Username)
		require.Equal(t, "bob", views[1].Username)
	})
}
