package accountservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/account-service/internal/domain"
	"github.com/go-petr/account-service/internal/test"
	"github.com/go-petr/account-service/pkg/errorspkg"
)

func paramsOf(a domain.Account) domain.AccountParams {
	return domain.AccountParams{
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  a.DateJoined,
	}
}

func TestCreate(t *testing.T) {
	testAccount := test.RandomAccount()

	testCases := []struct {
		name          string
		arg           domain.AccountParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Account, err error)
	}{
		{
			name: "OK",
			arg:  paramsOf(testAccount),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(paramsOf(testAccount))).
					Times(1).
					Return(testAccount, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, testAccount, res)
			},
		},
		{
			name: "DefaultDateJoined",
			arg: func() domain.AccountParams {
				arg := paramsOf(testAccount)
				arg.DateJoined = domain.Date{}
				return arg
			}(),
			buildStubs: func(repo *MockRepo) {
				want := paramsOf(testAccount)
				want.DateJoined = domain.Today()

				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(want)).
					Times(1).
					Return(testAccount, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "RepoErr",
			arg:  paramsOf(testAccount),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			res, err := New(repo).Create(context.Background(), tc.arg)
			tc.checkResponse(res, err)
		})
	}
}

func TestGet(t *testing.T) {
	testAccount := test.RandomAccount()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount.ID)).Times(1).Return(testAccount, nil)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(int32(0))).Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)

	s := New(repo)

	got, err := s.Get(context.Background(), testAccount.ID)
	require.NoError(t, err)
	require.Equal(t, testAccount, got)

	_, err = s.Get(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestList(t *testing.T) {
	accounts := []domain.Account{test.RandomAccount(), test.RandomAccount()}

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		wantLen    int
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().List(gomock.Any()).Times(1).Return(accounts, nil)
			},
			wantLen: len(accounts),
		},
		{
			name: "RepoErr",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().List(gomock.Any()).Times(1).Return(nil, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			got, err := New(repo).List(context.Background())
			require.ErrorIs(t, err, tc.wantErr)
			require.Len(t, got, tc.wantLen)
		})
	}
}

func TestUpdate(t *testing.T) {
	stored := test.RandomAccount()
	replacement := test.RandomAccount()

	testCases := []struct {
		name          string
		arg           domain.AccountParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Account, err error)
	}{
		{
			name: "OK",
			arg:  paramsOf(replacement),
			buildStubs: func(repo *MockRepo) {
				updated := replacement
				updated.ID = stored.ID

				repo.EXPECT().Get(gomock.Any(), gomock.Eq(stored.ID)).Times(1).Return(stored, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Eq(stored.ID), gomock.Eq(paramsOf(replacement))).
					Times(1).
					Return(updated, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, stored.ID, res.ID)
				require.Equal(t, replacement.Name, res.Name)
			},
		},
		{
			name: "KeepsDateJoined",
			arg: func() domain.AccountParams {
				arg := paramsOf(replacement)
				arg.DateJoined = domain.Date{}
				return arg
			}(),
			buildStubs: func(repo *MockRepo) {
				want := paramsOf(replacement)
				want.DateJoined = stored.DateJoined

				repo.EXPECT().Get(gomock.Any(), gomock.Eq(stored.ID)).Times(1).Return(stored, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Eq(stored.ID), gomock.Eq(want)).
					Times(1).
					Return(stored, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "NotFound",
			arg:  paramsOf(replacement),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(stored.ID)).Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
			},
		},
		{
			name: "UpdateErr",
			arg:  paramsOf(replacement),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(stored.ID)).Times(1).Return(stored, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			res, err := New(repo).Update(context.Background(), stored.ID, tc.arg)
			tc.checkResponse(res, err)
		})
	}
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(int32(5))).Times(2).Return(nil)

	s := New(repo)

	require.NoError(t, s.Delete(context.Background(), 5))
	require.NoError(t, s.Delete(context.Background(), 5))
}
