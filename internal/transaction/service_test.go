package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(m *transaction.MockRepository)
		wantAmount int64
		wantErr    error
	}

	storeOK := func(m *transaction.MockRepository) {
		m.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
				tx.ID = uuid.New()
				tx.CreatedAt = time.Now()
				return nil
			})
	}

	tests := []testCase{
		{
			name: "Credit",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "Salary", Amount: 5000, Type: transaction.TypeCredit,
			}},
			setupMock:  storeOK,
			wantAmount: 5000,
		},
		{
			name: "DebitIsNegated",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "Rent", Amount: 2000, Type: transaction.TypeDebit,
			}},
			setupMock:  storeOK,
			wantAmount: -2000,
		},
		{
			name: "ZeroAmount",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "Nothing", Amount: 0, Type: transaction.TypeDebit,
			}},
			setupMock:  storeOK,
			wantAmount: 0,
		},
		{
			name: "EmptyTitle",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "", Amount: 10, Type: transaction.TypeCredit,
			}},
			wantErr: transaction.ErrValidation,
		},
		{
			name: "BlankTitle",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "   ", Amount: 10, Type: transaction.TypeCredit,
			}},
			wantErr: transaction.ErrValidation,
		},
		{
			name: "UnknownType",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "Gift", Amount: 10, Type: "refund",
			}},
			wantErr: transaction.ErrValidation,
		},
		{
			name: "NegativeMagnitude",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "Gift", Amount: -10, Type: transaction.TypeCredit,
			}},
			wantErr: transaction.ErrValidation,
		},
		{
			name: "MissingSession",
			args: args{params: transaction.CreateParams{
				Title: "Gift", Amount: 10, Type: transaction.TypeCredit,
			}},
			wantErr: transaction.ErrValidation,
		},
		{
			name: "RepoError",
			args: args{params: transaction.CreateParams{
				SessionID: "s1", Title: "Salary", Amount: 500, Type: transaction.TypeCredit,
			}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, transaction.ErrValidation) {
					assert.ErrorIs(t, err, transaction.ErrValidation)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.args.params.SessionID, got.SessionID)
			assert.Equal(t, tt.args.params.Title, got.Title)
			assert.Equal(t, tt.wantAmount, got.Amount)
		})
	}
}

func TestService_Create_ValidationIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl))

	_, err := svc.Create(context.Background(), transaction.CreateParams{
		SessionID: "s1",
		Type:      "transfer",
	})

	var vErr *transaction.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, vErr.Row)

	fields := make([]string, 0, len(vErr.Issues))
	for _, is := range vErr.Issues {
		fields = append(fields, is.Field)
	}

	assert.ElementsMatch(t, []string{"title", "type"}, fields)
}

func TestService_List(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), "s1").
					Return([]*transaction.Transaction{
						{ID: uuid.New(), SessionID: "s1"},
						{ID: uuid.New(), SessionID: "s1"},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name: "EmptySession",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), "s1").
					Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "Error",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), "s1").
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := transaction.NewService(repo)
			got, err := svc.List(context.Background(), "s1")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	id := uuid.New()
	want := &transaction.Transaction{ID: id, SessionID: "s1", Title: "Coffee", Amount: -300}

	repo.EXPECT().GetTransaction(gomock.Any(), "s1", id).Return(want, nil)
	repo.EXPECT().GetTransaction(gomock.Any(), "s2", id).Return(nil, transaction.ErrNotFound)

	got, err := svc.Get(context.Background(), "s1", id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Get(context.Background(), "s2", id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_Summarize(t *testing.T) {
	type testCase struct {
		name    string
		sum     int64
		repoErr error
	}

	tests := []testCase{
		{name: "Empty", sum: 0},
		{name: "Positive", sum: 3000},
		{name: "Negative", sum: -1250},
		{name: "Error", repoErr: errors.New("sum error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			repo.EXPECT().SumAmounts(gomock.Any(), "s1").Return(tt.sum, tt.repoErr)

			svc := transaction.NewService(repo)
			got, err := svc.Summarize(context.Background(), "s1")

			if tt.repoErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.sum, got.Amount)
		})
	}
}

func TestService_ImportBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	btx := transaction.NewMockBatchTx(ctrl)
	svc := transaction.NewService(repo)

	params := []transaction.CreateParams{
		{Title: "Salary", Amount: 5000, Type: transaction.TypeCredit},
		{Title: "Groceries", Amount: 1200, Type: transaction.TypeDebit},
	}

	repo.EXPECT().BeginBatch(gomock.Any()).Return(btx, nil)
	btx.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			for _, tx := range txs {
				tx.ID = uuid.New()
			}
			return nil
		})
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil)

	txs, err := svc.ImportBatch(context.Background(), "s1", params)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "s1", txs[0].SessionID)
	assert.Equal(t, int64(5000), txs[0].Amount)
	assert.Equal(t, "s1", txs[1].SessionID)
	assert.Equal(t, int64(-1200), txs[1].Amount)
}

func TestService_ImportBatch_InvalidRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No storage calls are expected: validation happens before the batch opens.
	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	params := []transaction.CreateParams{
		{Title: "Salary", Amount: 5000, Type: transaction.TypeCredit},
		{Title: "", Amount: 1200, Type: transaction.TypeDebit},
	}

	_, err := svc.ImportBatch(context.Background(), "s1", params)

	var vErr *transaction.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 2, vErr.Row)
}

func TestService_ImportBatch_CreateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	btx := transaction.NewMockBatchTx(ctrl)
	svc := transaction.NewService(repo)

	repo.EXPECT().BeginBatch(gomock.Any()).Return(btx, nil)
	btx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	btx.EXPECT().Rollback().Return(nil)

	_, err := svc.ImportBatch(context.Background(), "s1", []transaction.CreateParams{
		{Title: "Salary", Amount: 5000, Type: transaction.TypeCredit},
	})
	assert.Error(t, err)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl))

	txs, err := svc.ImportBatch(context.Background(), "s1", nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestType_Sign(t *testing.T) {
	assert.Equal(t, int64(5000), transaction.TypeCredit.Sign(5000))
	assert.Equal(t, int64(-2000), transaction.TypeDebit.Sign(2000))
	assert.True(t, transaction.TypeCredit.Valid())
	assert.True(t, transaction.TypeDebit.Valid())
	assert.False(t, transaction.Type("income").Valid())
}
