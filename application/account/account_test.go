package account_test

import (
	"context"
	"errors"
	"strings"
	gosync "sync"
	"testing"
	"time"

	appaccount "github.com/estoquehub/sync-engine/application/account"
	"github.com/estoquehub/sync-engine/cmd/config"
	"github.com/estoquehub/sync-engine/constant"
	accountmocks "github.com/estoquehub/sync-engine/mocks/repository/account"
	verifiermocks "github.com/estoquehub/sync-engine/mocks/repository/verifier"
	mpmocks "github.com/estoquehub/sync-engine/mocks/thirdparty/marketplace"
	"github.com/estoquehub/sync-engine/model"
	"github.com/estoquehub/sync-engine/thirdparty/marketplace"
	cerr "github.com/estoquehub/sync-engine/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.SyncConfig{
			TokenExpirySkew: time.Minute,
			VerifierTTL:     10 * time.Minute,
		},
	}
}

func TestAccountApp_GetValidToken(t *testing.T) {
	type fields struct {
		config      *config.Config
		accountRepo *accountmocks.AccountRepository
		verifiers   *verifiermocks.Store
		mp          *mpmocks.Client
	}
	type args struct {
		ctx       context.Context
		accountID uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: fresh token returned without network call",
			fields: fields{
				config:      testConfig(),
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			args: args{
				ctx:       context.Background(),
				accountID: 1,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.ExternalAccountEntity{
						ID:          1,
						AccessToken: "cached-token",
						ExpiresAt:   time.Now().Add(time.Hour),
						Active:      true,
					}, nil).
					Once()
			},
			want:    "cached-token",
			wantErr: false,
		},
		{
			name: "success: expired token is refreshed once",
			fields: fields{
				config:      testConfig(),
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			args: args{
				ctx:       context.Background(),
				accountID: 1,
			},
			mockCall: func(f fields) {
				// read once before and once after acquiring the refresh lock
				f.accountRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.ExternalAccountEntity{
						ID:           1,
						AccessToken:  "old-token",
						RefreshToken: "old-refresh",
						ExpiresAt:    time.Now().Add(-time.Minute),
						Active:       true,
					}, nil).
					Twice()

				f.mp.
					On("RefreshToken", mock.Anything, "old-refresh").
					Return(&marketplace.TokenSet{
						AccessToken:  "new-token",
						RefreshToken: "new-refresh",
						ExpiresIn:    21600,
					}, nil).
					Once()

				f.accountRepo.
					On("UpdateTokens", mock.Anything, uint64(1), "new-token", "new-refresh", mock.AnythingOfType("time.Time")).
					Return(nil).
					Once()
			},
			want:    "new-token",
			wantErr: false,
		},
		{
			name: "error: rejected refresh deactivates the account",
			fields: fields{
				config:      testConfig(),
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			args: args{
				ctx:       context.Background(),
				accountID: 1,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.ExternalAccountEntity{
						ID:           1,
						RefreshToken: "revoked",
						ExpiresAt:    time.Now().Add(-time.Minute),
						Active:       true,
					}, nil).
					Twice()

				f.mp.
					On("RefreshToken", mock.Anything, "revoked").
					Return(nil, cerr.SetCustomError(constant.ErrReauthRequired)).
					Once()

				f.accountRepo.
					On("SetActive", mock.Anything, uint64(1), false).
					Return(nil).
					Once()
			},
			want:    "",
			wantErr: true,
			errCode: constant.ErrReauthRequired,
		},
		{
			name: "error: inactive account fails without network call",
			fields: fields{
				config:      testConfig(),
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			args: args{
				ctx:       context.Background(),
				accountID: 1,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.ExternalAccountEntity{
						ID:     1,
						Active: false,
					}, nil).
					Once()
			},
			want:    "",
			wantErr: true,
			errCode: constant.ErrReauthRequired,
		},
		{
			name: "error: transient refresh failure keeps the account active",
			fields: fields{
				config:      testConfig(),
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			args: args{
				ctx:       context.Background(),
				accountID: 1,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.ExternalAccountEntity{
						ID:           1,
						RefreshToken: "old-refresh",
						ExpiresAt:    time.Now().Add(-time.Minute),
						Active:       true,
					}, nil).
					Twice()

				f.mp.
					On("RefreshToken", mock.Anything, "old-refresh").
					Return(nil, cerr.SetCustomError(constant.ErrTransientUpstream)).
					Once()
			},
			want:    "",
			wantErr: true,
			errCode: constant.ErrTransientUpstream,
		},
		{
			name: "error: unknown account",
			fields: fields{
				config:      testConfig(),
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			args: args{
				ctx:       context.Background(),
				accountID: 99,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetByID", mock.Anything, uint64(99)).
					Return(nil, nil).
					Once()
			},
			want:    "",
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appaccount.NewAccountApp(tt.fields.config, tt.fields.accountRepo, tt.fields.verifiers, tt.fields.mp)

			got, err := app.GetValidToken(tt.args.ctx, tt.args.accountID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetValidToken() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got != tt.want {
				t.Fatalf("GetValidToken() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAccountApp_ConnectAccount(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	verifiers := verifiermocks.NewStore(t)
	mp := mpmocks.NewClient(t)

	var cachedState, cachedValue string
	verifiers.
		On("Put", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(value string) bool {
			return strings.HasPrefix(value, "42:")
		}), 10*time.Minute).
		Run(func(args mock.Arguments) {
			cachedState = args.String(1)
			cachedValue = args.String(2)
		}).
		Return(nil).
		Once()

	mp.
		On("AuthorizationURL", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("https://auth.example.com/authorize?state=x").
		Once()

	app := appaccount.NewAccountApp(testConfig(), accountRepo, verifiers, mp)

	got, err := app.ConnectAccount(context.Background(), 42)
	if err != nil {
		t.Fatalf("ConnectAccount() error = %v", err)
	}
	if got.AuthorizationURL == "" {
		t.Fatal("ConnectAccount() returned empty authorization URL")
	}
	if got.State == "" || got.State != cachedState {
		t.Fatalf("state %q was not the cached state %q", got.State, cachedState)
	}

	// the verifier itself never leaves the cache entry
	parts := strings.SplitN(cachedValue, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		t.Fatalf("cached value %q does not carry a verifier", cachedValue)
	}
}

func TestAccountApp_CompleteConnect(t *testing.T) {
	type fields struct {
		accountRepo *accountmocks.AccountRepository
		verifiers   *verifiermocks.Store
		mp          *mpmocks.Client
	}
	tests := []struct {
		name     string
		fields   fields
		state    string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: known state exchanges the code",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			state: "state-1",
			mockCall: func(f fields) {
				f.verifiers.
					On("Take", mock.Anything, "state-1").
					Return("42:the-verifier", nil).
					Once()

				f.mp.
					On("ExchangeCode", mock.Anything, "the-code", "the-verifier").
					Return(&marketplace.TokenSet{
						AccessToken:  "access",
						RefreshToken: "refresh",
						ExpiresIn:    21600,
						UserID:       777,
					}, nil).
					Once()

				f.accountRepo.
					On("Upsert", mock.Anything, mock.MatchedBy(func(acct *model.ExternalAccountEntity) bool {
						return acct.UserID == 42 && acct.ExternalUserID == 777 && acct.Active
					})).
					Return(uint64(5), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown or expired state",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				verifiers:   verifiermocks.NewStore(t),
				mp:          mpmocks.NewClient(t),
			},
			state: "stale-state",
			mockCall: func(f fields) {
				f.verifiers.
					On("Take", mock.Anything, "stale-state").
					Return("", nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appaccount.NewAccountApp(testConfig(), tt.fields.accountRepo, tt.fields.verifiers, tt.fields.mp)

			got, err := app.CompleteConnect(context.Background(), "the-code", tt.state)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompleteConnect() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != 5 || got.ExternalUserID != 777 {
				t.Fatalf("CompleteConnect() = %+v, want stored account", got)
			}
		})
	}
}

func TestAccountApp_GetValidToken_ConcurrentCallersShareOneRefresh(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	verifiers := verifiermocks.NewStore(t)
	mp := mpmocks.NewClient(t)

	var mu gosync.Mutex
	refreshed := false
	expired := &model.ExternalAccountEntity{ID: 1, Active: true, AccessToken: "old", RefreshToken: "refresh", ExpiresAt: time.Now().Add(-time.Hour)}
	fresh := &model.ExternalAccountEntity{ID: 1, Active: true, AccessToken: "new-token", ExpiresAt: time.Now().Add(6 * time.Hour)}

	accountRepo.
		On("GetByID", mock.Anything, uint64(1)).
		Return(func(ctx context.Context, id uint64) *model.ExternalAccountEntity {
			mu.Lock()
			defer mu.Unlock()
			if refreshed {
				return fresh
			}
			return expired
		}, nil)

	// whoever wins the per-account lock refreshes; everyone else rereads
	mp.
		On("RefreshToken", mock.Anything, "refresh").
		Return(&marketplace.TokenSet{AccessToken: "new-token", RefreshToken: "next-refresh", ExpiresIn: 21600}, nil).
		Once()
	accountRepo.
		On("UpdateTokens", mock.Anything, uint64(1), "new-token", "next-refresh", mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			mu.Lock()
			refreshed = true
			mu.Unlock()
		}).
		Return(nil).
		Once()

	app := appaccount.NewAccountApp(testConfig(), accountRepo, verifiers, mp)

	const callers = 5
	tokens := make(chan string, callers)
	var wg gosync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := app.GetValidToken(context.Background(), 1)
			if err != nil {
				t.Errorf("GetValidToken() error = %v", err)
				return
			}
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)

	for token := range tokens {
		if token != "new-token" {
			t.Fatalf("GetValidToken() = %q, want new-token", token)
		}
	}
}

func TestAccountApp_GetValidToken_RefreshesAgainAfterLaterExpiry(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	verifiers := verifiermocks.NewStore(t)
	mp := mpmocks.NewClient(t)

	expired := &model.ExternalAccountEntity{ID: 1, Active: true, AccessToken: "old", RefreshToken: "refresh", ExpiresAt: time.Now().Add(-time.Hour)}
	accountRepo.On("GetByID", mock.Anything, uint64(1)).Return(expired, nil)

	mp.
		On("RefreshToken", mock.Anything, "refresh").
		Return(&marketplace.TokenSet{AccessToken: "new-token", RefreshToken: "next-refresh", ExpiresIn: 21600}, nil).
		Twice()
	accountRepo.
		On("UpdateTokens", mock.Anything, uint64(1), "new-token", "next-refresh", mock.AnythingOfType("time.Time")).
		Return(nil).
		Twice()

	app := appaccount.NewAccountApp(testConfig(), accountRepo, verifiers, mp)

	// two separate expiries; the second refresh must work just like the first
	for i := 0; i < 2; i++ {
		token, err := app.GetValidToken(context.Background(), 1)
		if err != nil {
			t.Fatalf("GetValidToken() #%d error = %v", i+1, err)
		}
		if token != "new-token" {
			t.Fatalf("GetValidToken() #%d = %q, want new-token", i+1, token)
		}
	}
}
