package account

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/estoquehub/sync-engine/cmd/config"
	"github.com/estoquehub/sync-engine/constant"
	"github.com/estoquehub/sync-engine/model"
	accountrepo "github.com/estoquehub/sync-engine/repository/account"
	"github.com/estoquehub/sync-engine/repository/verifier"
	"github.com/estoquehub/sync-engine/thirdparty/marketplace"
	"github.com/estoquehub/sync-engine/utils/errors"
	"github.com/estoquehub/sync-engine/utils/logger"
)

type AccountApp interface {
	GetValidToken(ctx context.Context, accountID uint64) (string, error)
	ConnectAccount(ctx context.Context, userID uint64) (*model.ConnectResponse, error)
	CompleteConnect(ctx context.Context, code, state string) (*model.ExternalAccountEntity, error)
	DisconnectAccount(ctx context.Context, accountID uint64) error
}

type accountAppImpl struct {
	config      *config.Config
	accountRepo accountrepo.AccountRepository
	verifiers   verifier.Store
	mp          marketplace.Client

	mu           sync.Mutex
	refreshLocks map[uint64]*refreshLock
}

// refreshLock serializes token refreshes for one account. refs counts holders
// and waiters so the map entry can be dropped once the last one is gone.
type refreshLock struct {
	mu   sync.Mutex
	refs int
}

func NewAccountApp(cfg *config.Config, accountRepo accountrepo.AccountRepository, verifiers verifier.Store, mp marketplace.Client) AccountApp {
	return &accountAppImpl{
		config:       cfg,
		accountRepo:  accountRepo,
		verifiers:    verifiers,
		mp:           mp,
		refreshLocks: make(map[uint64]*refreshLock),
	}
}

// GetValidToken returns the cached access token while it is still valid and
// refreshes it otherwise. A rejected refresh deactivates the account: the
// caller must not retry, the user has to reconnect.
func (s *accountAppImpl) GetValidToken(ctx context.Context, accountID uint64) (string, error) {
	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Error("[GetValidToken] get account failed", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if acct == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}
	if !acct.Active {
		// already invalidated; no network call
		return "", errors.SetCustomError(constant.ErrReauthRequired)
	}
	if acct.ExpiresAt.After(time.Now().Add(s.config.Sync.TokenExpirySkew)) {
		return acct.AccessToken, nil
	}

	// single refresh per account, concurrent callers wait for the winner
	lock := s.lockFor(accountID)
	lock.mu.Lock()
	defer s.releaseLock(accountID, lock)

	acct, err = s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Error("[GetValidToken] reread account failed", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if acct == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}
	if !acct.Active {
		return "", errors.SetCustomError(constant.ErrReauthRequired)
	}
	if acct.ExpiresAt.After(time.Now().Add(s.config.Sync.TokenExpirySkew)) {
		return acct.AccessToken, nil
	}

	tokens, err := s.mp.RefreshToken(ctx, acct.RefreshToken)
	if err != nil {
		if errors.Is(err, constant.ErrReauthRequired) {
			logger.Warn("[GetValidToken] refresh token rejected, deactivating account", zap.Uint64("account_id", accountID))
			if derr := s.accountRepo.SetActive(ctx, accountID, false); derr != nil {
				logger.Error("[GetValidToken] deactivate failed", zap.String("error", derr.Error()))
			}
			return "", errors.SetCustomError(constant.ErrReauthRequired)
		}
		logger.Error("[GetValidToken] refresh failed", zap.String("error", err.Error()))
		return "", err
	}

	expiresAt := time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	if err := s.accountRepo.UpdateTokens(ctx, accountID, tokens.AccessToken, tokens.RefreshToken, expiresAt); err != nil {
		logger.Error("[GetValidToken] store tokens failed", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return tokens.AccessToken, nil
}

// ConnectAccount starts the authorization-code + PKCE handshake. The verifier
// is cached under an opaque state with a short TTL; the callback exchanges it.
func (s *accountAppImpl) ConnectAccount(ctx context.Context, userID uint64) (*model.ConnectResponse, error) {
	verifierValue, challenge, err := newPKCEPair()
	if err != nil {
		logger.Error("[ConnectAccount] generate verifier failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	state := uuid.NewString()
	cached := fmt.Sprintf("%d:%s", userID, verifierValue)
	if err := s.verifiers.Put(ctx, state, cached, s.config.Sync.VerifierTTL); err != nil {
		logger.Error("[ConnectAccount] cache verifier failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ConnectResponse{
		AuthorizationURL: s.mp.AuthorizationURL(state, challenge),
		State:            state,
	}, nil
}

func (s *accountAppImpl) CompleteConnect(ctx context.Context, code, state string) (*model.ExternalAccountEntity, error) {
	cached, err := s.verifiers.Take(ctx, state)
	if err != nil {
		logger.Error("[CompleteConnect] verifier lookup failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cached == "" {
		// expired or replayed callback
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	userID, verifierValue, ok := splitCached(cached)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	tokens, err := s.mp.ExchangeCode(ctx, code, verifierValue)
	if err != nil {
		logger.Error("[CompleteConnect] code exchange failed", zap.String("error", err.Error()))
		return nil, err
	}

	acct := &model.ExternalAccountEntity{
		UserID:         userID,
		ExternalUserID: tokens.UserID,
		AccessToken:    tokens.AccessToken,
		RefreshToken:   tokens.RefreshToken,
		ExpiresAt:      time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second),
		Active:         true,
	}
	id, err := s.accountRepo.Upsert(ctx, acct)
	if err != nil {
		logger.Error("[CompleteConnect] upsert account failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	acct.ID = id
	return acct, nil
}

func (s *accountAppImpl) DisconnectAccount(ctx context.Context, accountID uint64) error {
	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Error("[DisconnectAccount] get account failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if acct == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.accountRepo.SetActive(ctx, accountID, false); err != nil {
		logger.Error("[DisconnectAccount] deactivate failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *accountAppImpl) lockFor(accountID uint64) *refreshLock {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.refreshLocks[accountID]
	if !ok {
		lock = &refreshLock{}
		s.refreshLocks[accountID] = lock
	}
	lock.refs++
	return lock
}

func (s *accountAppImpl) releaseLock(accountID uint64, lock *refreshLock) {
	lock.mu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.refreshLocks, accountID)
	}
}

func newPKCEPair() (verifierValue, challenge string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	verifierValue = base64.RawURLEncoding.EncodeToString(raw)
	sum := sha256.Sum256([]byte(verifierValue))
	challenge = base64.RawURLEncoding.EncodeToString(sum[:])
	return verifierValue, challenge, nil
}

func splitCached(cached string) (uint64, string, bool) {
	parts := strings.SplitN(cached, ":", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	userID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return userID, parts[1], true
}
