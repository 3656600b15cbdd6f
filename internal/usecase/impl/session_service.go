package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	deliverycontext "solarsavers/internal/delivery/context"
	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth      repository.AuthSource
	store     repository.KeyValueStore
	inspector service.TokenInspector
	validator *validation.Validator
	logger    *slog.Logger
	now       func() time.Time

	once  sync.Once
	ready chan struct{}

	// tokenMu serializes writes to the durable token key.
	tokenMu sync.Mutex

	mu        sync.RWMutex
	session   entity.Session
	listeners []func(entity.Session)
}

// NewSessionService is the constructor for sessionService. The session starts Unknown.
func NewSessionService(
	auth repository.AuthSource,
	store repository.KeyValueStore,
	inspector service.TokenInspector,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		auth:      auth,
		store:     store,
		inspector: inspector,
		validator: validator,
		logger:    logger,
		now:       time.Now,
		ready:     make(chan struct{}),
		session:   entity.Session{State: entity.SessionUnknown},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initialize resolves the Unknown state exactly once.
func (srv *sessionService) Initialize(ctx context.Context) {
	srv.once.Do(func() {
		defer close(srv.ready)

		user, token := srv.restore(ctx)
		if user == nil {
			srv.resolve(entity.Session{State: entity.SessionAnonymous})

			return
		}
		srv.resolve(entity.Session{State: entity.SessionAuthenticated, User: user, Token: token})
	})
}

// restore validates the stored token. Any failure discards it.
func (srv *sessionService) restore(ctx context.Context) (*entity.User, string) {
	token, err := srv.loadToken(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			srv.log(ctx).Warn("Stored token unreadable, discarding", slog.Any("error", err))
			srv.dropToken(ctx)
		}

		return nil, ""
	}

	if srv.inspector.Expired(token, srv.now()) {
		srv.log(ctx).Info("Stored token expired, discarding")
		srv.discardToken(ctx, token)

		return nil, ""
	}

	user, err := srv.auth.Me(ctx, token)
	if err == nil && !user.Valid() {
		err = domainerrors.ErrRemoteRejected.WithDetails("malformed identity")
	}
	if err != nil {
		srv.log(ctx).Info("Stored token rejected, discarding", slog.Any("error", err))
		srv.discardToken(ctx, token)

		return nil, ""
	}

	return user, token
}

// resolve leaves Unknown unless a login already did.
func (srv *sessionService) resolve(next entity.Session) {
	srv.mu.Lock()
	if srv.session.State != entity.SessionUnknown {
		srv.mu.Unlock()

		return
	}
	srv.session = next
	listeners := srv.listeners
	srv.mu.Unlock()

	notify(listeners, next)
}

func (srv *sessionService) Ready() <-chan struct{} {
	return srv.ready
}

func (srv *sessionService) Snapshot() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	s := srv.session
	if s.User != nil {
		u := *s.User
		s.User = &u
	}

	return s
}

func (srv *sessionService) OnChange(fn func(entity.Session)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.listeners = append(srv.listeners, fn)
}

// Login propagates every failure and leaves the session untouched on error.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	creds := entity.Credentials{Email: email, Password: password}
	if err := srv.validator.Validate(creds); err != nil {
		return nil, err
	}

	res, err := srv.auth.Login(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}
	if !res.Valid() {
		return nil, errors.Wrap(domainerrors.ErrRemoteRejected.WithDetails("malformed response"), "login")
	}
	srv.log(ctx).Info("Signed in", slog.String("user_id", res.User.ID), slog.String("role", res.User.Role.String()))

	return srv.authenticate(ctx, res), nil
}

func (srv *sessionService) Register(ctx context.Context, reg entity.Registration) (*entity.User, error) {
	if err := srv.validator.Validate(reg); err != nil {
		return nil, err
	}

	res, err := srv.auth.Register(ctx, reg)
	if err != nil {
		return nil, errors.Wrap(err, "register")
	}
	if !res.Valid() {
		return nil, errors.Wrap(domainerrors.ErrRemoteRejected.WithDetails("malformed response"), "register")
	}
	srv.log(ctx).Info("Registered", slog.String("user_id", res.User.ID))

	return srv.authenticate(ctx, res), nil
}

func (srv *sessionService) RegisterVendor(ctx context.Context, reg entity.VendorRegistration) error {
	if err := srv.validator.Validate(reg); err != nil {
		return err
	}

	if _, err := srv.auth.RegisterVendor(ctx, reg); err != nil {
		return errors.Wrap(err, "register vendor")
	}
	srv.log(ctx).Info("Vendor registration submitted", slog.String("business", reg.BusinessName))

	return nil
}

func (srv *sessionService) authenticate(ctx context.Context, res *entity.AuthResult) *entity.User {
	if err := srv.saveToken(ctx, res.AccessToken); err != nil {
		srv.log(ctx).Error("Failed to persist token", slog.Any("error", err))
	}

	user := res.User
	srv.transition(entity.Session{State: entity.SessionAuthenticated, User: &user, Token: res.AccessToken})

	u := user

	return &u
}

func (srv *sessionService) Logout(ctx context.Context) {
	srv.dropToken(ctx)
	srv.transition(entity.Session{State: entity.SessionAnonymous})
	srv.log(ctx).Info("Signed out")
}

// Reject only demotes an authenticated session; Initialize handles its own failures.
func (srv *sessionService) Reject(ctx context.Context) {
	srv.mu.RLock()
	authenticated := srv.session.State == entity.SessionAuthenticated
	srv.mu.RUnlock()

	if !authenticated {
		return
	}

	srv.log(ctx).Warn("Token rejected by the API, signing out")
	srv.dropToken(ctx)
	srv.transition(entity.Session{State: entity.SessionAnonymous})
}

func (srv *sessionService) transition(next entity.Session) {
	srv.mu.Lock()
	srv.session = next
	listeners := srv.listeners
	srv.mu.Unlock()

	notify(listeners, next)
}

func notify(listeners []func(entity.Session), s entity.Session) {
	for _, fn := range listeners {
		fn(s)
	}
}

func (srv *sessionService) loadToken(ctx context.Context) (string, error) {
	raw, err := srv.store.Get(ctx, repository.KeyToken)
	if err != nil {
		return "", err
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", errors.Wrap(err, "decode token")
	}
	if token == "" {
		return "", errors.New("empty token")
	}

	return token, nil
}

func (srv *sessionService) saveToken(ctx context.Context, token string) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return errors.WithStack(err)
	}

	srv.tokenMu.Lock()
	defer srv.tokenMu.Unlock()

	return srv.store.Set(ctx, repository.KeyToken, raw)
}

// discardToken removes the stored token only while it is still the one that was checked,
// so a sign-in that finished during the check keeps its token.
func (srv *sessionService) discardToken(ctx context.Context, checked string) {
	srv.tokenMu.Lock()
	defer srv.tokenMu.Unlock()

	current, err := srv.loadToken(ctx)
	if err != nil || current != checked {
		return
	}
	srv.deleteToken(ctx)
}

func (srv *sessionService) dropToken(ctx context.Context) {
	srv.tokenMu.Lock()
	defer srv.tokenMu.Unlock()

	srv.deleteToken(ctx)
}

func (srv *sessionService) deleteToken(ctx context.Context) {
	if err := srv.store.Delete(ctx, repository.KeyToken); err != nil {
		srv.log(ctx).Error("Failed to remove token", slog.Any("error", err))
	}
}
