package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/infra/auth"
	"solarsavers/internal/infra/fixture"
	"solarsavers/internal/infra/storage"
	mockRepo "solarsavers/internal/mocks/repository"
	"solarsavers/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionTestFixture struct {
	store   repository.KeyValueStore
	auth    repository.AuthSource
	service *sessionService
}

func createTestSessionService(t *testing.T, authSource repository.AuthSource) *sessionTestFixture {
	t.Helper()

	store := storage.NewMemoryStore(newDiscardLogger())
	srv := NewSessionService(authSource, store, auth.NewJWTInspector(), validation.New(), newDiscardLogger()).(*sessionService)

	return &sessionTestFixture{store: store, auth: authSource, service: srv}
}

func (f *sessionTestFixture) storeToken(t *testing.T, token string) {
	t.Helper()

	raw, err := json.Marshal(token)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(context.Background(), repository.KeyToken, raw))
}

func (f *sessionTestFixture) tokenStored() bool {
	_, err := f.store.Get(context.Background(), repository.KeyToken)

	return err == nil
}

func (f *sessionTestFixture) storedToken(t *testing.T) string {
	t.Helper()

	token, err := f.service.loadToken(context.Background())
	require.NoError(t, err)

	return token
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "customer-1",
		"role": "customer",
		"exp":  exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestSessionService_Initialize_RejectedTokenIsDiscarded(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)
	f.storeToken(t, "stale-token")

	authSource.EXPECT().Me(mock.Anything, "stale-token").Return(nil, domainerrors.ErrSessionExpired)

	f.service.Initialize(context.Background())

	snap := f.service.Snapshot()
	assert.Equal(t, entity.SessionAnonymous, snap.State)
	assert.Nil(t, snap.User)
	assert.False(t, f.tokenStored())
}

func TestSessionService_Initialize_ExpiredTokenSkipsNetwork(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)
	f.storeToken(t, signedToken(t, time.Now().Add(-time.Hour)))

	f.service.Initialize(context.Background())

	assert.Equal(t, entity.SessionAnonymous, f.service.Snapshot().State)
	assert.False(t, f.tokenStored())
	authSource.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
}

func TestSessionService_Initialize_ValidToken(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)
	token := signedToken(t, time.Now().Add(time.Hour))
	f.storeToken(t, token)
	user := &entity.User{ID: "customer-1", Email: "customer@solarsavers.com", Role: entity.RoleCustomer}

	authSource.EXPECT().Me(mock.Anything, token).Return(user, nil)

	f.service.Initialize(context.Background())

	snap := f.service.Snapshot()
	assert.Equal(t, entity.SessionAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "customer-1", snap.User.ID)
	assert.Equal(t, token, snap.Token)
	assert.True(t, f.tokenStored())
}

func TestSessionService_Initialize_NoTokenIsAnonymous(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)

	assert.True(t, f.service.Snapshot().IsLoading())

	f.service.Initialize(context.Background())

	select {
	case <-f.service.Ready():
	default:
		t.Fatal("ready channel not closed")
	}
	assert.Equal(t, entity.SessionAnonymous, f.service.Snapshot().State)
}

func TestSessionService_Initialize_RunsOnce(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)
	f.storeToken(t, "tok")

	authSource.EXPECT().Me(mock.Anything, "tok").Return(&entity.User{ID: "u", Role: entity.RoleCustomer}, nil).Once()

	f.service.Initialize(context.Background())
	f.service.Initialize(context.Background())

	assert.Equal(t, entity.SessionAuthenticated, f.service.Snapshot().State)
}

func TestSessionService_Initialize_MalformedIdentityIsDiscarded(t *testing.T) {
	tests := []struct {
		name string
		user *entity.User
	}{
		{name: "null body", user: nil},
		{name: "empty object", user: &entity.User{}},
		{name: "missing id", user: &entity.User{Email: "a@b.com", Role: entity.RoleCustomer}},
		{name: "unknown role", user: &entity.User{ID: "u1", Role: entity.Role("root")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSource := mockRepo.NewMockAuthSource(t)
			f := createTestSessionService(t, authSource)
			f.storeToken(t, "tok")

			authSource.EXPECT().Me(mock.Anything, "tok").Return(tt.user, nil)

			f.service.Initialize(context.Background())

			snap := f.service.Snapshot()
			assert.Equal(t, entity.SessionAnonymous, snap.State)
			assert.Nil(t, snap.User)
			assert.False(t, f.tokenStored())
		})
	}
}

func TestSessionService_Initialize_KeepsTokenFromConcurrentLogin(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)
	f.storeToken(t, "stale-token")

	checking := make(chan struct{})
	proceed := make(chan struct{})
	authSource.EXPECT().Me(mock.Anything, "stale-token").RunAndReturn(func(ctx context.Context, token string) (*entity.User, error) {
		close(checking)
		<-proceed

		return nil, domainerrors.ErrSessionExpired
	})
	authSource.EXPECT().Login(mock.Anything, mock.Anything).Return(&entity.AuthResult{
		AccessToken: "fresh-token",
		User:        entity.User{ID: "customer-1", Role: entity.RoleCustomer},
	}, nil)

	done := make(chan struct{})
	go func() {
		f.service.Initialize(context.Background())
		close(done)
	}()

	<-checking
	_, err := f.service.Login(context.Background(), "customer@solarsavers.com", "demo123")
	require.NoError(t, err)
	close(proceed)
	<-done

	snap := f.service.Snapshot()
	assert.Equal(t, entity.SessionAuthenticated, snap.State)
	assert.Equal(t, "fresh-token", snap.Token)
	assert.Equal(t, "fresh-token", f.storedToken(t))
}

func TestSessionService_Login_MalformedReplyIsRejected(t *testing.T) {
	tests := []struct {
		name string
		res  *entity.AuthResult
	}{
		{name: "empty reply", res: &entity.AuthResult{}},
		{name: "missing token", res: &entity.AuthResult{User: entity.User{ID: "u1", Role: entity.RoleCustomer}}},
		{name: "missing user id", res: &entity.AuthResult{AccessToken: "tok", User: entity.User{Role: entity.RoleCustomer}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSource := mockRepo.NewMockAuthSource(t)
			f := createTestSessionService(t, authSource)
			f.service.Initialize(context.Background())

			authSource.EXPECT().Login(mock.Anything, mock.Anything).Return(tt.res, nil)

			user, err := f.service.Login(context.Background(), "customer@solarsavers.com", "demo123")

			assert.Nil(t, user)
			assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))
			assert.Equal(t, entity.SessionAnonymous, f.service.Snapshot().State)
			assert.False(t, f.tokenStored())
		})
	}
}

func TestSessionService_Register_MalformedReplyIsRejected(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)
	f.service.Initialize(context.Background())

	authSource.EXPECT().Register(mock.Anything, mock.Anything).Return(&entity.AuthResult{}, nil)

	_, err := f.service.Register(context.Background(), entity.Registration{
		Name: "Jane", Email: "jane@example.com", Password: "secret1",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrRemoteRejected))
	assert.Equal(t, entity.SessionAnonymous, f.service.Snapshot().State)
	assert.False(t, f.tokenStored())
}

func TestSessionService_Login_ValidationBlocksRequest(t *testing.T) {
	authSource := mockRepo.NewMockAuthSource(t)
	f := createTestSessionService(t, authSource)
	f.service.Initialize(context.Background())

	user, err := f.service.Login(context.Background(), "not-an-email", "")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "email must be a valid email")
	authSource.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestSessionService_Login_FailureLeavesSessionUntouched(t *testing.T) {
	f := createTestSessionService(t, fixture.NewSource())
	f.service.Initialize(context.Background())

	_, err := f.service.Login(context.Background(), "customer@solarsavers.com", "wrong")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, entity.SessionAnonymous, f.service.Snapshot().State)
	assert.False(t, f.tokenStored())
}

func TestSessionService_LoginPersistsAcrossInstances(t *testing.T) {
	source := fixture.NewSource()
	f := createTestSessionService(t, source)
	f.service.Initialize(context.Background())

	user, err := f.service.Login(context.Background(), "vendor@solarsavers.com", "vendor123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, user.Role)

	restored := NewSessionService(source, f.store, auth.NewJWTInspector(), validation.New(), newDiscardLogger())
	restored.Initialize(context.Background())

	snap := restored.Snapshot()
	assert.Equal(t, entity.SessionAuthenticated, snap.State)
	assert.Equal(t, "vendor-1", snap.User.ID)
}

func TestSessionService_LogoutAndListeners(t *testing.T) {
	f := createTestSessionService(t, fixture.NewSource())

	var states []entity.SessionState
	f.service.OnChange(func(s entity.Session) { states = append(states, s.State) })

	f.service.Initialize(context.Background())
	_, err := f.service.Login(context.Background(), "admin@solarsavers.com", "admin123")
	require.NoError(t, err)
	f.service.Logout(context.Background())

	assert.Equal(t, []entity.SessionState{entity.SessionAnonymous, entity.SessionAuthenticated, entity.SessionAnonymous}, states)
	assert.False(t, f.tokenStored())
	assert.Nil(t, f.service.Snapshot().User)
}

func TestSessionService_RejectOnlyDemotesAuthenticated(t *testing.T) {
	f := createTestSessionService(t, fixture.NewSource())

	f.service.Reject(context.Background())
	assert.Equal(t, entity.SessionUnknown, f.service.Snapshot().State)

	f.service.Initialize(context.Background())
	_, err := f.service.Login(context.Background(), "customer@solarsavers.com", "demo123")
	require.NoError(t, err)

	f.service.Reject(context.Background())
	assert.Equal(t, entity.SessionAnonymous, f.service.Snapshot().State)
	assert.False(t, f.tokenStored())
}

func TestSessionService_Register(t *testing.T) {
	f := createTestSessionService(t, fixture.NewSource())
	f.service.Initialize(context.Background())

	_, err := f.service.Register(context.Background(), entity.Registration{
		Name: "Jane", Email: "jane@example.com", Password: "secret1", ConfirmPassword: "secret2",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "passwords do not match")

	user, err := f.service.Register(context.Background(), entity.Registration{
		Name: "Jane", Email: "jane@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Equal(t, entity.SessionAuthenticated, f.service.Snapshot().State)

	_, err = f.service.Register(context.Background(), entity.Registration{
		Name: "Jane", Email: "jane@example.com", Password: "secret1",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountExists))
}

func TestSessionService_RegisterVendorKeepsSession(t *testing.T) {
	f := createTestSessionService(t, fixture.NewSource())
	f.service.Initialize(context.Background())

	reg := entity.VendorRegistration{
		Name: "Ravi", Email: "ravi@sunworks.in", Password: "secret1",
		BusinessName: "SunWorks", Phone: "9999999999",
	}
	err := f.service.RegisterVendor(context.Background(), reg)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "please accept the terms and conditions")

	reg.AcceptTerms = true
	require.NoError(t, f.service.RegisterVendor(context.Background(), reg))
	assert.Equal(t, entity.SessionAnonymous, f.service.Snapshot().State)
}
