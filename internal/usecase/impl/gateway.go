package impl

import (
	"context"
	"log/slog"

	"solarsavers/config"
	deliverycontext "solarsavers/internal/delivery/context"
	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/usecase"

	"github.com/pkg/errors"
)

// sessionReader is the part of the session store the gateway needs.
type sessionReader interface {
	Snapshot() entity.Session
}

// Gateway routes page calls to the API, the fixtures, or both, according to dataSource.mode.
type Gateway struct {
	mode     string
	remote   repository.DataSource
	fallback repository.FallbackSource
	session  sessionReader
	logger   *slog.Logger
}

// NewGateway is the constructor for Gateway.
func NewGateway(
	cfg *config.Config,
	remote repository.DataSource,
	fallback repository.FallbackSource,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) *Gateway {
	return &Gateway{
		mode:     cfg.DataSource.Mode,
		remote:   remote,
		fallback: fallback,
		session:  session,
		logger:   logger,
	}
}

// SelectAuthSource picks the identity backend: fixtures in fixture mode, the API otherwise.
// Sign-in never falls back, so a failed login is always reported.
func SelectAuthSource(cfg *config.Config, remote repository.DataSource, fallback repository.FallbackSource) repository.AuthSource {
	if cfg.DataSource.Mode == config.DataSourceFixture {
		return fallback
	}

	return remote
}

func (g *Gateway) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// op names a call and whether it needs a signed-in user.
type op struct {
	name   string
	bearer bool
}

func public(name string) op { return op{name: name} }

func bearer(name string) op { return op{name: name, bearer: true} }

// primary returns the first source to try and its token.
func (g *Gateway) primary(o op) (repository.DataSource, string, error) {
	snap := g.session.Snapshot()
	if o.bearer && snap.State != entity.SessionAuthenticated {
		return nil, "", domainerrors.ErrNotAuthenticated
	}

	if g.mode == config.DataSourceFixture {
		return g.fallback, snap.Token, nil
	}

	return g.remote, snap.Token, nil
}

// fallbackToken maps the signed-in role onto a demo account.
func (g *Gateway) fallbackToken(o op) string {
	if !o.bearer {
		return ""
	}

	snap := g.session.Snapshot()
	if snap.User == nil {
		return ""
	}

	return g.fallback.TokenFor(snap.User.Role)
}

func (g *Gateway) demo() bool {
	return g.mode == config.DataSourceDemo
}

// recoverable reports whether a failure may be papered over in demo mode.
// Form and session problems always reach the user.
func recoverable(err error) bool {
	return !errors.Is(err, domainerrors.ErrValidationFailed) &&
		!errors.Is(err, domainerrors.ErrPriceCeiling) &&
		!errors.Is(err, domainerrors.ErrNotAuthenticated) &&
		!errors.Is(err, domainerrors.ErrDisposed)
}

// read fetches through the primary source. In demo mode a failed API read is
// replaced by the fixture dataset; the second result reports that.
func read[T any](ctx context.Context, g *Gateway, o op, fn func(src repository.DataSource, token string) (T, error)) (T, bool, error) {
	var zero T

	src, token, err := g.primary(o)
	if err != nil {
		return zero, false, err
	}

	out, err := fn(src, token)
	if err == nil {
		return out, false, nil
	}
	if !g.demo() || !recoverable(err) {
		return zero, false, errors.Wrap(err, o.name)
	}

	g.log(ctx).Warn("API read failed, serving demo data", slog.String("op", o.name), slog.Any("error", err))

	out, fbErr := fn(g.fallback, g.fallbackToken(o))
	if fbErr != nil {
		return zero, false, errors.Wrap(err, o.name)
	}

	return out, true, nil
}

// write sends a mutation through the primary source. In demo mode a failed API
// write is reported as a demo outcome; the caller then applies it locally.
func write(ctx context.Context, g *Gateway, o op, fn func(src repository.DataSource, token string) error) (usecase.Outcome, error) {
	src, token, err := g.primary(o)
	if err != nil {
		return usecase.Outcome{}, err
	}

	err = fn(src, token)
	if err == nil {
		return usecase.Outcome{}, nil
	}
	if !g.demo() || !recoverable(err) {
		return usecase.Outcome{}, errors.Wrap(err, o.name)
	}

	g.log(ctx).Warn("API write failed, applying locally only", slog.String("op", o.name), slog.Any("error", err))

	return usecase.Outcome{Demo: true}, nil
}
