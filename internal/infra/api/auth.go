package api

import (
	"context"
	"net/http"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	pathLogin          = "/api/auth/login"
	pathRegister       = "/api/auth/register"
	pathMe             = "/api/auth/me"
	pathVendorRegister = "/api/vendors/register"
)

// malformed reports a 2xx reply that does not carry what the endpoint promises.
func malformed(path string) error {
	return errors.Wrap(domainerrors.ErrRemoteRejected.WithDetails("malformed response"), path)
}

// Login rejects a reply without a token or an identified user.
func (c *Client) Login(ctx context.Context, creds entity.Credentials) (*entity.AuthResult, error) {
	var out entity.AuthResult
	if err := c.send(ctx, http.MethodPost, pathLogin, "", creds, &out); err != nil {
		return nil, err
	}
	if !out.Valid() {
		return nil, malformed(pathLogin)
	}

	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg entity.Registration) (*entity.AuthResult, error) {
	var out entity.AuthResult
	if err := c.send(ctx, http.MethodPost, pathRegister, "", reg, &out); err != nil {
		return nil, err
	}
	if !out.Valid() {
		return nil, malformed(pathRegister)
	}

	return &out, nil
}

func (c *Client) RegisterVendor(ctx context.Context, reg entity.VendorRegistration) (*entity.AuthResult, error) {
	var out entity.AuthResult
	if err := c.send(ctx, http.MethodPost, pathVendorRegister, "", reg, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Me is the identity check. A 401 here also triggers the unauthorized handler.
// An empty body, null, a missing id or an unknown role is a malformed reply.
func (c *Client) Me(ctx context.Context, token string) (*entity.User, error) {
	var out entity.User
	if err := c.get(ctx, pathMe, token, nil, &out); err != nil {
		return nil, err
	}
	if !out.Valid() {
		return nil, malformed(pathMe)
	}

	return &out, nil
}
