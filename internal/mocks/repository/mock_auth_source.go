package repository

import (
	context "context"

	entity "solarsavers/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthSource is a mock type for the AuthSource type
type MockAuthSource struct {
	mock.Mock
}

type MockAuthSource_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthSource) EXPECT() *MockAuthSource_Expecter {
	return &MockAuthSource_Expecter{mock: &_m.Mock}
}

// Login provides a mock function with given fields: ctx, creds
func (_m *MockAuthSource) Login(ctx context.Context, creds entity.Credentials) (*entity.AuthResult, error) {
	ret := _m.Called(ctx, creds)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *entity.AuthResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Credentials) (*entity.AuthResult, error)); ok {
		return rf(ctx, creds)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Credentials) *entity.AuthResult); ok {
		r0 = rf(ctx, creds)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.AuthResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Credentials) error); ok {
		r1 = rf(ctx, creds)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthSource_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockAuthSource_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
func (_e *MockAuthSource_Expecter) Login(ctx interface{}, creds interface{}) *MockAuthSource_Login_Call {
	return &MockAuthSource_Login_Call{Call: _e.mock.On("Login", ctx, creds)}
}

func (_c *MockAuthSource_Login_Call) Run(run func(ctx context.Context, creds entity.Credentials)) *MockAuthSource_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Credentials))
	})
	return _c
}

func (_c *MockAuthSource_Login_Call) Return(_a0 *entity.AuthResult, _a1 error) *MockAuthSource_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthSource_Login_Call) RunAndReturn(run func(context.Context, entity.Credentials) (*entity.AuthResult, error)) *MockAuthSource_Login_Call {
	_c.Call.Return(run)
	return _c
}

// Me provides a mock function with given fields: ctx, token
func (_m *MockAuthSource) Me(ctx context.Context, token string) (*entity.User, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Me")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.User, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.User); ok {
		r0 = rf(ctx, token)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthSource_Me_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Me'
type MockAuthSource_Me_Call struct {
	*mock.Call
}

// Me is a helper method to define mock.On call
func (_e *MockAuthSource_Expecter) Me(ctx interface{}, token interface{}) *MockAuthSource_Me_Call {
	return &MockAuthSource_Me_Call{Call: _e.mock.On("Me", ctx, token)}
}

func (_c *MockAuthSource_Me_Call) Run(run func(ctx context.Context, token string)) *MockAuthSource_Me_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockAuthSource_Me_Call) Return(_a0 *entity.User, _a1 error) *MockAuthSource_Me_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthSource_Me_Call) RunAndReturn(run func(context.Context, string) (*entity.User, error)) *MockAuthSource_Me_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx, reg
func (_m *MockAuthSource) Register(ctx context.Context, reg entity.Registration) (*entity.AuthResult, error) {
	ret := _m.Called(ctx, reg)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *entity.AuthResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Registration) (*entity.AuthResult, error)); ok {
		return rf(ctx, reg)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Registration) *entity.AuthResult); ok {
		r0 = rf(ctx, reg)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.AuthResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Registration) error); ok {
		r1 = rf(ctx, reg)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthSource_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockAuthSource_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
func (_e *MockAuthSource_Expecter) Register(ctx interface{}, reg interface{}) *MockAuthSource_Register_Call {
	return &MockAuthSource_Register_Call{Call: _e.mock.On("Register", ctx, reg)}
}

func (_c *MockAuthSource_Register_Call) Run(run func(ctx context.Context, reg entity.Registration)) *MockAuthSource_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Registration))
	})
	return _c
}

func (_c *MockAuthSource_Register_Call) Return(_a0 *entity.AuthResult, _a1 error) *MockAuthSource_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthSource_Register_Call) RunAndReturn(run func(context.Context, entity.Registration) (*entity.AuthResult, error)) *MockAuthSource_Register_Call {
	_c.Call.Return(run)
	return _c
}

// RegisterVendor provides a mock function with given fields: ctx, reg
func (_m *MockAuthSource) RegisterVendor(ctx context.Context, reg entity.VendorRegistration) (*entity.AuthResult, error) {
	ret := _m.Called(ctx, reg)

	if len(ret) == 0 {
		panic("no return value specified for RegisterVendor")
	}

	var r0 *entity.AuthResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.VendorRegistration) (*entity.AuthResult, error)); ok {
		return rf(ctx, reg)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.VendorRegistration) *entity.AuthResult); ok {
		r0 = rf(ctx, reg)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.AuthResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.VendorRegistration) error); ok {
		r1 = rf(ctx, reg)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthSource_RegisterVendor_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RegisterVendor'
type MockAuthSource_RegisterVendor_Call struct {
	*mock.Call
}

// RegisterVendor is a helper method to define mock.On call
func (_e *MockAuthSource_Expecter) RegisterVendor(ctx interface{}, reg interface{}) *MockAuthSource_RegisterVendor_Call {
	return &MockAuthSource_RegisterVendor_Call{Call: _e.mock.On("RegisterVendor", ctx, reg)}
}

func (_c *MockAuthSource_RegisterVendor_Call) Run(run func(ctx context.Context, reg entity.VendorRegistration)) *MockAuthSource_RegisterVendor_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.VendorRegistration))
	})
	return _c
}

func (_c *MockAuthSource_RegisterVendor_Call) Return(_a0 *entity.AuthResult, _a1 error) *MockAuthSource_RegisterVendor_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthSource_RegisterVendor_Call) RunAndReturn(run func(context.Context, entity.VendorRegistration) (*entity.AuthResult, error)) *MockAuthSource_RegisterVendor_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthSource creates a new instance of MockAuthSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthSource {
	m := &MockAuthSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
