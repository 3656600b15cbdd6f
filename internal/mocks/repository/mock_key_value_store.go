package repository

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockKeyValueStore is a mock type for the KeyValueStore type
type MockKeyValueStore struct {
	mock.Mock
}

type MockKeyValueStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockKeyValueStore) EXPECT() *MockKeyValueStore_Expecter {
	return &MockKeyValueStore_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with given fields:
func (_m *MockKeyValueStore) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockKeyValueStore_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockKeyValueStore_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockKeyValueStore_Expecter) Close() *MockKeyValueStore_Close_Call {
	return &MockKeyValueStore_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockKeyValueStore_Close_Call) Run(run func()) *MockKeyValueStore_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockKeyValueStore_Close_Call) Return(_a0 error) *MockKeyValueStore_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockKeyValueStore_Close_Call) RunAndReturn(run func() error) *MockKeyValueStore_Close_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, key
func (_m *MockKeyValueStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockKeyValueStore_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockKeyValueStore_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
func (_e *MockKeyValueStore_Expecter) Delete(ctx interface{}, key interface{}) *MockKeyValueStore_Delete_Call {
	return &MockKeyValueStore_Delete_Call{Call: _e.mock.On("Delete", ctx, key)}
}

func (_c *MockKeyValueStore_Delete_Call) Run(run func(ctx context.Context, key string)) *MockKeyValueStore_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockKeyValueStore_Delete_Call) Return(_a0 error) *MockKeyValueStore_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockKeyValueStore_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockKeyValueStore_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]byte, error)); ok {
		return rf(ctx, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockKeyValueStore_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockKeyValueStore_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
func (_e *MockKeyValueStore_Expecter) Get(ctx interface{}, key interface{}) *MockKeyValueStore_Get_Call {
	return &MockKeyValueStore_Get_Call{Call: _e.mock.On("Get", ctx, key)}
}

func (_c *MockKeyValueStore_Get_Call) Run(run func(ctx context.Context, key string)) *MockKeyValueStore_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockKeyValueStore_Get_Call) Return(_a0 []byte, _a1 error) *MockKeyValueStore_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockKeyValueStore_Get_Call) RunAndReturn(run func(context.Context, string) ([]byte, error)) *MockKeyValueStore_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Set provides a mock function with given fields: ctx, key, value
func (_m *MockKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	ret := _m.Called(ctx, key, value)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []byte) error); ok {
		r0 = rf(ctx, key, value)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockKeyValueStore_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type MockKeyValueStore_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
func (_e *MockKeyValueStore_Expecter) Set(ctx interface{}, key interface{}, value interface{}) *MockKeyValueStore_Set_Call {
	return &MockKeyValueStore_Set_Call{Call: _e.mock.On("Set", ctx, key, value)}
}

func (_c *MockKeyValueStore_Set_Call) Run(run func(ctx context.Context, key string, value []byte)) *MockKeyValueStore_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].([]byte))
	})
	return _c
}

func (_c *MockKeyValueStore_Set_Call) Return(_a0 error) *MockKeyValueStore_Set_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockKeyValueStore_Set_Call) RunAndReturn(run func(context.Context, string, []byte) error) *MockKeyValueStore_Set_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockKeyValueStore creates a new instance of MockKeyValueStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockKeyValueStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockKeyValueStore {
	m := &MockKeyValueStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
