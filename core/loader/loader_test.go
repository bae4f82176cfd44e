package loader_test

import (
	"errors"
	"testing"

	"item-bias/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := new(mockFeature)
	enabled.On("Name").Return("generation")
	enabled.On("IsEnabled").Return(true)
	enabled.On("Load", app).Return(nil)

	disabled := new(mockFeature)
	disabled.On("IsEnabled").Return(false)

	mgr := loader.NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	loaded, err := mgr.LoadAll(app)
	assert.NoError(t, err)
	assert.Equal(t, []string{"generation"}, loaded)
	enabled.AssertExpectations(t)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAll_Error(t *testing.T) {
	app := fiber.New()

	broken := new(mockFeature)
	broken.On("Name").Return("broken")
	broken.On("IsEnabled").Return(true)
	broken.On("Load", app).Return(errors.New("boom"))

	mgr := loader.NewManager()
	mgr.Register(broken)

	loaded, err := mgr.LoadAll(app)
	assert.ErrorContains(t, err, "load feature broken: boom")
	assert.Empty(t, loaded)
}
