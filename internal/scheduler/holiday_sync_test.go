package scheduler

import (
	"testing"
	"time"

	"github.com/mesafacil/pricing-api/infrastructure/repository/mocks"
	"github.com/mesafacil/pricing-api/internal/config"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/internal/usecases/pricing"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		HolidaySync: config.HolidaySync{
			CronSchedule: "0 5 * * *",
			Enabled:      false,
		},
	}
}

func TestHolidaySyncService_SyncNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomHolidayRepository(ctrl)
	calendar := pricing.NewCalendar(mockRepo)
	service := NewHolidaySyncService(calendar, testConfig())

	custom := &domain.Holiday{
		Date:   time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
		Name:   "Festival Gastronômico",
		Type:   domain.HolidayCustom,
		Impact: 1.3,
	}

	mockRepo.EXPECT().ListActive().Return([]*domain.Holiday{custom}, nil)

	require.NoError(t, service.SyncNow())

	// O calendário passa a conhecer o feriado customizado
	holiday := calendar.Resolve(custom.Date)
	require.NotNil(t, holiday)
	assert.Equal(t, "Festival Gastronômico", holiday.Name)

	status := service.Status()
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, false, status["running"])
	assert.NotEmpty(t, status["last_sync_started_at"])
	assert.NotEmpty(t, status["last_sync_completed_at"])
	assert.NotContains(t, status, "last_sync_error")
}

func TestHolidaySyncService_SyncNow_FalhaRegistradaNoStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomHolidayRepository(ctrl)
	calendar := pricing.NewCalendar(mockRepo)
	service := NewHolidaySyncService(calendar, testConfig())

	mockRepo.EXPECT().ListActive().Return(nil, errors.New("conexão recusada"))

	assert.Error(t, service.SyncNow())

	status := service.Status()
	assert.Equal(t, "conexão recusada", status["last_sync_error"])
}
