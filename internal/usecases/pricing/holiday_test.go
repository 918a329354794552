package pricing

import (
	"testing"
	"time"

	"github.com/mesafacil/pricing-api/infrastructure/repository/mocks"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendar_Resolve_CalendarioEmbutido(t *testing.T) {
	calendar := NewCalendar(nil)

	tests := []struct {
		name     string
		date     time.Time
		expected string
		romantic bool
	}{
		{
			name:     "Dia dos Namorados",
			date:     day(2026, time.June, 12),
			expected: "Dia dos Namorados",
			romantic: true,
		},
		{
			name:     "Valentine's Day",
			date:     day(2026, time.February, 14),
			expected: "Valentine's Day",
			romantic: true,
		},
		{
			name:     "Réveillon",
			date:     day(2026, time.December, 31),
			expected: "Réveillon",
		},
		{
			name:     "Dia das Mães é o segundo domingo de maio",
			date:     day(2026, time.May, 10),
			expected: "Dia das Mães",
		},
		{
			name:     "Dia dos Pais é o segundo domingo de agosto",
			date:     day(2026, time.August, 9),
			expected: "Dia dos Pais",
		},
		{
			name:     "Páscoa pelo algoritmo de Gauss",
			date:     day(2026, time.April, 5),
			expected: "Páscoa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holiday := calendar.Resolve(tt.date)

			require.NotNil(t, holiday)
			assert.Equal(t, tt.expected, holiday.Name)
			assert.Equal(t, tt.romantic, holiday.Romantic)
			assert.Greater(t, holiday.Impact, 1.0)
		})
	}
}

func TestCalendar_Resolve_DiaComum(t *testing.T) {
	calendar := NewCalendar(nil)

	assert.Nil(t, calendar.Resolve(day(2026, time.March, 3)))
	assert.Nil(t, calendar.Resolve(day(2026, time.September, 16)))
}

func TestCalendar_Resolve_PrimeiroDomingoNaoEDiaDasMaes(t *testing.T) {
	calendar := NewCalendar(nil)

	// Maio de 2026: primeiro domingo cai no dia 3
	assert.Nil(t, calendar.Resolve(day(2026, time.May, 3)))
}

func TestCalendar_Refresh_CustomizadosTemPrecedencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomHolidayRepository(ctrl)
	calendar := NewCalendar(mockRepo)

	custom := &domain.Holiday{
		Date:   day(2026, time.June, 12),
		Name:   "Aniversário da Casa",
		Type:   domain.HolidayCustom,
		Impact: 1.2,
	}

	mockRepo.EXPECT().ListActive().Return([]*domain.Holiday{custom}, nil)

	require.NoError(t, calendar.Refresh())

	holiday := calendar.Resolve(day(2026, time.June, 12))
	require.NotNil(t, holiday)
	assert.Equal(t, "Aniversário da Casa", holiday.Name)
	assert.Equal(t, domain.HolidayCustom, holiday.Type)
}

func TestCalendar_Refresh_FalhaMantemCacheAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomHolidayRepository(ctrl)
	calendar := NewCalendar(mockRepo)

	custom := &domain.Holiday{
		Date:   day(2026, time.October, 10),
		Name:   "Festival Gastronômico",
		Type:   domain.HolidayCustom,
		Impact: 1.3,
	}

	mockRepo.EXPECT().ListActive().Return([]*domain.Holiday{custom}, nil)
	require.NoError(t, calendar.Refresh())

	mockRepo.EXPECT().ListActive().Return(nil, errors.New("conexão recusada"))
	assert.Error(t, calendar.Refresh())

	// O cache carregado antes da falha continua valendo
	holiday := calendar.Resolve(day(2026, time.October, 10))
	require.NotNil(t, holiday)
	assert.Equal(t, "Festival Gastronômico", holiday.Name)
}
