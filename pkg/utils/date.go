package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseTimeSlot interpreta um horário "HH:MM" (24h) e retorna a hora cheia
func ParseTimeSlot(slot string) (int, error) {
	parts := strings.Split(slot, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("horário inválido: %q (esperado HH:MM)", slot)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hora inválida em %q", slot)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minuto inválido em %q", slot)
	}

	return hour, nil
}

// DaysBetween conta os dias entre duas datas, inclusivo nas duas pontas
func DaysBetween(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}
