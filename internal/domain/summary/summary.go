// Package summary renders derived workout statistics into the human-readable
// report line.
package summary

import (
	"fmt"

	"github.com/okian/fittrack/internal/domain/training"
)

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage holds the values shown to the user for one workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// FromCalculator computes every statistic of c once and labels it with the
// discipline name.
func FromCalculator(c training.Calculator) InfoMessage {
	return InfoMessage{
		TrainingType: c.Kind().String(),
		Duration:     c.Duration(),
		Distance:     c.Distance(),
		Speed:        c.MeanSpeed(),
		Calories:     c.SpentCalories(),
	}
}

// Message renders the report line; numbers are fixed-point with three decimals.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// String implements fmt.Stringer.
func (m InfoMessage) String() string { return m.Message() }
