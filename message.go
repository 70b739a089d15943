package ftracker

import "fmt"

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Format renders a training summary in the fixed report layout
func Format(name string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf(messageFormat, name, duration, distance, speed, calories)
}

// Message returns the human readable report for the training
func (m InfoMessage) Message() string {
	return Format(m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
