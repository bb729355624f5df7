package handler

//go:generate mockgen -source=calculator.go -destination=calculator_mock.go -package=handler

import (
	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
)

// Calculator is the part of attendance.Calculator the handlers depend on.
type Calculator interface {
	Calculate(arrivalTimeStr, breakTimeSpentStr string) (*attendance.Result, error)
	Policy() config.Policy
}
