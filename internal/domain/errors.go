package domain

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrEmptyPlan      = errors.New("plan is required")
	ErrIdeaOutOfRange = errors.New("idea index out of range")
)
