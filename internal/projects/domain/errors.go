package domain

import "errors"

var (
	ErrNotFound     = errors.New("project not found")
	ErrInvalidStage = errors.New("operation not valid for current project stage")
	ErrEmptyPrompt  = errors.New("prompt is required")
	ErrEmptyText    = errors.New("feedback text is required")
)
