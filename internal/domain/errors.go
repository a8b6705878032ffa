package domain

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrCourseNotFound   = errors.New("course not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrLinkNotFound     = errors.New("lesson not found or no video available")
	ErrPersistence      = errors.New("persistence failure")
)
