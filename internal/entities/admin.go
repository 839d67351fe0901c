package entities

import (
	"errors"
	"time"
)

type Admin struct {
	UserID      int64
	Username    string
	ActivatedAt time.Time
}

var (
	ErrInvalidInitData   = errors.New("invalid telegram init data")
	ErrAdminLimitReached = errors.New("admin limit reached")
)
