package services

import "errors"

// ErrPersistence marks database read/write failures. Handlers map it
// to 500, keeping it distinct from validation rejections which answer
// 400.
var ErrPersistence = errors.New("storage failure")
