package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoAdapter             = errors.New("subfinder adapter is not provided")
	ErrNoNotifier            = errors.New("notifier is not provided")
)
