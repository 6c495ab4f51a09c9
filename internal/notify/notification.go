// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify holds the in-process notification center used to surface
// API failures to the user.
package notify

//go:generate mockgen -source=notification.go -destination=../mock/notifier_mock.go -package=mock

import "time"

// Color is the visual severity of a notification.
type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
)

// Notification is a short-lived message shown to the user.
type Notification struct {
	// ID is assigned by the notifier on Add.
	ID          string
	Title       string
	Description string
	Color       Color
	// Icon is a presentation hint, e.g. "i-lucide-alert-circle".
	Icon string
	// Timeout is the auto-dismiss delay. Zero keeps the notification until
	// it is removed explicitly.
	Timeout   time.Duration
	CreatedAt time.Time
}

// Notifier accepts notifications for display.
type Notifier interface {
	// Add registers n and returns it with ID and CreatedAt filled in.
	Add(n Notification) Notification
}
