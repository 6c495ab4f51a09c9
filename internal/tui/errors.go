// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/subfinder-client/internal/adapter"
)

const msgServerUnavailable = "Отсутствует сеть или сервер недоступен"

// describeError turns a failed call into a one-line message for the page
// status area. The notification itself is emitted by the job service.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	if isServerUnavailable(err) {
		return msgServerUnavailable
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}

	return err.Error()
}

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
