// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/subfinder-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, apiBaseURL string) string {
	var b strings.Builder

	b.WriteString("Название приложения: Subfinder Client\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("API: ")
	b.WriteString(valueOrNA(apiBaseURL))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", overlayBoxStyle.Render(b.String()), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
