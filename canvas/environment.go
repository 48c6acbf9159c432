// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"log/slog"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/text"
)

// Environment holds the state shared by every canvas of a process: the
// font collection, the shaper pool and the logger. Create one at startup
// and pass it to New.
type Environment struct {
	fonts  *text.Collection
	shaper *text.Shaper
	log    *slog.Logger
}

// EnvironmentOption configures an Environment.
type EnvironmentOption func(*Environment)

// WithFonts sets the font collection. The default is
// text.DefaultCollection.
func WithFonts(c *text.Collection) EnvironmentOption {
	return func(e *Environment) {
		if c != nil {
			e.fonts = c
		}
	}
}

// WithLanguage selects the shaping language as a BCP 47 tag.
func WithLanguage(lang string) EnvironmentOption {
	return func(e *Environment) {
		e.shaper = text.NewShaper(lang)
	}
}

// WithLogger sets the logger for skipped draws. Nil selects gfx.Logger.
func WithLogger(l *slog.Logger) EnvironmentOption {
	return func(e *Environment) {
		e.log = l
	}
}

// NewEnvironment creates an environment.
func NewEnvironment(opts ...EnvironmentOption) *Environment {
	e := &Environment{}
	for _, opt := range opts {
		opt(e)
	}
	if e.fonts == nil {
		e.fonts = text.DefaultCollection()
	}
	if e.shaper == nil {
		e.shaper = text.NewShaper("")
	}
	return e
}

// Fonts returns the font collection.
func (e *Environment) Fonts() *text.Collection { return e.fonts }

// Logger returns the environment logger.
func (e *Environment) Logger() *slog.Logger { return gfx.LoggerOr(e.log) }

// NewFormat creates a text format that resolves fonts from the
// environment and shapes with its shaper.
func (e *Environment) NewFormat(opts ...text.FormatOption) *text.Format {
	return text.NewFormat(e.fonts, append([]text.FormatOption{text.WithShaper(e.shaper)}, opts...)...)
}
