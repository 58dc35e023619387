/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/rxapi/bind/mode"
)

const (
	// DefaultMode represents the default for Mode.
	// Auto lets each bind path pick the reference mode that suits its
	// placement: weak for owner-cached views, strong for store-backed ones.
	DefaultMode = mode.Auto
	// DefaultAutoCache represents the default for AutoCache.
	// When true, computed views are cached directly on capable owners.
	DefaultAutoCache = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Mode:      DefaultMode,
		AutoCache: DefaultAutoCache,
	}
}

// Apply returns cfg with the given options applied, leaving cfg itself
// untouched. It is used to derive per-table configs from shared defaults.
func Apply(cfg apis.Config, opts ...Option) apis.Config {
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithName sets the table's display name, used in diagnostics and warnings.
func WithName(name string) Option {
	return func(c *apis.Config) {
		c.Name = name
	}
}

// WithMode sets the owner reference mode for views produced by the table.
func WithMode(m mode.ReferenceMode) Option {
	return func(c *apis.Config) {
		c.Mode = m
	}
}

// WithAutoCache sets whether computed views are cached directly on
// capable owners.
func WithAutoCache(cache bool) Option {
	return func(c *apis.Config) {
		c.AutoCache = cache
	}
}
