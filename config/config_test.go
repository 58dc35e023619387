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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bharel/bdict/config"
	"github.com/bharel/bdict/rxapi/bind/mode"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	require.Equal(t, "", cfg.Name)
	require.Equal(t, mode.Auto, cfg.Mode)
	require.True(t, cfg.AutoCache)
}

func TestNewConfigOptions(t *testing.T) {
	cfg := config.NewConfig(
		config.WithName("handlers"),
		config.WithMode(mode.Strong),
		config.WithAutoCache(false),
	)

	require.Equal(t, "handlers", cfg.Name)
	require.Equal(t, mode.Strong, cfg.Mode)
	require.False(t, cfg.AutoCache)
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	base := config.DefaultConfig()

	derived := config.Apply(base, config.WithMode(mode.Weak), config.WithName("t"))

	require.Equal(t, mode.Weak, derived.Mode)
	require.Equal(t, "t", derived.Name)

	// The shared defaults must not observe per-table options.
	require.Equal(t, mode.Auto, base.Mode)
	require.Equal(t, "", base.Name)
}

func TestOptionsCompose(t *testing.T) {
	// Later options win over earlier ones.
	cfg := config.NewConfig(
		config.WithMode(mode.Weak),
		config.WithMode(mode.Strong),
	)

	require.Equal(t, mode.Strong, cfg.Mode)
}
