// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/sl/internal/env"
	"github.com/db47h/sl/internal/value"
)

func TestBindAndGet(t *testing.T) {
	a := value.NewArena(64, 64)
	root := env.New(nil)
	root.Bind("x", a.NewInt(1), 0)
	v, ok := root.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Item.Num)
}

func TestChildShadowsParent(t *testing.T) {
	a := value.NewArena(64, 64)
	root := env.New(nil)
	root.Bind("x", a.NewInt(1), 0)
	child := env.New(root)
	child.Bind("x", a.NewInt(2), 0)

	v, _ := child.Get("x")
	assert.Equal(t, int64(2), v.Item.Num)
	v, _ = root.Get("x")
	assert.Equal(t, int64(1), v.Item.Num, "shadowing a parent binding must not overwrite it")
}

func TestConstRefusesOverwrite(t *testing.T) {
	a := value.NewArena(64, 64)
	f := env.New(nil)
	f.Bind("x", a.NewInt(1), value.Const)
	ok := f.Bind("x", a.NewInt(2), 0)
	assert.False(t, ok)
	v, _ := f.Get("x")
	assert.Equal(t, int64(1), v.Item.Num)
}

func TestBindGlobalWalksToRoot(t *testing.T) {
	a := value.NewArena(64, 64)
	root := env.New(nil)
	child := env.New(root)
	child.BindGlobal("g", a.NewInt(9), 0)

	_, okChild := root.Get("g")
	require.True(t, okChild)
	// bound in root's own bindings, not merely visible through parent
	v, ok := rootOwnGet(root, "g")
	require.True(t, ok)
	assert.Equal(t, int64(9), v.Item.Num)
}

func rootOwnGet(f *env.Frame, name string) (value.Value, bool) {
	for _, n := range f.Names() {
		if n == name {
			v, ok := f.Get(name)
			return v, ok
		}
	}
	return nil, false
}

func TestSetRebindsWhereverBound(t *testing.T) {
	a := value.NewArena(64, 64)
	root := env.New(nil)
	root.Bind("x", a.NewInt(1), 0)
	child := env.New(root)

	ok, wasConst := child.Set("x", a.NewInt(2))
	require.True(t, ok)
	assert.False(t, wasConst)
	v, _ := root.Get("x")
	assert.Equal(t, int64(2), v.Item.Num)
}

func TestSetUnboundFails(t *testing.T) {
	f := env.New(nil)
	ok, _ := f.Set("nope", nil)
	assert.False(t, ok)
}

func TestSetRefusesConst(t *testing.T) {
	a := value.NewArena(64, 64)
	f := env.New(nil)
	f.Bind("x", a.NewInt(1), value.Const)
	ok, wasConst := f.Set("x", a.NewInt(2))
	assert.False(t, ok)
	assert.True(t, wasConst)
}

func TestSetParentRetargeting(t *testing.T) {
	a := value.NewArena(64, 64)
	captured := env.New(nil)
	captured.Bind("y", a.NewInt(1), 0)
	caller := env.New(nil)
	caller.Bind("z", a.NewInt(2), 0)

	captured.SetParent(caller)
	v, ok := captured.Get("z")
	require.True(t, ok, "after retargeting, captured frame sees caller's bindings")
	assert.Equal(t, int64(2), v.Item.Num)
}
