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

package trace_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/sl/internal/env"
	"github.com/db47h/sl/internal/trace"
	"github.com/db47h/sl/internal/value"
)

func setup() (*value.Arena, *env.Frame, *trace.Tracer) {
	a := value.NewArena(64, 64)
	root := env.New(nil)
	tr := trace.New(a, root)
	return a, root, tr
}

func TestIsTracedEmptyList(t *testing.T) {
	_, _, tr := setup()
	fn := value_placeholder()
	assert.False(t, tr.IsTraced(fn))
}

func value_placeholder() value.Value {
	a := value.NewArena(8, 8)
	return a.NewSymbol("f")
}

func TestIsTracedMember(t *testing.T) {
	a, root, tr := setup()
	f := a.NewSymbol("f")
	root.BindGlobal(trace.TraceSymbol, a.FromSlice([]value.Value{f}), 0)
	assert.True(t, tr.IsTraced(a.NewSymbol("f")))
	assert.False(t, tr.IsTraced(a.NewSymbol("g")))
}

func TestPrePostDepth(t *testing.T) {
	a, _, tr := setup()
	var buf bytes.Buffer
	fn := a.NewSymbol("f")
	args := a.FromSlice([]value.Value{a.NewInt(1)})
	tr.PrintPre(&buf, fn, args)
	require.Contains(t, buf.String(), "(f 1)")
	buf.Reset()
	tr.PrintPost(&buf, a.NewInt(2))
	assert.Contains(t, buf.String(), "2")
}

func TestCallstackPushPop(t *testing.T) {
	_, _, tr := setup()
	e1 := value_placeholder()
	tr.Push(e1)
	assert.Equal(t, 1, tr.Depth())
	tr.Pop()
	assert.Equal(t, 0, tr.Depth())
}
