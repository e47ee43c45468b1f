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

// Package eval implements the mutually recursive eval/apply core of
// spec §4.4 and the lambda/macro invocation protocol of §4.5, along
// with the special forms (quote, backquote/unquote/splice, define,
// define-global, lambda, macro, begin, if, or, and) that the evaluator
// dispatches on via a per-binding SpecialForm flag rather than a
// hardcoded table.
//
// An Interp ties together an Arena, a root environment and a Tracer; it implements value.Evaluator so that primitives registered
// from package primitives can call back into Eval/Apply without that
// package depending on this one directly for the interface shape.
package eval
