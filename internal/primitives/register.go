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

package primitives

import "github.com/db47h/sl/internal/value"

// Register binds every primitive family into root. Special forms
// (quote, lambda, if, ...) are registered separately by
// eval.NewInterp; this covers the rest of the catalogue.
func Register(root value.Env, a *value.Arena) {
	RegisterGeneral(root, a)
	RegisterLogic(root, a)
	RegisterTypes(root, a)
	RegisterList(root, a)
	RegisterString(root, a)
	RegisterArith(root, a)
	RegisterBitwise(root, a)
	RegisterIO(root, a)
}
