// Copyright 2026 The McParse Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shape

// Opt matches a, or nothing: Opt(a) = Choice(a, Empty()).
func Opt(a Shape) Shape {
	return Choice{Shapes: []Shape{a, Empty{}}}
}

// Separated matches one or more item, separated by sep:
// Separated(item, sep) = Seq(item, Rep(Seq(sep, item))).
func Separated(item, sep Shape) Shape {
	return Seq{Shapes: []Shape{item, Rep{Shape: Seq{Shapes: []Shape{sep, item}}}}}
}

// Joined matches one or more a with no intervening whitespace between
// occurrences: Joined(a) = Seq(a, Rep(Adjacent(Empty(), a))).
func Joined(a Shape) Shape {
	return Seq{Shapes: []Shape{a, Rep{Shape: Adjacent{A: Empty{}, B: a}}}}
}
