// Package filler decides how a histogram bin is updated by a fill.
//
// Bin types do not share an interface. Instead, For inspects a bin type once
// and records which of the following capabilities it has. A fill with a given
// payload then uses the first applicable rule:
//
//  1. no payload, *B implements Incrementer (or B is a built-in number): Inc
//  2. no payload, *B implements PostIncrementer: PostInc
//  3. no payload, *B implements Caller (or B is func()): Call
//  4. one payload of type T, *B implements Adder[T] (or B and the payload are
//     built-in numbers): Add
//  5. any other payload, *B implements ArgCaller: CallArgs
//
// Adder[T] can only be detected for a known T. For checks float64, int and B
// itself; other payload types are registered with RegisterAdd.
package filler
