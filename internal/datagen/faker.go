//-------------------------------------------------------------------------
//
// pgEdge Agriculture Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides the random source and batch helpers used to
// synthesize agriculture data.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the random capability the record generator draws from.
// Both ranges are half-open: [min, max).
type Source interface {
	IntN(min, max int) int
	Float64(min, max float64) float64
}

// Faker provides random values using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
// A zero seed falls back to a time-based seed.
func NewFakerWithSeed(seed uint64) *Faker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Faker{
		faker: gofakeit.New(seed),
		seed:  seed,
	}
}

// Seed returns the seed the Faker was built with.
func (f *Faker) Seed() uint64 {
	return f.seed
}

// IntN generates a random integer in [min, max).
func (f *Faker) IntN(min, max int) int {
	if max <= min {
		return min
	}
	return f.faker.IntRange(min, max-1)
}

// Float64 generates a random float64 in [min, max).
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}
