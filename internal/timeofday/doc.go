// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package timeofday maps availability text and the wall clock to meal periods.

Two entry points are provided:

  - Thresholds.Current(hour): a fixed, configurable table of non-overlapping
    hour ranges. Hours outside every range are Other.
  - Categorizer.Categorize(text): ordered text rules for catalog availability
    strings such as "HALAL CART- AVAILABLE 2PM-10PM".

Categorize evaluates its rules strictly in order. Every keyword is tried
before any hour mention, so "Dinner special from 11am" is Dinner even though
11am is a lunch hour.

The clock is injectable through WithClock so that the all-day and explicit
range rules, which depend on the current hour, are deterministic in tests.
*/
package timeofday
