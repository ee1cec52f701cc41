// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

// Package validation validates API request bodies using go-playground/validator v10.
//
// The package keeps one validator instance for the process (it caches struct
// metadata) and translates field errors into the VALIDATION_ERROR API error.
// Field names come from json tags, so a bad parameters body reports
// "timeCategory must be one of: Breakfast Lunch Dinner Other" rather than the
// Go field name.
//
// # Custom Validators
//
//   - tagname: a dietary restriction name that is not blank and contains no
//     commas, brackets or quotes, so it survives the catalog's list formats
//
// # Usage
//
//	var req models.FoodParameters
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr
//	}
package validation
