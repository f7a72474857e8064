/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package awair

import "errors"

var (
	// ErrDeviceUnavailable covers every failed device request: transport
	// errors, timeouts, non-2xx statuses and unparsable bodies.
	ErrDeviceUnavailable = errors.New("awair device unavailable")
	// ErrMissingField is returned when a device response lacks a field the
	// pipeline depends on.
	ErrMissingField = errors.New("required field missing")
	// ErrNotNumeric is returned when a numeric field holds a string.
	ErrNotNumeric = errors.New("field is not numeric")
)
