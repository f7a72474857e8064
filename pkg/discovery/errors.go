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

package discovery

import "errors"

var (
	// ErrScanToolMissing is returned when arp-scan is not installed or exits with an error.
	ErrScanToolMissing = errors.New("arp-scan failed to run, please install arp-scan")
	// ErrIPNotFound is returned when the requested IP does not answer as an Awair device.
	ErrIPNotFound = errors.New("no Awair device found at IP")
	// ErrMACNotFound is returned when no verified device carries the requested MAC.
	ErrMACNotFound = errors.New("no Awair device found with MAC")
)
