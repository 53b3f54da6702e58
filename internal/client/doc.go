// SPDX-License-Identifier: Apache-2.0

// Package client implements the headless client application runtime.
//
// It wires the remote vault adapter, the local draft mirror, the crypto
// core services, and background jobs into a single session lifecycle that
// an embedding UI can drive programmatically.
package client
