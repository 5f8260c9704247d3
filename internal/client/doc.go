// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It reads carrier images from disk, runs them through a
// [service.StegoService] (in-process or a remote server adapter) and writes
// the resulting PNG or revealed message back out.
package client
