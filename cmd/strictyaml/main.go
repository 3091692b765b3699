// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
