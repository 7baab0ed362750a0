// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package stepper

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepperWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	s := Start(&buf, "Installing %d packages", 3)
	s.Display("still going")
	assert.Empty(t, buf.String())

	s.Success("Installed %d packages", 3)
	assert.Contains(t, buf.String(), "Installed 3 packages\n")
}

func TestStepperFail(t *testing.T) {
	var buf bytes.Buffer
	Start(&buf, "Generating").Fail("generation failed")
	assert.Contains(t, buf.String(), "generation failed")
}
