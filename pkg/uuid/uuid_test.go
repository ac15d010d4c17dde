// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/locallibrary/pkg/uuid"
)

func TestNew_Version7(t *testing.T) {
	id := uuid.New()

	assert.True(t, uuid.Valid(id))
	assert.Equal(t, byte('7'), id[14])
	assert.NotEqual(t, id, uuid.New())
}

func TestValid(t *testing.T) {
	assert.True(t, uuid.Valid("0190a0f2-1c2d-7abc-8def-0123456789ab"))
	assert.False(t, uuid.Valid("not-an-id"))
	assert.False(t, uuid.Valid("{0190a0f2-1c2d-7abc-8def-0123456789ab}"))
	assert.False(t, uuid.Valid(""))
}
