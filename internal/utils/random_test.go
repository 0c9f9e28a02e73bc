package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(16)
	assert.Len(t, password, 16)
}

func TestGenerateRandomSubset(t *testing.T) {
	arr := []int32{1, 2, 3, 4, 5}
	subset := GenerateRandomSubset(arr)

	assert.NotEmpty(t, subset)
	assert.LessOrEqual(t, len(subset), len(arr))

	seen := map[int32]bool{}
	for _, v := range subset {
		assert.False(t, seen[v], "subset must not contain duplicates")
		seen[v] = true
		assert.Contains(t, arr, v)
	}
}
