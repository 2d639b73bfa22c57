package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"webdev-order-api/utils"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, utils.ValidateEmail("client@example.com"))
	assert.True(t, utils.ValidateEmail("first.last+tag@sub.example.co"))

	assert.False(t, utils.ValidateEmail(""))
	assert.False(t, utils.ValidateEmail("not-an-email"))
	assert.False(t, utils.ValidateEmail("missing@tld"))
}

func TestValidatePassword(t *testing.T) {
	ok, _ := utils.ValidatePassword("longenough")
	assert.True(t, ok)

	ok, reason := utils.ValidatePassword("short")
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", utils.SanitizeInput("  hello  "))
	assert.Equal(t, "ab", utils.SanitizeInput("a\x00b"))
}

func TestParsePageParams(t *testing.T) {
	page, limit, offset := utils.ParsePageParams("3", "10")
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 20, offset)

	// Defaults
	page, limit, offset = utils.ParsePageParams("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	// Clamping
	_, limit, _ = utils.ParsePageParams("1", "9999")
	assert.Equal(t, 100, limit)

	page, _, offset = utils.ParsePageParams("-5", "abc")
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, offset)
}
