package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentNumberFormat(t *testing.T) {
	number := documentNumber(salePrefix)

	pattern := regexp.MustCompile(`^POS\d{6}[0-9A-F]{6}$`)
	assert.Regexp(t, pattern, number)
	assert.Contains(t, number, time.Now().Format("060102"))
}

func TestDocumentNumberUniqueEnough(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := documentNumber(purchasePrefix)
		assert.False(t, seen[number], "duplicate number %s", number)
		seen[number] = true
	}
}

func TestAutoBarcode(t *testing.T) {
	pattern := regexp.MustCompile(`^AUTO-[0-9A-F]{8}$`)
	assert.Regexp(t, pattern, autoBarcode())
	assert.NotEqual(t, autoBarcode(), autoBarcode())
}
