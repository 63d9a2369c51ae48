package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	salePrefix     = "POS"
	purchasePrefix = "PO"
)

// documentNumber builds nomor nota/faktur: prefix + yymmdd + 6 hex dari
// UUID baru. Index unik di kolom number menangkap tabrakan yang tersisa.
func documentNumber(prefix string) string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s%s%s", prefix, time.Now().Format("060102"), entropy)
}

// autoBarcode labels products provisioned on the fly during a purchase.
func autoBarcode() string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return "AUTO-" + entropy
}
