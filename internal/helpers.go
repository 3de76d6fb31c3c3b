package internal

import (
	"fmt"
	"time"
)

const (
	formatDDMMYYYYHHMM = "02.01.2006 15:04"
)

func Format(date time.Time) string {
	return date.Format(formatDDMMYYYYHHMM)
}

// ShortAddress renders a wallet address as 0x1234…abcd.
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return fmt.Sprintf("%s…%s", address[:6], address[len(address)-4:])
}
