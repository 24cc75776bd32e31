package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

func TestJournalType_FormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		width    int
		sequence int64
		want     string
	}{
		{"zero padded", "GJ-", 6, 1, "GJ-000001"},
		{"larger sequence", "GJ-", 6, 12345, "GJ-012345"},
		{"sequence wider than pad", "GJ-", 4, 123456, "GJ-123456"},
		{"no prefix", "", 5, 7, "00007"},
		{"sales invoice style", "INV-2026-", 4, 42, "INV-2026-0042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jt := domain.JournalType{NumberPrefix: tt.prefix, NumberWidth: tt.width}
			assert.Equal(t, tt.want, jt.FormatNumber(tt.sequence))
		})
	}
}
