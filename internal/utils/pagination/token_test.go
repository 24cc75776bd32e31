package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Standard date/time values
	journalDate := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(journalDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedPrimary, decodedSecondary, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, journalDate, decodedPrimary, "Primary time should match after decode")
	assert.Equal(t, createdAt, decodedSecondary, "Secondary time should match after decode")

	// Zero time values
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroPrimary, decodedZeroSecondary, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroPrimary)
	assert.Equal(t, zeroTime, decodedZeroSecondary)

	// Current time values
	now := time.Now().UTC()
	nowToken := EncodeToken(now, now)
	decodedNowPrimary, decodedNowSecondary, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")

	// Due to potential nanosecond precision issues, use Equal instead of direct comparison
	assert.True(t, now.Equal(decodedNowPrimary))
	assert.True(t, now.Equal(decodedNowSecondary))
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // Base64 encoded timestamp without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Invalid timestamp
	invalidDateToken := "bm90YWRhdGV8MjAyMy0wNS0xNVQxNDozMDo0NS4xMjM0NTY3ODla" // "notadate|2023-05-15T14:30:45.123456789Z"
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for an unparseable timestamp")
	assert.Contains(t, err.Error(), "primary parse")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"2026-05-15T14:30:45.123456789Z", "entry-42"}

	token := EncodeMultiFieldToken(fields...)
	assert.NotEmpty(t, token)

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, fields, decoded)

	_, err = DecodeMultiFieldToken("not base64 at all!")
	assert.Error(t, err)
}

// A (timestamp, id) ledger cursor must survive the trip through the token
// with nanosecond precision intact.
func TestMultiFieldTokenTimestampCursor(t *testing.T) {
	postedAt := time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeMultiFieldToken(postedAt.Format(time.RFC3339Nano), "entry-42")

	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Len(t, fields, 2)

	parsed, err := time.Parse(time.RFC3339Nano, fields[0])
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(postedAt))
	assert.Equal(t, "entry-42", fields[1])
}
