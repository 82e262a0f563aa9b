package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	date := NewDate(2026, time.August, 29)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, date, decoded)
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var date Date
	err := json.Unmarshal([]byte(`"29/08/2026"`), &date)
	require.Error(t, err)
}

func TestDate_ScanTimeDropsClock(t *testing.T) {
	var date Date
	require.NoError(t, date.Scan(time.Date(2026, time.August, 29, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, NewDate(2026, time.August, 29), date)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", date.String())

	_, err = ParseDate("not-a-date")
	require.Error(t, err)
}
