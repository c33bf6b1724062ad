package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ID
		wantErr bool
	}{
		{name: "string", raw: `"abc-1"`, want: "abc-1"},
		{name: "integer", raw: `42`, want: "42"},
		{name: "null", raw: `null`, want: ""},
		{name: "object", raw: `{}`, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var id ID
			err := json.Unmarshal([]byte(tc.raw), &id)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, id)
		})
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     time.Time
		wantZero bool
		wantErr  bool
	}{
		{name: "rfc3339_with_millis", raw: `"2026-10-20T12:00:00.000Z"`, want: time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)},
		{name: "rfc3339_with_offset", raw: `"2026-10-20T14:00:00+02:00"`, want: time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)},
		{name: "no_zone_is_utc", raw: `"2026-10-20T12:00:00"`, want: time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)},
		{name: "space_separated", raw: `"2026-10-20 12:00:00"`, want: time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)},
		{name: "date_only", raw: `"2026-10-20"`, want: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)},
		{name: "null", raw: `null`, wantZero: true},
		{name: "empty_string", raw: `""`, wantZero: true},
		{name: "garbage", raw: `"tomorrow"`, wantErr: true},
		{name: "number", raw: `1700000000`, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var ts Timestamp
			err := json.Unmarshal([]byte(tc.raw), &ts)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.wantZero {
				require.True(t, ts.IsZero())
				return
			}
			require.True(t, tc.want.Equal(ts.Time), "want %s, got %s", tc.want, ts.Time)
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	require.JSONEq(t, `null`, string(raw))

	loc := time.FixedZone("EST", -5*3600)
	raw, err = json.Marshal(NewTimestamp(time.Date(2026, 10, 20, 7, 0, 0, 0, loc)))
	require.NoError(t, err)
	require.JSONEq(t, `"2026-10-20T12:00:00Z"`, string(raw))
}

func TestProperty_Helpers(t *testing.T) {
	p := Property{}
	require.False(t, p.HasAuction())
	require.Equal(t, PlaceholderImage, p.CoverImageURL())

	p.AuctionEndDate = TimestampPtr(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	p.Images = []Image{{ID: "1", ImageURL: "https://img/1.jpg"}, {ID: "2", ImageURL: "https://img/2.jpg"}}
	require.True(t, p.HasAuction())
	require.Equal(t, "https://img/1.jpg", p.CoverImageURL())
}

func TestNewCreateBidRequest(t *testing.T) {
	req := NewCreateBidRequest(ValidatedBid{
		Amount:    1500.5,
		StartDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":1500.5,"start_date":"2026-11-01","end_date":"2027-05-01"}`, string(raw))
}
