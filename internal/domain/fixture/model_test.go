package fixture

import (
	"errors"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "", want: StatusScheduled},
		{in: "scheduled", want: StatusScheduled},
		{in: "Programado", want: StatusScheduled},
		{in: "FT", want: StatusFinished},
		{in: "Finalizado", want: StatusFinished},
		{in: "en curso", want: StatusInProgress},
		{in: "POSTPONED", want: StatusSuspended},
		{in: "abandoned-ish", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseStatus(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownStatus) {
				t.Fatalf("ParseStatus(%q): expected ErrUnknownStatus, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseStatus(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMatch_CheckScore(t *testing.T) {
	tests := []struct {
		name    string
		match   Match
		wantErr bool
	}{
		{name: "scheduled without score", match: Match{Status: StatusScheduled}},
		{name: "finished with score", match: Match{Status: StatusFinished, HomeGoals: intPtr(1), AwayGoals: intPtr(0)}},
		{name: "suspended without score", match: Match{Status: StatusSuspended}},
		{name: "finished without score", match: Match{Status: StatusFinished}, wantErr: true},
		{name: "finished half score", match: Match{Status: StatusFinished, HomeGoals: intPtr(1)}, wantErr: true},
		{name: "scheduled with score", match: Match{Status: StatusScheduled, HomeGoals: intPtr(0), AwayGoals: intPtr(0)}, wantErr: true},
		{name: "negative goals", match: Match{Status: StatusFinished, HomeGoals: intPtr(-1), AwayGoals: intPtr(0)}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.match.CheckScore()
			if tc.wantErr && !errors.Is(err, ErrInconsistentScore) {
				t.Fatalf("expected ErrInconsistentScore, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMatch_KickoffAt(t *testing.T) {
	m := Match{Date: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), Time: "15:00"}
	got := m.KickoffAt(time.UTC)
	want := time.Date(2025, 3, 7, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("KickoffAt = %s, want %s", got, want)
	}

	m.Time = "bad"
	if got := m.KickoffAt(nil); !got.Equal(m.Date) {
		t.Fatalf("expected midnight fallback, got %s", got)
	}
}
