package player

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{in: "GK", want: PositionGoalkeeper},
		{in: " portero ", want: PositionGoalkeeper},
		{in: "Defensa", want: PositionDefender},
		{in: "Centrocampista", want: PositionMidfielder},
		{in: "mediocampista", want: PositionMidfielder},
		{in: "Delantero", want: PositionForward},
		{in: "forward", want: PositionForward},
		{in: "libero", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParsePosition(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParsePosition(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePosition(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestPlayer_Validate(t *testing.T) {
	valid := Player{ID: "p1", LeagueID: "l1", TeamID: "t1", Name: "Dayro Moreno", Position: PositionForward, Number: 17}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Player)
	}{
		{name: "missing id", mutate: func(p *Player) { p.ID = "" }},
		{name: "missing league", mutate: func(p *Player) { p.LeagueID = "" }},
		{name: "missing team", mutate: func(p *Player) { p.TeamID = "" }},
		{name: "missing name", mutate: func(p *Player) { p.Name = "" }},
		{name: "unknown position", mutate: func(p *Player) { p.Position = "SW" }},
		{name: "number zero", mutate: func(p *Player) { p.Number = 0 }},
		{name: "number too high", mutate: func(p *Player) { p.Number = 100 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
