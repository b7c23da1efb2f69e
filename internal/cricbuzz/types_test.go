package cricbuzz

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNumUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`42`, 42},
		{`42.5`, 42.5},
		{`"42.5"`, 42.5},
		{`""`, 0},
		{`null`, 0},
		{`"not a number"`, 0},
	}
	for _, tt := range tests {
		var n Num
		if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if float64(n) != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, float64(n), tt.want)
		}
	}
}

func TestIntUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{`7`, 7},
		{`"7"`, 7},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tt := range tests {
		var i Int
		if err := json.Unmarshal([]byte(tt.in), &i); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if int64(i) != tt.want {
			t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, int64(i), tt.want)
		}
	}
}

func TestEpochMillisUnmarshal(t *testing.T) {
	var e EpochMillis
	if err := json.Unmarshal([]byte(`"1700000000000"`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := time.UnixMilli(1700000000000).UTC()
	if !e.Time.Equal(want) {
		t.Errorf("got %v, want %v", e.Time, want)
	}

	var zero EpochMillis
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("Unmarshal empty: %v", err)
	}
	if !zero.Time.IsZero() {
		t.Errorf("empty string decoded to %v, want zero time", zero.Time)
	}
}

func TestBatsmanDecodeMixedScalars(t *testing.T) {
	payload := `{
		"name": "R Sharma",
		"runs": "56",
		"balls": 41,
		"fours": "6",
		"sixes": 2,
		"strkrate": "136.59",
		"outdec": "c Smith b Starc"
	}`
	var b Batsman
	if err := json.Unmarshal([]byte(payload), &b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if b.Name != "R Sharma" || int(b.Runs) != 56 || int(b.Balls) != 41 {
		t.Errorf("decoded %+v", b)
	}
	if float64(b.StrikeRate) != 136.59 {
		t.Errorf("strike rate = %v", float64(b.StrikeRate))
	}
	if b.Dismissal != "c Smith b Starc" {
		t.Errorf("dismissal = %q", b.Dismissal)
	}
}
