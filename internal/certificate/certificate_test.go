package certificate

import (
	"regexp"
	"testing"
)

func TestCleanTopic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Robotics 13 to 18", "Robotics"},
		{"AI", "AI"},
		{"Sustainable Cities 8 to 12", "Sustainable Cities"},
		{"Robotics 13 to 18 Finals", "Robotics 13 to 18 Finals"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanTopic(c.in); got != c.want {
			t.Errorf("CleanTopic(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanTopicIdempotent(t *testing.T) {
	inputs := []string{"Robotics 13 to 18", "AI", "Space Tech 9 to 14", "plain topic"}
	for _, in := range inputs {
		once := CleanTopic(in)
		if twice := CleanTopic(once); twice != once {
			t.Errorf("CleanTopic not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNewSessionAuthCode(t *testing.T) {
	pattern := regexp.MustCompile(`^SEC\d{8}$`)
	for i := 0; i < 100; i++ {
		code := NewSessionAuthCode()
		if !pattern.MatchString(code) {
			t.Fatalf("auth code %q does not match SEC + 8 digits", code)
		}
	}
}

func TestMockRankBands(t *testing.T) {
	cases := []struct {
		marks    float64
		min, max int
	}{
		{100, 100, 999},
		{80, 100, 999},
		{79, 1000, 9999},
		{55, 1000, 9999},
		{54, 10000, 99999},
		{25, 10000, 99999},
		{24, 100000, 999999},
		{0, 100000, 999999},
	}
	for _, c := range cases {
		for i := 0; i < 50; i++ {
			rank, err := MockRank(c.marks)
			if err != nil {
				t.Fatalf("MockRank(%v) error: %v", c.marks, err)
			}
			if rank < c.min || rank > c.max {
				t.Fatalf("MockRank(%v) = %d, want within [%d,%d]", c.marks, rank, c.min, c.max)
			}
		}
	}
}

func TestMockRankOutOfRange(t *testing.T) {
	for _, marks := range []float64{-1, 101, 250} {
		if _, err := MockRank(marks); err == nil {
			t.Fatalf("MockRank(%v) accepted out-of-band marks", marks)
		}
	}
}
