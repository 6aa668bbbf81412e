// Package certificate holds the pure pieces of the issuance workflows:
// competition-topic normalization, session auth-code generation and the
// banded mock-rank draw.
package certificate

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
)

// Competition topics carry a trailing age-range suffix on the registration
// form ("Robotics 13 to 18"); certificates show only the topic itself.
var ageRangeSuffix = regexp.MustCompile(` \d{1,2} to \d{1,2}$`)

// CleanTopic strips the trailing age-range suffix from a competition topic.
// A topic without the suffix is returned unchanged, so the function is
// idempotent.
func CleanTopic(topic string) string {
	return ageRangeSuffix.ReplaceAllString(topic, "")
}

// NewSessionAuthCode returns a session certificate auth code: "SEC" followed
// by eight random digits.
func NewSessionAuthCode() string {
	return fmt.Sprintf("SEC%08d", 10000000+rand.Intn(90000000))
}

// ErrMarksOutOfRange rejects mock-rank requests for marks outside 0..100.
var ErrMarksOutOfRange = errors.New("certificate: marks out of range")

// MockRank draws a pseudo-random rank from one of four disjoint bands keyed
// off the participant's mock marks. This is an engagement feature, not a
// comparison against other participants.
func MockRank(marks float64) (int, error) {
	switch {
	case marks < 0 || marks > 100:
		return 0, ErrMarksOutOfRange
	case marks >= 80:
		return 100 + rand.Intn(900), nil
	case marks >= 55:
		return 1000 + rand.Intn(9000), nil
	case marks >= 25:
		return 10000 + rand.Intn(90000), nil
	default:
		return 100000 + rand.Intn(900000), nil
	}
}
