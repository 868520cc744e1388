// Package captcha generates the arithmetic challenge shown on the admin
// login form. It is deliberately weak: a friction mechanism against casual
// form stuffing, not an anti-automation control.
package captcha

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Challenge is a single-digit addition or subtraction question together with
// its expected answer. It lives only for the duration of one form render.
type Challenge struct {
	Question string
	Answer   string
}

// New picks two operands in 1..9 and either + or -.
func New() Challenge {
	a := rand.IntN(9) + 1
	b := rand.IntN(9) + 1

	op := "+"
	answer := a + b
	if rand.IntN(2) == 1 {
		op = "-"
		answer = a - b
	}

	return Challenge{
		Question: fmt.Sprintf("%d %s %d = ?", a, op, b),
		Answer:   strconv.Itoa(answer),
	}
}

// Verify compares the user's input against expected using a trimmed string
// comparison, mirroring how the form field is filled.
func Verify(input, expected string) bool {
	return strings.TrimSpace(input) == expected
}
