package domain

import "errors"

var (
	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotConfirmed blocks login until the confirmation link was followed.
	ErrEmailNotConfirmed = errors.New("email is not confirmed")

	// ErrUnauthenticated is the single outward-facing failure for any bad,
	// expired or wrong-scope bearer token.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrVerificationFailed is returned when an email-confirmation token does
	// not resolve to a known user.
	ErrVerificationFailed = errors.New("verification error")
)
