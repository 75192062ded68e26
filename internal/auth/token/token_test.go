package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("super-secret", 15*time.Minute, 168*time.Hour, 168*time.Hour)
}

func TestIssueAndDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestService()

	for _, scope := range []Scope{ScopeAccess, ScopeRefresh, ScopeEmail} {
		tok, err := s.Issue("alice@x.com", time.Hour, scope)
		require.NoError(t, err)

		subject, err := s.Decode(tok, scope)
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", subject)
	}
}

func TestDecode_ScopeMismatch(t *testing.T) {
	t.Parallel()

	s := newTestService()
	scopes := []Scope{ScopeAccess, ScopeRefresh, ScopeEmail}

	for _, issued := range scopes {
		tok, err := s.Issue("alice@x.com", time.Hour, issued)
		require.NoError(t, err)

		for _, expected := range scopes {
			if issued == expected {
				continue
			}
			_, err := s.Decode(tok, expected)
			assert.ErrorIs(t, err, ErrScopeMismatch, "issued %s, expected %s", issued, expected)
		}
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	s := newTestService()

	tok, err := s.Issue("alice@x.com", -1*time.Second, ScopeAccess)
	require.NoError(t, err)

	_, err = s.Decode(tok, ScopeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	s := newTestService()
	other := NewService("other-secret", 15*time.Minute, 168*time.Hour, 168*time.Hour)

	tok, err := s.IssueAccess("alice@x.com")
	require.NoError(t, err)

	_, err = other.Decode(tok, ScopeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	s := newTestService()

	_, err := s.Decode("not.a.jwt", ScopeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestConvenienceIssuers_CarryTheirScope(t *testing.T) {
	t.Parallel()

	s := newTestService()

	access, err := s.IssueAccess("a@x.com")
	require.NoError(t, err)
	refresh, err := s.IssueRefresh("a@x.com")
	require.NoError(t, err)
	email, err := s.IssueEmail("a@x.com")
	require.NoError(t, err)

	_, err = s.Decode(access, ScopeAccess)
	assert.NoError(t, err)
	_, err = s.Decode(refresh, ScopeRefresh)
	assert.NoError(t, err)
	_, err = s.Decode(email, ScopeEmail)
	assert.NoError(t, err)
}
