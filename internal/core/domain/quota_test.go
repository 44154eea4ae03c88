package domain_test

import (
	"testing"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRemainingBalance(t *testing.T) {
	testCases := []struct {
		name     string
		approved int
		used     int
		revoked  int
		expected int
	}{
		{name: "untouched permit", approved: 10, used: 0, revoked: 0, expected: 10},
		{name: "partially consumed", approved: 10, used: 4, revoked: 0, expected: 6},
		{name: "consumed and revoked", approved: 10, used: 4, revoked: 3, expected: 3},
		{name: "fully consumed", approved: 10, used: 10, revoked: 0, expected: 0},
		{name: "overconsumed clamps to zero", approved: 10, used: 12, revoked: 0, expected: 0},
		{name: "revocation past approval clamps to zero", approved: 5, used: 2, revoked: 4, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.RemainingBalance(tc.approved, tc.used, tc.revoked))
		})
	}
}

func TestQuotaStatus(t *testing.T) {
	assert.Equal(t, domain.PermitAvailable, domain.QuotaStatus(1))
	assert.Equal(t, domain.PermitExhausted, domain.QuotaStatus(0))
}
