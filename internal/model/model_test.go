package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	assert.Len(t, a, 26)
	assert.Len(t, b, 26)
	// Sequential ids sort in generation order.
	assert.Less(t, a, b)
}

func TestParseChannel_RoundTrip(t *testing.T) {
	for _, c := range []Channel{
		ChannelAgentWorkBench, ChannelAdviserWorkBench, ChannelConnect,
		ChannelMomApp, ChannelPublicWeb, ChannelSecureWeb, ChannelBranch,
	} {
		assert.Equal(t, c, ParseChannel(string(c)))
		assert.Equal(t, c, ParseChannel(c.Display()), "display label should round-trip")
	}

	assert.Equal(t, ChannelUnknown, ParseChannel("Fax"))
	assert.Equal(t, "Public Web", ChannelPublicWeb.Display())
}

func TestParseStatuses(t *testing.T) {
	assert.Equal(t, CaseStatusInitiated, ParseCaseStatus("Initiated"))
	assert.Equal(t, CaseStatusUnknown, ParseCaseStatus("bogus"))
	assert.Equal(t, InteractionStatusClosed, ParseInteractionStatus("Closed"))
	assert.Equal(t, TransactionStatusReceived, ParseTransactionStatus("Received"))
	assert.Equal(t, "In Progress", TransactionStatusInProgress.Display())
}

func TestCaseCreateRequest_Validate(t *testing.T) {
	failures := CaseCreateRequest{}.Validate()
	require.Len(t, failures, 2)

	failures = CaseCreateRequest{Channel: ChannelPublicWeb, IdentificationNumber: "ID-1001"}.Validate()
	assert.Empty(t, failures)

	failures = CaseCreateRequest{Channel: ChannelUnknown, IdentificationNumber: "ID-1001"}.Validate()
	require.Len(t, failures, 1)
	assert.Equal(t, "Channel", failures[0].Field)
}

func TestTransactionCreateRequest_Validate(t *testing.T) {
	failures := TransactionCreateRequest{CaseID: "c1", TransactionTypeID: "t1"}.Validate()
	assert.Empty(t, failures)

	failures = TransactionCreateRequest{}.Validate()
	assert.Len(t, failures, 2)
}
