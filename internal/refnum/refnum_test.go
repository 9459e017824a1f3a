package refnum

import (
	"strings"
	"testing"
	"time"

	"github.com/casedesk/case-servicing/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedGenerator(t time.Time, random int) *Generator {
	g := NewGenerator()
	g.now = func() time.Time { return t }
	g.rand = func(min, max int) int { return random }
	return g
}

func TestGenerate_Shape(t *testing.T) {
	at := time.Date(2023, 9, 14, 10, 30, 0, 0, time.UTC)
	g := fixedGenerator(at, 123)

	ref, err := g.Generate("01H9Z6G7YB2XK3VQ5F4J8T", model.ChannelPublicWeb, SegmentCustomerServicing)
	require.NoError(t, err)

	assert.Equal(t, "CSP2309141235F4J8T", ref)
	assert.True(t, strings.HasPrefix(ref, "CSP"))
	assert.True(t, strings.HasSuffix(ref, "5F4J8T"))
	assert.Len(t, ref, 2+1+6+3+6)
}

func TestGenerate_ChannelPrefixes(t *testing.T) {
	at := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	g := fixedGenerator(at, 500)

	prefixes := map[model.Channel]string{
		model.ChannelAdviserWorkBench: "CSD",
		model.ChannelAgentWorkBench:   "CST",
		model.ChannelBranch:           "CSB",
		model.ChannelConnect:          "CSC",
		model.ChannelMomApp:           "CSA",
		model.ChannelPublicWeb:        "CSP",
		model.ChannelSecureWeb:        "CSW",
	}
	for channel, want := range prefixes {
		ref, err := g.Generate("ABCDEF123456", channel, SegmentCustomerServicing)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, want), "channel %s: got %s", channel, ref)
	}
}

func TestGenerate_DefaultsSegment(t *testing.T) {
	g := fixedGenerator(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 321)

	ref, err := g.Generate("XYZ123456", model.ChannelBranch, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "CSB"))
}

func TestGenerate_InvalidArguments(t *testing.T) {
	g := NewGenerator()

	_, err := g.Generate("", model.ChannelPublicWeb, SegmentCustomerServicing)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = g.Generate("ABC12", model.ChannelPublicWeb, SegmentCustomerServicing)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = g.Generate("ABCDEF123456", model.ChannelUnknown, SegmentCustomerServicing)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGenerate_OutOfRange(t *testing.T) {
	g := NewGenerator()

	_, err := g.Generate("ABCDEF123456", model.Channel("Carrier"), SegmentCustomerServicing)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = g.Generate("ABCDEF123456", model.ChannelPublicWeb, BusinessSegment("Claims"))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestGenerate_RandomComponentInRange(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 50; i++ {
		ref, err := g.Generate("ABCDEF123456", model.ChannelConnect, SegmentCustomerServicing)
		require.NoError(t, err)
		require.Len(t, ref, 18)

		random := ref[9:12]
		assert.GreaterOrEqual(t, random, "100")
		assert.LessOrEqual(t, random, "999")
	}
}
