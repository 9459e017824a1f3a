// Package refnum produces the short, human-shareable reference numbers that
// accompany every case, interaction and transaction. A reference number is
// distinct from the entity's internal id and is assigned exactly once at
// creation time.
package refnum

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/casedesk/case-servicing/internal/model"
)

var (
	// ErrInvalidArgument covers blank/short ids and the Unknown channel.
	ErrInvalidArgument = errors.New("refnum: invalid argument")
	// ErrOutOfRange covers channels or segments with no prefix mapping.
	ErrOutOfRange = errors.New("refnum: no prefix mapping")
)

// BusinessSegment scopes the reference number to a line of business.
type BusinessSegment string

const SegmentCustomerServicing BusinessSegment = "CustomerServicing"

const minIDLength = 6

var channelPrefix = map[model.Channel]string{
	model.ChannelAdviserWorkBench: "D",
	model.ChannelAgentWorkBench:   "T",
	model.ChannelBranch:           "B",
	model.ChannelConnect:          "C",
	model.ChannelMomApp:           "A",
	model.ChannelPublicWeb:        "P",
	model.ChannelSecureWeb:        "W",
}

var segmentPrefix = map[BusinessSegment]string{
	SegmentCustomerServicing: "CS",
}

// Generator builds reference numbers of the shape
//
//	segmentPrefix + channelPrefix + YYMMDD + RRR + last6(id)
//
// where RRR is a random number in [100,999]. Two calls with identical inputs
// within the same second differ only in that random component, so uniqueness
// is probabilistic, not guaranteed.
type Generator struct {
	now  func() time.Time
	rand func(min, max int) int
}

func NewGenerator() *Generator {
	return &Generator{
		now:  time.Now,
		rand: func(min, max int) int { return min + rand.Intn(max-min+1) },
	}
}

// Generate returns the reference number for the given entity id and channel,
// defaulting the segment to CustomerServicing when blank.
func (g *Generator) Generate(id string, channel model.Channel, segment BusinessSegment) (string, error) {
	if len(id) < minIDLength {
		return "", fmt.Errorf("%w: id %q must be at least %d characters", ErrInvalidArgument, id, minIDLength)
	}
	if channel == model.ChannelUnknown {
		return "", fmt.Errorf("%w: channel must not be Unknown", ErrInvalidArgument)
	}
	if segment == "" {
		segment = SegmentCustomerServicing
	}

	cp, ok := channelPrefix[channel]
	if !ok {
		return "", fmt.Errorf("%w for channel %q", ErrOutOfRange, channel)
	}
	sp, ok := segmentPrefix[segment]
	if !ok {
		return "", fmt.Errorf("%w for segment %q", ErrOutOfRange, segment)
	}

	date := g.now().UTC().Format("060102")
	random := g.rand(100, 999)
	suffix := id[len(id)-minIDLength:]

	return fmt.Sprintf("%s%s%s%d%s", sp, cp, date, random, suffix), nil
}
