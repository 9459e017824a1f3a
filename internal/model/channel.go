package model

// Channel names the originating system or process a case was opened through.
type Channel string

const (
	ChannelUnknown          Channel = "Unknown"
	ChannelAgentWorkBench   Channel = "AgentWorkBench"
	ChannelAdviserWorkBench Channel = "AdviserWorkBench"
	ChannelConnect          Channel = "Connect"
	ChannelMomApp           Channel = "MomApp"
	ChannelPublicWeb        Channel = "PublicWeb"
	ChannelSecureWeb        Channel = "SecureWeb"
	ChannelBranch           Channel = "Branch"
)

// channelDisplay maps each channel to its human-facing label. Kept as static
// data next to the enumeration; lookups are plain map reads, no reflection.
var channelDisplay = map[Channel]string{
	ChannelUnknown:          "Unknown",
	ChannelAgentWorkBench:   "Agent Work Bench",
	ChannelAdviserWorkBench: "Adviser Work Bench",
	ChannelConnect:          "Connect",
	ChannelMomApp:           "Mom App",
	ChannelPublicWeb:        "Public Web",
	ChannelSecureWeb:        "Secure Web",
	ChannelBranch:           "Branch",
}

// channelFromDisplay is the explicit reverse table for label round-trips.
var channelFromDisplay = func() map[string]Channel {
	m := make(map[string]Channel, len(channelDisplay))
	for c, label := range channelDisplay {
		m[label] = c
	}
	return m
}()

func (c Channel) Display() string {
	if label, ok := channelDisplay[c]; ok {
		return label
	}
	return channelDisplay[ChannelUnknown]
}

// ParseChannel resolves a channel from its enumeration name or display label.
// Anything unrecognized resolves to ChannelUnknown.
func ParseChannel(s string) Channel {
	if _, ok := channelDisplay[Channel(s)]; ok {
		return Channel(s)
	}
	if c, ok := channelFromDisplay[s]; ok {
		return c
	}
	return ChannelUnknown
}
