package model

// Tone types
type Tone string

const (
	ToneProfessional      Tone = "Professional"
	ToneConversational    Tone = "Conversational"
	ToneThoughtLeadership Tone = "Thought leadership"
	ToneStorytelling      Tone = "Storytelling"
)

var ValidTones = []Tone{
	ToneProfessional, ToneConversational, ToneThoughtLeadership, ToneStorytelling,
}

// ToneAliases maps alternate client spellings onto their tone
var ToneAliases = map[string]Tone{
	"ThoughtLeadership": ToneThoughtLeadership,
}

// Post lengths
type Length string

const (
	LengthShort  Length = "Short"
	LengthMedium Length = "Medium"
	LengthLong   Length = "Long"
)

var ValidLengths = []Length{LengthShort, LengthMedium, LengthLong}

// Hook styles
type Hook string

const (
	HookData       Hook = "Data"
	HookQuestion   Hook = "Question"
	HookContrarian Hook = "Contrarian"
	HookStory      Hook = "Story"
)

var ValidHooks = []Hook{HookData, HookQuestion, HookContrarian, HookStory}

// Defaults applied when a field is missing or not in its allowed set
const (
	DefaultTone     = ToneProfessional
	DefaultLength   = LengthMedium
	DefaultHook     = HookQuestion
	DefaultVariants = 1
)

// Field limits
const (
	MaxTopicLen    = 300
	MaxAudienceLen = 300
	MaxGoalLen     = 300
	MaxCTALen      = 280
	MinVariants    = 1
	MaxVariants    = 3
)
