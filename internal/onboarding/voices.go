package onboarding

// Voice is one selectable provider voice.
type Voice struct {
	Id          string
	Name        string
	Description string
}

// DefaultVoices are the voices offered at the voice-and-greeting step.
var DefaultVoices = []Voice{
	{Id: "jennifer", Name: "Jennifer", Description: "Warm and professional"},
	{Id: "melissa", Name: "Melissa", Description: "Friendly and upbeat"},
	{Id: "will", Name: "Will", Description: "Calm and reassuring"},
	{Id: "chris", Name: "Chris", Description: "Energetic and direct"},
}
