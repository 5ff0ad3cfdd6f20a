package dto

// VoiceInbound is what the trolley tablet sends over the websocket.
// Type is "utterance" or "stop".
type VoiceInbound struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type VoiceAssistantPayload struct {
	Speak  string               `json:"speak"`
	View   string               `json:"view"`
	Target *NavigationTargetDTO `json:"target,omitempty"`
}
