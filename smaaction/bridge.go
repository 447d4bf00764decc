package smaaction

// DefaultCallTimeoutSeconds is how long a bridged dial rings before the
// platform gives up
const DefaultCallTimeoutSeconds = 30

// BridgeEndpointTypePSTN dials a public network number
const BridgeEndpointTypePSTN = "PSTN"

// Endpoint is one dial target of a CallAndBridge action
type Endpoint struct {
	URI                string `json:"Uri"`
	BridgeEndpointType string `json:"BridgeEndpointType"`
}

// CallAndBridgeParameters is the parameter block for CallAndBridge
type CallAndBridgeParameters struct {
	CallTimeoutSeconds int               `json:"CallTimeoutSeconds,omitempty"`
	CallerIDNumber     string            `json:"CallerIdNumber"`
	RingbackTone       *AudioSource      `json:"RingbackTone,omitempty"`
	Endpoints          []Endpoint        `json:"Endpoints"`
	CustomSipHeaders   map[string]string `json:"CustomSipHeaders,omitempty"`
}

// CallAndBridge dials a new outbound leg and bridges it with the
// inbound leg
type CallAndBridge struct {
	Type       string                  `json:"Type"`
	Parameters CallAndBridgeParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (CallAndBridge) ActionType() string { return TypeCallAndBridge }

// NewCallAndBridge dials the given E.164 number presenting callerID
func NewCallAndBridge(callerID string, uri string) CallAndBridge {
	return CallAndBridge{
		Type: TypeCallAndBridge,
		Parameters: CallAndBridgeParameters{
			CallTimeoutSeconds: DefaultCallTimeoutSeconds,
			CallerIDNumber:     callerID,
			Endpoints: []Endpoint{
				{
					URI:                uri,
					BridgeEndpointType: BridgeEndpointTypePSTN,
				},
			},
		},
	}
}

// WithRingbackTone plays the given audio asset to the caller while the
// outbound leg rings
func (cb CallAndBridge) WithRingbackTone(source AudioSource) CallAndBridge {
	cb.Parameters.RingbackTone = &source
	return cb
}

// PlayAudioParameters is the parameter block for PlayAudio
type PlayAudioParameters struct {
	Repeat      string      `json:"Repeat,omitempty"`
	AudioSource AudioSource `json:"AudioSource"`
}

// PlayAudio plays an audio asset on the call
type PlayAudio struct {
	Type       string              `json:"Type"`
	Parameters PlayAudioParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (PlayAudio) ActionType() string { return TypePlayAudio }

// NewPlayAudio plays the asset once
func NewPlayAudio(source AudioSource) PlayAudio {
	return PlayAudio{
		Type: TypePlayAudio,
		Parameters: PlayAudioParameters{
			Repeat:      "1",
			AudioSource: source,
		},
	}
}
