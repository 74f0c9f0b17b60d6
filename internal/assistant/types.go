package assistant

// Roles accepted in ChatTurn.Role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one prior message of the conversation, resent by the caller.
type ChatTurn struct {
	Role    string
	Content string
}

// ChatInput is the caller's message plus optional history and time zone.
type ChatInput struct {
	Message  string
	History  []ChatTurn
	Timezone string
}

// ChatOutput is the aggregated reply for one chat request.
type ChatOutput struct {
	Response      string
	ToolResults   []OperationResult
	ExecutedTools int
}

// Invocation is an operation proposed by the model. Args are untrusted.
// ArgsError is set when the model's arguments could not be parsed at all.
type Invocation struct {
	ID        string
	Name      string
	Args      map[string]interface{}
	ArgsError string
}

// OperationResult is the outcome of one Invocation.
type OperationResult struct {
	ToolCallID string      `json:"toolCallId"`
	Name       string      `json:"name"`
	Success    bool        `json:"success"`
	Result     interface{} `json:"result,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Proposal is the model's parsed reply.
type Proposal struct {
	Message     string
	Invocations []Invocation
}

const (
	MaxMessageLen     = 4000
	MaxTurnContentLen = 8000
	DefaultMaxHistory = 20
	DefaultMaxContext = 50
)
