package models

// State is a user's position in the menu tree. The zero value is
// StateMainMenu, which is also the state assigned on first contact.
type State int

const (
	StateMainMenu State = iota
	StateNeuralCategories
	StateNeuralList
	StateNeuralInfo
	StateAskQuestion
	StateGenerateImage
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateNeuralCategories:
		return "neural_categories"
	case StateNeuralList:
		return "neural_list"
	case StateNeuralInfo:
		return "neural_info"
	case StateAskQuestion:
		return "ask_question"
	case StateGenerateImage:
		return "generate_image"
	}
	return "unknown"
}

// EventKind is the closed set of inbound event variants. Raw transport
// payloads (commands, callback data, message text) are decoded into one
// of these at the adapter boundary.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventStart
	EventHelp
	EventHistoryCommand
	EventMenuNeural
	EventMenuAsk
	EventMenuImage
	EventMenuHistory
	EventPickCategory
	EventPickTool
	EventBack
	EventBackToMain
	EventFreeText
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventHelp:
		return "help"
	case EventHistoryCommand:
		return "history_command"
	case EventMenuNeural:
		return "menu_neural"
	case EventMenuAsk:
		return "menu_ask"
	case EventMenuImage:
		return "menu_image"
	case EventMenuHistory:
		return "menu_history"
	case EventPickCategory:
		return "pick_category"
	case EventPickTool:
		return "pick_tool"
	case EventBack:
		return "back"
	case EventBackToMain:
		return "back_to_main"
	case EventFreeText:
		return "free_text"
	}
	return "unknown"
}

// Event is one decoded inbound user action. Category is set for
// EventPickCategory, ToolID for EventPickTool, Text for EventFreeText.
type Event struct {
	Kind     EventKind
	Category string
	ToolID   int64
	Text     string
}
