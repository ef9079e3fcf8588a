// Package conversation tracks each user's position in the menu tree and
// decides, for every inbound event, which action the dispatcher must run
// and which state the user moves to.
package conversation

import "github.com/ivkram/neuroguide-bot/internal/models"

// Action is the side effect bound to a resolved (state, event) pair.
type Action int

const (
	// ActionNone ignores the event entirely, state unchanged.
	ActionNone Action = iota
	ActionShowGreeting
	ActionShowHelp
	ActionShowMainMenu
	ActionShowCategories
	ActionShowToolList
	ActionShowToolInfo
	ActionPromptQuestion
	ActionPromptImage
	ActionShowHistory
	ActionAskQuestion
	ActionGenerateImage
	// ActionInvalidChoice replies with a short guidance message,
	// state unchanged.
	ActionInvalidChoice
)

// Context is the transient per-user data carried across transitions.
type Context struct {
	SelectedCategory string
}

// Resolution is the outcome of matching one event against the current
// state: the action to run, the proposed next state, and the action's
// parameters. The dispatcher may keep the user in place instead of
// committing Next (e.g. a category with no tools).
type Resolution struct {
	Action   Action
	Next     models.State
	Category string
	ToolID   int64
	Text     string
}

// Resolve maps (state, context, event) to a Resolution. It is a pure
// function: the transition table with no side effects. Events that match
// no transition for the current state degrade to ActionInvalidChoice or
// ActionNone; Resolve never fails.
func Resolve(state models.State, conv Context, ev models.Event) Resolution {
	// Commands and "back to main" apply from any state.
	switch ev.Kind {
	case models.EventStart:
		return Resolution{Action: ActionShowGreeting, Next: models.StateMainMenu}
	case models.EventHelp:
		return Resolution{Action: ActionShowHelp, Next: state}
	case models.EventHistoryCommand:
		return Resolution{Action: ActionShowHistory, Next: state}
	case models.EventBackToMain:
		return Resolution{Action: ActionShowMainMenu, Next: models.StateMainMenu}
	}

	switch state {
	case models.StateMainMenu:
		switch ev.Kind {
		case models.EventMenuNeural:
			return Resolution{Action: ActionShowCategories, Next: models.StateNeuralCategories}
		case models.EventMenuAsk:
			return Resolution{Action: ActionPromptQuestion, Next: models.StateAskQuestion}
		case models.EventMenuImage:
			return Resolution{Action: ActionPromptImage, Next: models.StateGenerateImage}
		case models.EventMenuHistory:
			return Resolution{Action: ActionShowHistory, Next: state}
		}

	case models.StateNeuralCategories:
		switch ev.Kind {
		case models.EventPickCategory:
			return Resolution{
				Action:   ActionShowToolList,
				Next:     models.StateNeuralList,
				Category: ev.Category,
			}
		case models.EventBack:
			return Resolution{Action: ActionShowMainMenu, Next: models.StateMainMenu}
		}

	case models.StateNeuralList:
		switch ev.Kind {
		case models.EventPickTool:
			return Resolution{
				Action: ActionShowToolInfo,
				Next:   models.StateNeuralInfo,
				ToolID: ev.ToolID,
			}
		case models.EventBack:
			return Resolution{Action: ActionShowCategories, Next: models.StateNeuralCategories}
		}

	case models.StateNeuralInfo:
		if ev.Kind == models.EventBack {
			// The list is re-fetched by the remembered category; the
			// catalog is authoritative at render time.
			return Resolution{
				Action:   ActionShowToolList,
				Next:     models.StateNeuralList,
				Category: conv.SelectedCategory,
			}
		}

	case models.StateAskQuestion:
		if ev.Kind == models.EventFreeText {
			return Resolution{Action: ActionAskQuestion, Next: models.StateMainMenu, Text: ev.Text}
		}

	case models.StateGenerateImage:
		if ev.Kind == models.EventFreeText {
			return Resolution{Action: ActionGenerateImage, Next: models.StateMainMenu, Text: ev.Text}
		}
	}

	// Stray free text outside the input states is dropped silently, the
	// way the original bot let un-routed messages fall through.
	if ev.Kind == models.EventFreeText {
		return Resolution{Action: ActionNone, Next: state}
	}

	return Resolution{Action: ActionInvalidChoice, Next: state}
}
